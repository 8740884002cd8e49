package userservice

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RegisterUserReq adds a class leader or volunteer who can hold assets.
type RegisterUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UserResponseModel struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Email          string         `json:"email" db:"email"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	AssignedAssets pq.StringArray `json:"assigned_assets" db:"assigned_assets"`
}

type UserFilter struct {
	IsSearchText bool
	SearchText   string
	Limit        int
	Offset       int
}
