package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAssetReq struct {
	Code                string          `json:"code" validate:"required"`
	Name                string          `json:"name" validate:"required"`
	Description         string          `json:"description"`
	Category            string          `json:"category" validate:"required"`
	Status              AssetStatus     `json:"status" validate:"omitempty,oneof=available maintenance retired"`
	Condition           AssetCondition  `json:"condition" validate:"required,oneof=excellent good fair poor"`
	Location            string          `json:"location"`
	Supplier            string          `json:"supplier"`
	SerialNumber        *string         `json:"serial_number,omitempty"`
	PurchaseDate        *time.Time      `json:"purchase_date,omitempty"`
	PurchasePrice       decimal.Decimal `json:"purchase_price" validate:"gte=0"`
	WarrantyExpiry      *time.Time      `json:"warranty_expiry,omitempty"`
	LastMaintenanceDate *time.Time      `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty"`
	Tags                []string        `json:"tags"`
	Images              []string        `json:"images"`
}

// UpdateAssetReq carries a partial update; nil fields keep their stored value.
type UpdateAssetReq struct {
	Code                *string          `json:"code,omitempty" validate:"omitempty,min=1"`
	Name                *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Description         *string          `json:"description,omitempty"`
	Category            *string          `json:"category,omitempty" validate:"omitempty,min=1"`
	Status              *AssetStatus     `json:"status,omitempty" validate:"omitempty,oneof=available maintenance retired"`
	Condition           *AssetCondition  `json:"condition,omitempty" validate:"omitempty,oneof=excellent good fair poor"`
	Location            *string          `json:"location,omitempty"`
	Supplier            *string          `json:"supplier,omitempty"`
	SerialNumber        *string          `json:"serial_number,omitempty"`
	PurchaseDate        *time.Time       `json:"purchase_date,omitempty"`
	PurchasePrice       *decimal.Decimal `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	WarrantyExpiry      *time.Time       `json:"warranty_expiry,omitempty"`
	LastMaintenanceDate *time.Time       `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time       `json:"next_maintenance_date,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
	Images              []string         `json:"images,omitempty"`
}

type AssetAssignReq struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
