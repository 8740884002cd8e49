package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type AssetStatus string

const (
	StatusAvailable   AssetStatus = "available"
	StatusAssigned    AssetStatus = "assigned"
	StatusMaintenance AssetStatus = "maintenance"
	StatusRetired     AssetStatus = "retired"
)

type AssetCondition string

const (
	ConditionExcellent AssetCondition = "excellent"
	ConditionGood      AssetCondition = "good"
	ConditionFair      AssetCondition = "fair"
	ConditionPoor      AssetCondition = "poor"
)

// Asset is a tracked item (equipment, furniture, instruments) owned by the school.
type Asset struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	Code                string          `json:"code" db:"code" validate:"required"`
	Name                string          `json:"name" db:"name" validate:"required"`
	Description         string          `json:"description" db:"description"`
	Category            string          `json:"category" db:"category" validate:"required"`
	Status              AssetStatus     `json:"status" db:"status" validate:"required,oneof=available assigned maintenance retired"`
	Condition           AssetCondition  `json:"condition" db:"condition" validate:"required,oneof=excellent good fair poor"`
	Location            string          `json:"location" db:"location"`
	Supplier            string          `json:"supplier" db:"supplier"`
	SerialNumber        *string         `json:"serial_number,omitempty" db:"serial_number"`
	AssignedToID        *uuid.UUID      `json:"assigned_to_id,omitempty" db:"assigned_to_id"`
	AssignedTo          *string         `json:"assigned_to,omitempty" db:"assigned_to"`
	PurchaseDate        *time.Time      `json:"purchase_date,omitempty" db:"purchase_date"`
	PurchasePrice       decimal.Decimal `json:"purchase_price" db:"purchase_price" validate:"gte=0"`
	WarrantyExpiry      *time.Time      `json:"warranty_expiry,omitempty" db:"warranty_expiry"`
	LastMaintenanceDate *time.Time      `json:"last_maintenance_date,omitempty" db:"last_maintenance_date"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty" db:"next_maintenance_date"`
	Tags                pq.StringArray  `json:"tags" db:"tags"`
	Images              pq.StringArray  `json:"images" db:"images"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// asset search filter
type AssetFilter struct {
	IsSearchText bool
	SearchText   string
	Status       []string
	Condition    []string
	Category     []string
	Limit        int
	Offset       int
}
