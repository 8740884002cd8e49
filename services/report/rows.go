package reportservice

import (
	"time"

	"github.com/shopspring/decimal"

	"sundayschool/models"
)

type OverviewRow struct {
	No            int
	Code          string
	Name          string
	Category      string
	Status        models.AssetStatus
	Condition     models.AssetCondition
	Location      string
	PurchasePrice decimal.Decimal
	PurchaseDate  *time.Time
	AssignedTo    *string
}

var overviewHeaders = []string{
	"#", "Asset Code", "Name", "Category", "Status", "Condition", "Location",
	"Purchase Price", "Purchase Date", "Assigned To",
}

func (r OverviewRow) cells(f formatter) []any {
	return []any{
		r.No,
		r.Code,
		r.Name,
		r.Category,
		f.label(string(r.Status)),
		f.label(string(r.Condition)),
		optionalString(&r.Location, NotAvailable),
		f.money(r.PurchasePrice),
		f.optionalDate(r.PurchaseDate, NotAvailable),
		optionalString(r.AssignedTo, Unassigned),
	}
}

type DetailRow struct {
	No                   int
	Code                 string
	Name                 string
	Description          string
	Category             string
	Status               models.AssetStatus
	Condition            models.AssetCondition
	Location             string
	Supplier             string
	SerialNumber         *string
	AssignedTo           *string
	PurchaseDate         *time.Time
	PurchasePrice        decimal.Decimal
	CurrentValue         *decimal.Decimal
	AgeYears             *int
	WarrantyExpiry       *time.Time
	WarrantyStatus       string
	LastMaintenance      *time.Time
	NextMaintenance      *time.Time
	DaysSinceMaintenance *int
	MaintenanceStatus    string
	Tags                 []string
	ImageCount           int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

var detailHeaders = []string{
	"#", "Asset Code", "Name", "Description", "Category", "Status", "Condition", "Location",
	"Supplier", "Serial Number", "Assigned To", "Purchase Date", "Purchase Price",
	"Current Value", "Age (Years)", "Warranty Expiry", "Warranty Status", "Last Maintenance",
	"Next Maintenance", "Days Since Maintenance", "Maintenance Status", "Tags", "Images",
	"Created At", "Updated At",
}

func (r DetailRow) cells(f formatter) []any {
	return []any{
		r.No,
		r.Code,
		r.Name,
		optionalString(&r.Description, NotAvailable),
		r.Category,
		f.label(string(r.Status)),
		f.label(string(r.Condition)),
		optionalString(&r.Location, NotAvailable),
		optionalString(&r.Supplier, NotAvailable),
		optionalString(r.SerialNumber, NotAvailable),
		optionalString(r.AssignedTo, Unassigned),
		f.optionalDate(r.PurchaseDate, NotAvailable),
		f.money(r.PurchasePrice),
		f.optionalMoney(r.CurrentValue),
		optionalInt(r.AgeYears),
		f.optionalDate(r.WarrantyExpiry, NoWarranty),
		r.WarrantyStatus,
		f.optionalDate(r.LastMaintenance, NeverMaintained),
		f.optionalDate(r.NextMaintenance, NotScheduled),
		optionalInt(r.DaysSinceMaintenance),
		r.MaintenanceStatus,
		joinTags(r.Tags),
		r.ImageCount,
		f.timestamp(r.CreatedAt),
		f.timestamp(r.UpdatedAt),
	}
}

type MaintenanceRow struct {
	No              int
	Code            string
	Name            string
	Category        string
	Condition       models.AssetCondition
	Location        string
	LastMaintenance *time.Time
	NextMaintenance time.Time
	DaysUntil       int
	Priority        Priority
	Status          string
}

var maintenanceHeaders = []string{
	"#", "Asset Code", "Name", "Category", "Condition", "Location", "Last Maintenance",
	"Next Maintenance", "Days Until Due", "Priority", "Status",
}

func (r MaintenanceRow) cells(f formatter) []any {
	return []any{
		r.No,
		r.Code,
		r.Name,
		r.Category,
		f.label(string(r.Condition)),
		optionalString(&r.Location, NotAvailable),
		f.optionalDate(r.LastMaintenance, NeverMaintained),
		f.date(r.NextMaintenance),
		r.DaysUntil,
		r.Priority.String(),
		r.Status,
	}
}

type AssignmentRow struct {
	No            int
	Code          string
	Name          string
	Category      string
	Status        models.AssetStatus
	AssignedTo    *string
	Location      string
	Condition     models.AssetCondition
	PurchasePrice decimal.Decimal
}

var assignmentHeaders = []string{
	"#", "Asset Code", "Name", "Category", "Status", "Assigned To", "Location", "Condition", "Value",
}

func (r AssignmentRow) cells(f formatter) []any {
	return []any{
		r.No,
		r.Code,
		r.Name,
		r.Category,
		f.label(string(r.Status)),
		optionalString(r.AssignedTo, Unassigned),
		optionalString(&r.Location, NotAvailable),
		f.label(string(r.Condition)),
		f.money(r.PurchasePrice),
	}
}
