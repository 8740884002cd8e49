package reportservice

// Sentinel display values for absent optional fields.
const (
	NotAvailable    = "N/A"
	NeverMaintained = "Never"
	NotScheduled    = "Not Scheduled"
	NoWarranty      = "No Warranty"
	Unassigned      = "Unassigned"
	NoTags          = "None"
)

const (
	DefaultDepreciationRate      = 0.10
	DefaultMaintenanceWindowDays = 30
	DefaultCurrency              = "USD"
	DefaultDateLayout            = "01/02/2006"
	DefaultReportLabel           = "Assets_Report"
)

// Options controls the business parameters and display conventions of a report run.
type Options struct {
	// DepreciationRate is the straight-line loss of value per year, as a fraction of the
	// purchase price.
	DepreciationRate float64
	// MaintenanceWindowDays is the near-term window used by maintenance priority, status
	// and the due-soon statistic.
	MaintenanceWindowDays int
	Currency              string
	DateLayout            string
	ReportLabel           string
}

func DefaultOptions() Options {
	return Options{
		DepreciationRate:      DefaultDepreciationRate,
		MaintenanceWindowDays: DefaultMaintenanceWindowDays,
		Currency:              DefaultCurrency,
		DateLayout:            DefaultDateLayout,
		ReportLabel:           DefaultReportLabel,
	}
}

// withDefaults fills zero-valued display fields and the maintenance window. A zero
// DepreciationRate is kept and means no depreciation.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DepreciationRate < 0 {
		o.DepreciationRate = 0
	}
	if o.MaintenanceWindowDays <= 0 {
		o.MaintenanceWindowDays = d.MaintenanceWindowDays
	}
	if o.Currency == "" {
		o.Currency = d.Currency
	}
	if o.DateLayout == "" {
		o.DateLayout = d.DateLayout
	}
	if o.ReportLabel == "" {
		o.ReportLabel = d.ReportLabel
	}
	return o
}
