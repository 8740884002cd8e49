package reportservice

import (
	"time"

	"github.com/pkg/errors"

	"sundayschool/models"
	"sundayschool/utils"
)

var ErrMalformedAsset = errors.New("malformed asset record")

var assetValidator = utils.NewValidator()

// Report is the derived dataset of one export run. It is rebuilt on every call and
// never cached.
type Report struct {
	GeneratedAt time.Time
	Overview    []OverviewRow
	Details     []DetailRow
	Maintenance []MaintenanceRow
	Assignments []AssignmentRow
	Statistics  Statistics

	opts Options
}

// Build validates the input and derives every row set from it using a single now.
// Nothing is built when any element is malformed.
func Build(assets []models.Asset, now time.Time, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	for i := range assets {
		if err := assetValidator.Struct(assets[i]); err != nil {
			return nil, errors.Wrapf(ErrMalformedAsset, "asset #%d (%q): %v", i+1, assets[i].Code, err)
		}
	}

	r := &Report{
		GeneratedAt: now,
		Overview:    make([]OverviewRow, 0, len(assets)),
		Details:     make([]DetailRow, 0, len(assets)),
		Maintenance: make([]MaintenanceRow, 0),
		Assignments: make([]AssignmentRow, 0, len(assets)),
		Statistics:  computeStatistics(assets, now, opts.MaintenanceWindowDays),
		opts:        opts,
	}

	for i, a := range assets {
		no := i + 1
		r.Overview = append(r.Overview, OverviewRow{
			No:            no,
			Code:          a.Code,
			Name:          a.Name,
			Category:      a.Category,
			Status:        a.Status,
			Condition:     a.Condition,
			Location:      a.Location,
			PurchasePrice: a.PurchasePrice,
			PurchaseDate:  a.PurchaseDate,
			AssignedTo:    a.AssignedTo,
		})
		r.Details = append(r.Details, buildDetailRow(no, a, now, opts))
		r.Assignments = append(r.Assignments, AssignmentRow{
			No:            no,
			Code:          a.Code,
			Name:          a.Name,
			Category:      a.Category,
			Status:        a.Status,
			AssignedTo:    a.AssignedTo,
			Location:      a.Location,
			Condition:     a.Condition,
			PurchasePrice: a.PurchasePrice,
		})

		if days, ok := DaysUntil(a.NextMaintenanceDate, now); ok {
			r.Maintenance = append(r.Maintenance, MaintenanceRow{
				No:              len(r.Maintenance) + 1,
				Code:            a.Code,
				Name:            a.Name,
				Category:        a.Category,
				Condition:       a.Condition,
				Location:        a.Location,
				LastMaintenance: a.LastMaintenanceDate,
				NextMaintenance: *a.NextMaintenanceDate,
				DaysUntil:       days,
				Priority:        MaintenancePriority(a.Condition, days, true, opts.MaintenanceWindowDays),
				Status:          MaintenanceStatus(a.NextMaintenanceDate, now, opts.MaintenanceWindowDays),
			})
		}
	}
	return r, nil
}

func buildDetailRow(no int, a models.Asset, now time.Time, opts Options) DetailRow {
	row := DetailRow{
		No:                no,
		Code:              a.Code,
		Name:              a.Name,
		Description:       a.Description,
		Category:          a.Category,
		Status:            a.Status,
		Condition:         a.Condition,
		Location:          a.Location,
		Supplier:          a.Supplier,
		SerialNumber:      a.SerialNumber,
		AssignedTo:        a.AssignedTo,
		PurchaseDate:      a.PurchaseDate,
		PurchasePrice:     a.PurchasePrice,
		WarrantyExpiry:    a.WarrantyExpiry,
		WarrantyStatus:    WarrantyStatus(a.WarrantyExpiry, now),
		LastMaintenance:   a.LastMaintenanceDate,
		NextMaintenance:   a.NextMaintenanceDate,
		MaintenanceStatus: MaintenanceStatus(a.NextMaintenanceDate, now, opts.MaintenanceWindowDays),
		Tags:              append([]string(nil), a.Tags...),
		ImageCount:        len(a.Images),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if age, ok := AssetAge(a.PurchaseDate, now); ok {
		value := DepreciatedValue(a.PurchasePrice, age, opts.DepreciationRate)
		row.AgeYears = &age
		row.CurrentValue = &value
	}
	if days, ok := DaysSince(a.LastMaintenanceDate, now); ok {
		row.DaysSinceMaintenance = &days
	}
	return row
}

// Sheets lays the report out in the fixed workbook order.
func (r *Report) Sheets() []Sheet {
	f := newFormatter(r.opts)

	overview := make([][]any, 0, len(r.Overview))
	for _, row := range r.Overview {
		overview = append(overview, row.cells(f))
	}
	details := make([][]any, 0, len(r.Details))
	for _, row := range r.Details {
		details = append(details, row.cells(f))
	}
	maintenance := make([][]any, 0, len(r.Maintenance))
	for _, row := range r.Maintenance {
		maintenance = append(maintenance, row.cells(f))
	}
	assignments := make([][]any, 0, len(r.Assignments))
	for _, row := range r.Assignments {
		assignments = append(assignments, row.cells(f))
	}

	return []Sheet{
		{Name: SheetOverview, Headers: overviewHeaders, Rows: overview, Style: overviewStyle},
		{Name: SheetDetails, Headers: detailHeaders, Rows: details, Style: detailStyle},
		{Name: SheetMaintenance, Headers: maintenanceHeaders, Rows: maintenance, Style: maintenanceStyle},
		{Name: SheetStatistics, Pairs: r.Statistics.pairs(f, r.opts.MaintenanceWindowDays), Style: statisticsStyle},
		{Name: SheetAssignment, Headers: assignmentHeaders, Rows: assignments, Style: assignmentStyle},
	}
}

// FileName is <label>_<YYYY-MM-DD>_<HH-MM-SS>.xlsx for the given invocation time.
func FileName(label string, now time.Time) string {
	if label == "" {
		label = DefaultReportLabel
	}
	return label + "_" + now.Format("2006-01-02_15-04-05") + ".xlsx"
}
