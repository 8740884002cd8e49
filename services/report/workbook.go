package reportservice

import "context"

// WorkbookBuilder is the spreadsheet sink. An implementation receives every sheet before
// Commit is called once; Close releases it whether or not Commit succeeded.
type WorkbookBuilder interface {
	AddSheet(name string, headers []string, rows [][]any, style SheetStyle) error
	AddRawSheet(name string, rows [][2]any, style SheetStyle) error
	Commit(ctx context.Context, fileName string) error
	Close() error
}

// WorkbookFactory creates a fresh builder for one export.
type WorkbookFactory func() (WorkbookBuilder, error)

// SheetStyle describes the theme of a sheet. Colors are RGB hex strings without '#'.
type SheetStyle struct {
	HeaderFill string
	HeaderFont string
	// RowFills alternate on data rows, starting with the first one.
	RowFills [2]string
	// Highlights maps a column header to cell text and its fill. Only cells under that
	// header are highlighted.
	Highlights  map[string]map[string]string
	ColumnWidth float64
}

// Sheet is one tab of the report. Pairs is set instead of Headers/Rows for two-column sheets.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
	Pairs   [][2]any
	Style   SheetStyle
}

func (s Sheet) Raw() bool {
	return s.Pairs != nil
}

const (
	SheetOverview    = "Assets Overview"
	SheetDetails     = "Asset Details"
	SheetMaintenance = "Maintenance Schedule"
	SheetStatistics  = "Statistics"
	SheetAssignment  = "Assignment Overview"
)

const (
	colorRed    = "FFC7CE"
	colorAmber  = "FFEB9C"
	colorGreen  = "C6EFCE"
	colorWhite  = "FFFFFF"
	colorBlack  = "000000"
	colorStripe = "F2F2F2"
)

var (
	overviewStyle = SheetStyle{
		HeaderFill:  "4472C4",
		HeaderFont:  colorWhite,
		RowFills:    [2]string{colorWhite, "D9E1F2"},
		ColumnWidth: 18,
	}
	detailStyle = SheetStyle{
		HeaderFill: "70AD47",
		HeaderFont: colorWhite,
		RowFills:   [2]string{colorWhite, "E2EFDA"},
		Highlights: map[string]map[string]string{
			"Warranty Status": {WarrantyExpired: colorRed},
			"Maintenance Status": {
				MaintenanceOverdue:  colorRed,
				MaintenanceUpcoming: colorAmber,
			},
		},
		ColumnWidth: 20,
	}
	maintenanceStyle = SheetStyle{
		HeaderFill: "ED7D31",
		HeaderFont: colorWhite,
		RowFills:   [2]string{colorWhite, "FCE4D6"},
		Highlights: map[string]map[string]string{
			"Priority": {
				PriorityHigh.String():   colorRed,
				PriorityMedium.String(): colorAmber,
				PriorityLow.String():    colorGreen,
			},
			"Status": {
				MaintenanceOverdue:  colorRed,
				MaintenanceUpcoming: colorAmber,
			},
		},
		ColumnWidth: 18,
	}
	statisticsStyle = SheetStyle{
		HeaderFill:  "7030A0",
		HeaderFont:  colorWhite,
		RowFills:    [2]string{colorWhite, "E4DFEC"},
		ColumnWidth: 28,
	}
	assignmentStyle = SheetStyle{
		HeaderFill: "FFC000",
		HeaderFont: colorBlack,
		RowFills:   [2]string{colorWhite, colorStripe},
		Highlights: map[string]map[string]string{
			"Assigned To": {Unassigned: colorAmber},
		},
		ColumnWidth: 18,
	}
)
