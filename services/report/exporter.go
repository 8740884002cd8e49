package reportservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sundayschool/models"
)

// ExportFailedMessage is the single user-facing message for any failed export.
const ExportFailedMessage = "failed to export assets"

type ExportResult struct {
	FileName    string    `json:"file_name"`
	Count       int       `json:"count"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (r ExportResult) Message() string {
	if r.Count == 1 {
		return "Exported 1 asset"
	}
	return fmt.Sprintf("Exported %d assets", r.Count)
}

// Exporter turns an already filtered asset list into one committed workbook. Runs are
// independent: each builds its own report and its own workbook.
type Exporter struct {
	opts    Options
	factory WorkbookFactory
	logger  *zap.Logger
	now     func() time.Time
}

func NewExporter(opts Options, factory WorkbookFactory, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		opts:    opts.withDefaults(),
		factory: factory,
		logger:  logger,
		now:     time.Now,
	}
}

func (e *Exporter) Export(ctx context.Context, assets []models.Asset) (ExportResult, error) {
	now := e.now()

	report, err := Build(assets, now, e.opts)
	if err != nil {
		e.logger.Error("failed to build asset report", zap.Int("assets", len(assets)), zap.Error(err))
		return ExportResult{}, fmt.Errorf("failed to build asset report: %w", err)
	}
	sheets := report.Sheets()
	fileName := FileName(e.opts.ReportLabel, now)

	wb, err := e.factory()
	if err != nil {
		e.logger.Error("failed to create workbook", zap.Error(err))
		return ExportResult{}, fmt.Errorf("failed to create workbook: %w", err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			e.logger.Warn("failed to close workbook", zap.String("file", fileName), zap.Error(cerr))
		}
	}()

	for _, sheet := range sheets {
		if sheet.Raw() {
			err = wb.AddRawSheet(sheet.Name, sheet.Pairs, sheet.Style)
		} else {
			err = wb.AddSheet(sheet.Name, sheet.Headers, sheet.Rows, sheet.Style)
		}
		if err != nil {
			e.logger.Error("failed to add sheet", zap.String("sheet", sheet.Name), zap.Error(err))
			return ExportResult{}, fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
		}
	}

	if err := wb.Commit(ctx, fileName); err != nil {
		e.logger.Error("failed to write workbook", zap.String("file", fileName), zap.Error(err))
		return ExportResult{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("asset report exported", zap.String("file", fileName), zap.Int("assets", len(assets)))
	return ExportResult{FileName: fileName, Count: len(assets), GeneratedAt: now}, nil
}
