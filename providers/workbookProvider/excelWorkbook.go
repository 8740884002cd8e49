package workbookprovider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	reportservice "sundayschool/services/report"
)

const defaultSheet = "Sheet1"

var ErrInvalidFileName = errors.New("invalid workbook file name")

// ExcelWorkbook writes report sheets into one .xlsx file under dir.
type ExcelWorkbook struct {
	file   *excelize.File
	dir    string
	sheets int
	styles map[string]int
}

func NewExcelWorkbookFactory(dir string) reportservice.WorkbookFactory {
	return func() (reportservice.WorkbookBuilder, error) {
		return NewExcelWorkbook(dir)
	}
}

func NewExcelWorkbook(dir string) (*ExcelWorkbook, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report dir: %w", err)
	}
	return &ExcelWorkbook{
		file:   excelize.NewFile(),
		dir:    dir,
		styles: make(map[string]int),
	}, nil
}

func (w *ExcelWorkbook) AddSheet(name string, headers []string, rows [][]any, style reportservice.SheetStyle) error {
	if err := w.newSheet(name); err != nil {
		return err
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := w.writeRow(name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := w.writeRow(name, i+2, row); err != nil {
			return err
		}
	}
	return w.applyStyle(name, headers, rows, style)
}

func (w *ExcelWorkbook) AddRawSheet(name string, rows [][2]any, style reportservice.SheetStyle) error {
	if err := w.newSheet(name); err != nil {
		return err
	}

	// the first pair is the header row
	headers := make([]string, 2)
	data := make([][]any, 0, len(rows))
	for i, pair := range rows {
		row := []any{pair[0], pair[1]}
		if err := w.writeRow(name, i+1, row); err != nil {
			return err
		}
		if i == 0 {
			headers[0], headers[1] = fmt.Sprint(pair[0]), fmt.Sprint(pair[1])
			continue
		}
		data = append(data, row)
	}
	return w.applyStyle(name, headers, data, style)
}

// Commit writes the workbook to a temporary file and renames it into place, so a failed
// write never leaves a partial report behind.
func (w *ExcelWorkbook) Commit(ctx context.Context, fileName string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fileName == "" || fileName != filepath.Base(fileName) || filepath.Ext(fileName) != ".xlsx" {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, fileName)
	}

	w.file.SetActiveSheet(0)

	tmp, err := os.CreateTemp(w.dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = w.file.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close workbook file: %w", err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(w.dir, fileName)); err != nil {
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}
	return nil
}

func (w *ExcelWorkbook) Close() error {
	return w.file.Close()
}

func (w *ExcelWorkbook) newSheet(name string) error {
	if w.sheets == 0 {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	w.sheets++
	return nil
}

func (w *ExcelWorkbook) writeRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}

func (w *ExcelWorkbook) applyStyle(sheet string, headers []string, rows [][]any, style reportservice.SheetStyle) error {
	if len(headers) == 0 {
		return nil
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}

	headerStyle, err := w.style(style.HeaderFill, style.HeaderFont, true)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	// column index -> text -> fill
	highlights := make(map[int]map[string]string)
	for col, h := range headers {
		if fills, ok := style.Highlights[h]; ok {
			highlights[col] = fills
		}
	}

	for i, row := range rows {
		rowNum := i + 2
		if fill := style.RowFills[i%2]; fill != "" {
			id, err := w.style(fill, "", false)
			if err != nil {
				return err
			}
			if err := w.file.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), id); err != nil {
				return err
			}
		}
		for col, fills := range highlights {
			if col >= len(row) {
				continue
			}
			text, ok := row[col].(string)
			if !ok {
				continue
			}
			fill, ok := fills[text]
			if !ok {
				continue
			}
			id, err := w.style(fill, "", false)
			if err != nil {
				return err
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := w.file.SetCellStyle(sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}

	if style.ColumnWidth > 0 {
		if err := w.file.SetColWidth(sheet, "A", lastCol, style.ColumnWidth); err != nil {
			return err
		}
	}
	return w.file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// style returns a cached style id for the fill/font combination.
func (w *ExcelWorkbook) style(fill, font string, bold bool) (int, error) {
	key := fmt.Sprintf("%s|%s|%t", fill, font, bold)
	if id, ok := w.styles[key]; ok {
		return id, nil
	}

	s := &excelize.Style{
		Font: &excelize.Font{Bold: bold, Color: font},
		Border: []excelize.Border{
			{Type: "bottom", Color: "D9D9D9", Style: 1},
		},
	}
	if fill != "" {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}}
	}
	if bold {
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	}

	id, err := w.file.NewStyle(s)
	if err != nil {
		return 0, fmt.Errorf("failed to create cell style: %w", err)
	}
	w.styles[key] = id
	return id, nil
}
