package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestExporter(t *testing.T) (*Exporter, *MockWorkbookBuilder, *int) {
	ctrl := gomock.NewController(t)
	wb := NewMockWorkbookBuilder(ctrl)
	created := 0

	e := NewExporter(DefaultOptions(), func() (WorkbookBuilder, error) {
		created++
		return wb, nil
	}, zap.NewNop())
	e.now = func() time.Time { return testNow }
	return e, wb, &created
}

const testFileName = "Assets_Report_2026-10-17_12-00-00.xlsx"

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("writes every sheet in order then commits once", func(t *testing.T) {
		e, wb, created := newTestExporter(t)
		gomock.InOrder(
			wb.EXPECT().AddSheet(SheetOverview, overviewHeaders, gomock.Len(4), overviewStyle).Return(nil),
			wb.EXPECT().AddSheet(SheetDetails, detailHeaders, gomock.Len(4), detailStyle).Return(nil),
			wb.EXPECT().AddSheet(SheetMaintenance, maintenanceHeaders, gomock.Len(2), maintenanceStyle).Return(nil),
			wb.EXPECT().AddRawSheet(SheetStatistics, gomock.Any(), statisticsStyle).Return(nil),
			wb.EXPECT().AddSheet(SheetAssignment, assignmentHeaders, gomock.Len(4), assignmentStyle).Return(nil),
			wb.EXPECT().Commit(ctx, testFileName).Return(nil),
			wb.EXPECT().Close().Return(nil),
		)

		res, err := e.Export(ctx, sampleAssets())
		require.NoError(t, err)

		assert.Equal(t, 1, *created)
		assert.Equal(t, testFileName, res.FileName)
		assert.Equal(t, 4, res.Count)
		assert.Equal(t, "Exported 4 assets", res.Message())
	})

	t.Run("empty input still produces every sheet", func(t *testing.T) {
		e, wb, _ := newTestExporter(t)
		wb.EXPECT().AddSheet(gomock.Any(), gomock.Any(), gomock.Len(0), gomock.Any()).Return(nil).Times(4)
		wb.EXPECT().AddRawSheet(SheetStatistics, gomock.Any(), gomock.Any()).Return(nil)
		wb.EXPECT().Commit(ctx, testFileName).Return(nil)
		wb.EXPECT().Close().Return(nil)

		res, err := e.Export(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count)
	})

	t.Run("malformed input never touches the workbook", func(t *testing.T) {
		e, _, created := newTestExporter(t)

		assets := sampleAssets()
		assets[0].Code = ""
		_, err := e.Export(ctx, assets)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedAsset)
		assert.Equal(t, 0, *created)
	})

	t.Run("sheet failure aborts before commit", func(t *testing.T) {
		e, wb, _ := newTestExporter(t)
		gomock.InOrder(
			wb.EXPECT().AddSheet(SheetOverview, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			wb.EXPECT().AddSheet(SheetDetails, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			wb.EXPECT().AddSheet(SheetMaintenance, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("sheet rejected")),
			wb.EXPECT().Close().Return(nil),
		)

		_, err := e.Export(ctx, sampleAssets())
		require.Error(t, err)
		assert.Contains(t, err.Error(), SheetMaintenance)
	})

	t.Run("commit failure is reported", func(t *testing.T) {
		e, wb, _ := newTestExporter(t)
		wb.EXPECT().AddSheet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
		wb.EXPECT().AddRawSheet(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		wb.EXPECT().Commit(ctx, testFileName).Return(errors.New("disk full"))
		wb.EXPECT().Close().Return(nil)

		_, err := e.Export(ctx, sampleAssets())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("close failure after commit keeps the result", func(t *testing.T) {
		e, wb, _ := newTestExporter(t)
		wb.EXPECT().AddSheet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
		wb.EXPECT().AddRawSheet(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		wb.EXPECT().Commit(ctx, testFileName).Return(nil)
		wb.EXPECT().Close().Return(errors.New("already closed"))

		res, err := e.Export(ctx, sampleAssets())
		require.NoError(t, err)
		assert.Equal(t, testFileName, res.FileName)
	})

	t.Run("factory failure is reported", func(t *testing.T) {
		e := NewExporter(DefaultOptions(), func() (WorkbookBuilder, error) {
			return nil, errors.New("no workbook")
		}, nil)

		_, err := e.Export(ctx, sampleAssets())
		require.Error(t, err)
	})
}

func TestExportResultMessage(t *testing.T) {
	assert.Equal(t, "Exported 1 asset", ExportResult{Count: 1}.Message())
	assert.Equal(t, "Exported 0 assets", ExportResult{}.Message())
}
