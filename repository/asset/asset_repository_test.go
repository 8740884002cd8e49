package asset

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundayschool/models"
)

var assetRowColumns = []string{
	"id", "code", "name", "description", "category", "status", "condition",
	"location", "supplier", "serial_number", "assigned_to_id", "assigned_to",
	"purchase_date", "purchase_price", "warranty_expiry",
	"last_maintenance_date", "next_maintenance_date",
	"tags", "images", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*PostgresAssetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresAssetRepository{DB: sqlx.NewDb(db, "postgres")}, mock
}

func TestCreateAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	req := models.CreateAssetReq{
		Code:          "AST-001",
		Name:          "Projector",
		Category:      "Electronics",
		Condition:     models.ConditionGood,
		PurchasePrice: decimal.NewFromInt(1000),
		Tags:          []string{"hall"},
	}

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedID  uuid.UUID
		expectedErr error
	}{
		{
			name: "inserts asset with default status",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO assets`).
					WithArgs("AST-001", "Projector", "", "Electronics", models.StatusAvailable, models.ConditionGood,
						"", "", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assetID.String()))
			},
			expectedID: assetID,
		},
		{
			name: "duplicate code",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO assets`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			expectedID:  uuid.Nil,
			expectedErr: ErrDuplicateAssetCode,
		},
		{
			name: "query error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO assets`).
					WillReturnError(errors.New("db error"))
			},
			expectedID:  uuid.Nil,
			expectedErr: errors.New("failed to insert asset: db error"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.mockSetup(mock)

			gotID, err := repo.CreateAsset(ctx, req)
			assert.Equal(t, tc.expectedID, gotID)
			if tc.expectedErr != nil {
				assert.EqualError(t, err, tc.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAssetByID(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	userID := uuid.New()
	purchased := time.Date(2023, 10, 17, 0, 0, 0, 0, time.UTC)
	created := time.Date(2023, 10, 18, 9, 0, 0, 0, time.UTC)

	t.Run("maps row including assignee", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows(assetRowColumns).AddRow(
			assetID.String(), "AST-001", "Projector", "", "Electronics", "assigned", "good",
			"Main Hall", "", "SN-1", userID.String(), "Grace Mensah",
			purchased, "1000.00", nil,
			nil, nil,
			[]byte("{hall,av}"), []byte("{}"), created, created,
		)
		mock.ExpectQuery(`FROM assets a\s+LEFT JOIN users u ON u.id = a.assigned_to\s+WHERE a.id = \$1 AND a.archived_at IS NULL`).
			WithArgs(assetID).
			WillReturnRows(rows)

		got, err := repo.GetAssetByID(ctx, assetID)
		require.NoError(t, err)
		assert.Equal(t, assetID, got.ID)
		assert.Equal(t, models.StatusAssigned, got.Status)
		require.NotNil(t, got.AssignedToID)
		assert.Equal(t, userID, *got.AssignedToID)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, "Grace Mensah", *got.AssignedTo)
		assert.True(t, decimal.NewFromInt(1000).Equal(got.PurchasePrice))
		assert.Equal(t, pq.StringArray{"hall", "av"}, got.Tags)
		assert.Nil(t, got.WarrantyExpiry)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE a.id = \$1`).
			WithArgs(assetID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetAssetByID(ctx, assetID)
		assert.ErrorIs(t, err, ErrAssetNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAssets(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    models.AssetFilter
		limitArg  sql.NullInt64
		expectErr bool
		rowCount  int
	}{
		{
			name:     "paged search",
			filter:   models.AssetFilter{IsSearchText: true, SearchText: "proj", Status: []string{"available"}, Limit: 10, Offset: 20},
			limitArg: sql.NullInt64{Int64: 10, Valid: true},
			rowCount: 2,
		},
		{
			name:     "zero limit returns everything",
			filter:   models.AssetFilter{},
			limitArg: sql.NullInt64{},
			rowCount: 1,
		},
		{
			name:      "query error",
			filter:    models.AssetFilter{},
			limitArg:  sql.NullInt64{},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			expect := mock.ExpectQuery(`WHERE a.archived_at IS NULL`).
				WithArgs(!tc.filter.IsSearchText, "%"+tc.filter.SearchText+"%",
					sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
					tc.limitArg, tc.filter.Offset)

			if tc.expectErr {
				expect.WillReturnError(errors.New("db error"))
			} else {
				rows := sqlmock.NewRows(assetRowColumns)
				for i := 0; i < tc.rowCount; i++ {
					rows.AddRow(
						uuid.New().String(), "AST-00"+string(rune('1'+i)), "Projector", "", "Electronics", "available", "good",
						"", "", nil, nil, nil,
						nil, "0", nil,
						nil, nil,
						[]byte("{}"), []byte("{}"), created, created,
					)
				}
				expect.WillReturnRows(rows)
			}

			got, err := repo.ListAssets(ctx, tc.filter)
			if tc.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to fetch assets")
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tc.rowCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	name := "Projector v2"
	retired := models.StatusRetired
	lockQuery := `SELECT status, assigned_to FROM assets`

	tests := []struct {
		name        string
		req         models.UpdateAssetReq
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "updates",
			req:  models.UpdateAssetReq{Name: &name},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
				mock.ExpectExec(`UPDATE assets SET`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "renames assigned asset",
			req:  models.UpdateAssetReq{Name: &name},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("assigned", uuid.New().String()))
				mock.ExpectExec(`UPDATE assets SET`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "retires unassigned asset",
			req:  models.UpdateAssetReq{Status: &retired},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
				mock.ExpectExec(`UPDATE assets SET`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "status change on assigned asset",
			req:  models.UpdateAssetReq{Status: &retired},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("assigned", uuid.New().String()))
				mock.ExpectRollback()
			},
			expectedErr: ErrAssetInUse,
		},
		{
			name: "missing asset",
			req:  models.UpdateAssetReq{Name: &name},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: ErrAssetNotFound,
		},
		{
			name: "duplicate code",
			req:  models.UpdateAssetReq{Name: &name},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
				mock.ExpectExec(`UPDATE assets SET`).
					WillReturnError(&pq.Error{Code: uniqueViolation})
				mock.ExpectRollback()
			},
			expectedErr: ErrDuplicateAssetCode,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.mockSetup(mock)

			err := repo.UpdateAsset(ctx, assetID, tc.req)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAssignAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	userID := uuid.New()
	lockQuery := `SELECT status, assigned_to FROM assets`

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "assigns available asset",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
				mock.ExpectQuery(`SELECT 1 FROM users`).WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectExec(`UPDATE assets SET assigned_to = \$2, status = 'assigned'`).
					WithArgs(assetID, userID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "already assigned",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("assigned", uuid.New().String()))
				mock.ExpectRollback()
			},
			expectedErr: ErrAssetAlreadyAssigned,
		},
		{
			name: "retired asset",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("retired", nil))
				mock.ExpectRollback()
			},
			expectedErr: ErrAssetRetired,
		},
		{
			name: "unknown user",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).
					WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
				mock.ExpectQuery(`SELECT 1 FROM users`).WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "asset not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(assetID).WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: ErrAssetNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.mockSetup(mock)

			err := repo.AssignAsset(ctx, assetID, userID)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnassignAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()

	t.Run("clears assignment", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status, assigned_to FROM assets`).WithArgs(assetID).
			WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("assigned", uuid.New().String()))
		mock.ExpectExec(`UPDATE assets SET assigned_to = NULL, status = 'available'`).
			WithArgs(assetID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UnassignAsset(ctx, assetID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not assigned", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status, assigned_to FROM assets`).WithArgs(assetID).
			WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.UnassignAsset(ctx, assetID), ErrAssetNotAssigned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()

	t.Run("archives unassigned asset", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status, assigned_to FROM assets`).WithArgs(assetID).
			WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("available", nil))
		mock.ExpectExec(`UPDATE assets SET archived_at = now\(\) WHERE id = \$1`).
			WithArgs(assetID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteAsset(ctx, assetID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses assigned asset", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status, assigned_to FROM assets`).WithArgs(assetID).
			WillReturnRows(sqlmock.NewRows([]string{"status", "assigned_to"}).AddRow("assigned", uuid.New().String()))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.DeleteAsset(ctx, assetID), ErrAssetInUse)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
