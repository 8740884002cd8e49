package asset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"sundayschool/models"
)

var (
	ErrAssetNotFound        = errors.New("asset not found")
	ErrAssetAlreadyAssigned = errors.New("asset already assigned")
	ErrAssetNotAssigned     = errors.New("asset is not assigned")
	ErrAssetRetired         = errors.New("asset is retired")
	ErrAssetInUse           = errors.New("asset currently assigned to a user")
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateAssetCode   = errors.New("asset code already in use")
)

const uniqueViolation = "23505"

type AssetRepository interface {
	CreateAsset(ctx context.Context, req models.CreateAssetReq) (uuid.UUID, error)
	GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, assetID uuid.UUID, req models.UpdateAssetReq) error
	AssignAsset(ctx context.Context, assetID, userID uuid.UUID) error
	UnassignAsset(ctx context.Context, assetID uuid.UUID) error
	DeleteAsset(ctx context.Context, assetID uuid.UUID) error
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetColumns = `
	a.id, a.code, a.name, a.description, a.category, a.status, a.condition,
	a.location, a.supplier, a.serial_number,
	a.assigned_to AS assigned_to_id, u.name AS assigned_to,
	a.purchase_date, a.purchase_price, a.warranty_expiry,
	a.last_maintenance_date, a.next_maintenance_date,
	a.tags, a.images, a.created_at, a.updated_at`

const assetFrom = `
	FROM assets a
	LEFT JOIN users u ON u.id = a.assigned_to`

func (r *PostgresAssetRepository) CreateAsset(ctx context.Context, req models.CreateAssetReq) (uuid.UUID, error) {
	status := req.Status
	if status == "" {
		status = models.StatusAvailable
	}

	var assetID uuid.UUID
	err := r.DB.GetContext(ctx, &assetID, `
		INSERT INTO assets (
			code, name, description, category, status, condition,
			location, supplier, serial_number, purchase_date, purchase_price,
			warranty_expiry, last_maintenance_date, next_maintenance_date,
			tags, images
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		req.Code, req.Name, req.Description, req.Category, status, req.Condition,
		req.Location, req.Supplier, req.SerialNumber, req.PurchaseDate, req.PurchasePrice,
		req.WarrantyExpiry, req.LastMaintenanceDate, req.NextMaintenanceDate,
		pq.Array(nonNil(req.Tags)), pq.Array(nonNil(req.Images)))
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrDuplicateAssetCode
		}
		return uuid.Nil, fmt.Errorf("failed to insert asset: %w", err)
	}
	return assetID, nil
}

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `SELECT `+assetColumns+assetFrom+`
		WHERE a.id = $1 AND a.archived_at IS NULL`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

// ListAssets applies every filter that is set; empty lists match everything and a zero
// Limit returns all rows.
func (r *PostgresAssetRepository) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	limit := sql.NullInt64{Int64: int64(filter.Limit), Valid: filter.Limit > 0}

	args := []interface{}{
		!filter.IsSearchText,
		"%" + filter.SearchText + "%",
		pq.Array(nonNil(filter.Status)),
		pq.Array(nonNil(filter.Condition)),
		pq.Array(nonNil(filter.Category)),
		limit,
		filter.Offset,
	}

	query := `SELECT ` + assetColumns + assetFrom + `
		WHERE a.archived_at IS NULL
		AND (
			$1 OR (
				a.code ILIKE $2 OR
				a.name ILIKE $2 OR
				a.serial_number ILIKE $2 OR
				a.location ILIKE $2
			)
		)
		AND (cardinality($3::text[]) = 0 OR a.status = ANY($3))
		AND (cardinality($4::text[]) = 0 OR a.condition = ANY($4))
		AND (cardinality($5::text[]) = 0 OR a.category = ANY($5))
		ORDER BY a.created_at DESC, a.code
		LIMIT $6 OFFSET $7`

	assets := []models.Asset{}
	if err := r.DB.SelectContext(ctx, &assets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return assets, nil
}

// UpdateAsset applies a partial update. The status of an assigned asset belongs to the
// assignment, so a status change is refused until the asset is unassigned.
func (r *PostgresAssetRepository) UpdateAsset(ctx context.Context, assetID uuid.UUID, req models.UpdateAssetReq) (err error) {
	var tags, images interface{}
	if req.Tags != nil {
		tags = pq.Array(req.Tags)
	}
	if req.Images != nil {
		images = pq.Array(req.Images)
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	current, err := lockAsset(ctx, tx, assetID)
	if err != nil {
		return err
	}
	if req.Status != nil && current.AssignedTo != nil {
		return ErrAssetInUse
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE assets SET
			code = COALESCE($2, code),
			name = COALESCE($3, name),
			description = COALESCE($4, description),
			category = COALESCE($5, category),
			status = COALESCE($6, status),
			condition = COALESCE($7, condition),
			location = COALESCE($8, location),
			supplier = COALESCE($9, supplier),
			serial_number = COALESCE($10, serial_number),
			purchase_date = COALESCE($11, purchase_date),
			purchase_price = COALESCE($12, purchase_price),
			warranty_expiry = COALESCE($13, warranty_expiry),
			last_maintenance_date = COALESCE($14, last_maintenance_date),
			next_maintenance_date = COALESCE($15, next_maintenance_date),
			tags = COALESCE($16::text[], tags),
			images = COALESCE($17::text[], images),
			updated_at = now()
		WHERE id = $1 AND archived_at IS NULL`,
		assetID, req.Code, req.Name, req.Description, req.Category, req.Status, req.Condition,
		req.Location, req.Supplier, req.SerialNumber, req.PurchaseDate, req.PurchasePrice,
		req.WarrantyExpiry, req.LastMaintenanceDate, req.NextMaintenanceDate, tags, images)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAssetCode
		}
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) AssignAsset(ctx context.Context, assetID, userID uuid.UUID) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	current, err := lockAsset(ctx, tx, assetID)
	if err != nil {
		return err
	}
	if current.Status == models.StatusRetired {
		return ErrAssetRetired
	}
	if current.AssignedTo != nil {
		return ErrAssetAlreadyAssigned
	}

	var userExists bool
	err = tx.GetContext(ctx, &userExists, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE id = $1 AND archived_at IS NULL
		)`, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !userExists {
		return ErrUserNotFound
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE assets SET assigned_to = $2, status = 'assigned', updated_at = now()
		WHERE id = $1`, assetID, userID)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) UnassignAsset(ctx context.Context, assetID uuid.UUID) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	current, err := lockAsset(ctx, tx, assetID)
	if err != nil {
		return err
	}
	if current.AssignedTo == nil {
		return ErrAssetNotAssigned
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE assets SET assigned_to = NULL, status = 'available', updated_at = now()
		WHERE id = $1`, assetID)
	if err != nil {
		return fmt.Errorf("failed to clear assignment: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) DeleteAsset(ctx context.Context, assetID uuid.UUID) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	current, err := lockAsset(ctx, tx, assetID)
	if err != nil {
		return err
	}
	if current.AssignedTo != nil {
		return ErrAssetInUse
	}

	_, err = tx.ExecContext(ctx, `UPDATE assets SET archived_at = now() WHERE id = $1`, assetID)
	if err != nil {
		return fmt.Errorf("failed to archive asset: %w", err)
	}
	return nil
}

type lockedAsset struct {
	Status     models.AssetStatus `db:"status"`
	AssignedTo *uuid.UUID         `db:"assigned_to"`
}

func lockAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (lockedAsset, error) {
	var current lockedAsset
	err := tx.GetContext(ctx, &current, `
		SELECT status, assigned_to FROM assets
		WHERE id = $1 AND archived_at IS NULL
		FOR UPDATE`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lockedAsset{}, ErrAssetNotFound
		}
		return lockedAsset{}, fmt.Errorf("failed to lock asset: %w", err)
	}
	return current, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
