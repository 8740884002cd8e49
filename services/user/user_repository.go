package userservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrUserHoldsAsset = errors.New("cannot delete user, still have asset assigned")
)

type UserRepository interface {
	CreateUser(ctx context.Context, req RegisterUserReq) (uuid.UUID, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]UserResponseModel, error)
	DeleteUserByID(ctx context.Context, userID uuid.UUID) error
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, req RegisterUserReq) (uuid.UUID, error) {
	var userID uuid.UUID
	err := r.DB.GetContext(ctx, &userID, `
		INSERT INTO users (name, email)
		VALUES ($1, lower($2))
		RETURNING id`, req.Name, req.Email)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return userID, nil
}

// ListUsers returns active users with the codes of the assets they currently hold.
func (r *PostgresUserRepository) ListUsers(ctx context.Context, filter UserFilter) ([]UserResponseModel, error) {
	limit := sql.NullInt64{Int64: int64(filter.Limit), Valid: filter.Limit > 0}

	users := []UserResponseModel{}
	err := r.DB.SelectContext(ctx, &users, `
		SELECT
			u.id, u.name, u.email, u.created_at,
			COALESCE(array_agg(a.code ORDER BY a.code) FILTER (WHERE a.id IS NOT NULL), '{}') AS assigned_assets
		FROM users u
		LEFT JOIN assets a ON a.assigned_to = u.id AND a.archived_at IS NULL
		WHERE u.archived_at IS NULL
		AND ($1 OR u.name ILIKE $2 OR u.email ILIKE $2)
		GROUP BY u.id
		ORDER BY u.name
		LIMIT $3 OFFSET $4`,
		!filter.IsSearchText, "%"+filter.SearchText+"%", limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (r *PostgresUserRepository) DeleteUserByID(ctx context.Context, userID uuid.UUID) (err error) {
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

	var count int
	err = tx.GetContext(ctx, &count, `
		SELECT count(*) FROM assets
		WHERE assigned_to = $1 AND archived_at IS NULL
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to check asset assignment: %w", err)
	}
	if count > 0 {
		return ErrUserHoldsAsset
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE users SET archived_at = now() WHERE id = $1 AND archived_at IS NULL
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to fetch rows affected: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
