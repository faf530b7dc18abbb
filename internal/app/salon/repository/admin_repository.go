package repository

import (
	"context"
	"errors"
	"fmt"

	"atakuafor/internal/app/salon/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates the PostgreSQL-backed admin account
// repository. It talks to the pool directly; the table is tiny and the
// queries are fixed.
func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(
		ctx, query,
		admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE id = $1`

	var admin entity.AdminUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin user by id: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`

	var admin entity.AdminUser
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin user by username: %w", err)
	}

	return &admin, nil
}
