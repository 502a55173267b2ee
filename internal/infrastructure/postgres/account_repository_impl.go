package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rfinnegan/account-portal/internal/domain/entity"
	"github.com/rfinnegan/account-portal/internal/domain/repository"
)

// poolIface is the slice of pgxpool.Pool the repository needs. It lets tests
// substitute a pgxmock pool.
type poolIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AccountRepository implements repository.AccountRepository on PostgreSQL.
type AccountRepository struct {
	pool poolIface
}

func NewAccountRepository(pool poolIface) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.FirstName, a.LastName, a.Email, a.PasswordHash)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a := &entity.Account{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email)

	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	a := &entity.Account{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id)

	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET first_name = $1, last_name = $2, email = $3, updated_at = now()
		WHERE id = $4
	`, firstName, lastName, email, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET password_hash = $1, updated_at = now()
		WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
