package repository

import (
	"context"
	"errors"

	"github.com/rfinnegan/account-portal/internal/domain/entity"
)

// ErrNotFound marks the absence of a matching record. Store-level failures
// (connectivity, constraint violations) are returned as distinct errors.
var ErrNotFound = errors.New("account not found")

// AccountRepository defines the interface for account persistence.
// UpdateProfile and UpdatePassword report the number of rows affected so the
// caller can distinguish a no-op update from a successful one.
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (int64, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error)
}
