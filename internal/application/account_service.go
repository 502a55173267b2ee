package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rfinnegan/account-portal/internal/domain/entity"
	repo "github.com/rfinnegan/account-portal/internal/domain/repository"
	"github.com/rfinnegan/account-portal/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password, and any
	// failure while comparing hashes. Callers must not distinguish them.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrHashingFailed marks a failure computing a password hash. Nothing is
	// persisted or compared when it occurs.
	ErrHashingFailed = errors.New("password hashing failed")
	// ErrAccountNotFound is returned for lookups of absent accounts.
	ErrAccountNotFound = errors.New("account not found")
)

// Service orchestrates account lifecycle operations over the hasher and the
// account store.
type Service struct {
	Repo    repo.AccountRepository
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewService(r repo.AccountRepository, logger *logrus.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{Repo: r, Logger: logger, Timeout: timeout}
}

// bound caps a store call so a stalled backend cannot hold a request open.
func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.Timeout)
}

// Register hashes the password and creates the account. The plaintext never
// reaches the store.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password string) (*entity.Account, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return nil, ErrHashingFailed
	}

	a := &entity.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	if err := s.Repo.Create(ctx, a); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("account creation failed")
		}
		return nil, err
	}
	return a, nil
}

// Authenticate validates email/password. Unknown email, wrong password, and
// comparison failures all collapse into ErrInvalidCredentials so the response
// never leaks which one happened.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.Account, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	a, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || a == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).Warn("account lookup failed during login")
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(a.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// GetAccount fetches an account by id.
func (s *Service) GetAccount(ctx context.Context, id string) (*entity.Account, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	a, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && a == nil) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", id).Warn("account lookup failed")
		}
		return nil, err
	}
	return a, nil
}

// UpdateProfile persists new name and email fields, reporting rows affected.
func (s *Service) UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (int64, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	rows, err := s.Repo.UpdateProfile(ctx, id, firstName, lastName, email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", id).Warn("profile update failed")
		}
		return 0, err
	}
	return rows, nil
}

// UpdatePassword hashes the new password and persists the hash, reporting
// rows affected. Hashing failure aborts before any store call.
func (s *Service) UpdatePassword(ctx context.Context, id, password string) (int64, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return 0, ErrHashingFailed
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	rows, err := s.Repo.UpdatePassword(ctx, id, hash)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", id).Warn("password update failed")
		}
		return 0, err
	}
	return rows, nil
}
