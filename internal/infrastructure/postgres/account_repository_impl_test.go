package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfinnegan/account-portal/internal/domain/entity"
	"github.com/rfinnegan/account-portal/internal/domain/repository"
)

func newMockRepo(t *testing.T) (*AccountRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewAccountRepository(mock), mock
}

func TestAccountRepository_Create(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs("Jane", "Doe", "jane@example.com", "$2a$10$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("42", now, now))

	a := &entity.Account{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PasswordHash: "$2a$10$hash"}
	require.NoError(t, r.Create(context.Background(), a))
	assert.Equal(t, "42", a.ID)
	assert.Equal(t, now, a.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at\s+FROM accounts\s+WHERE email =`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash", "created_at", "updated_at"}).
			AddRow("42", "Jane", "Doe", "jane@example.com", "$2a$10$hash", now, now))

	a, err := r.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "42", a.ID)
	assert.Equal(t, "$2a$10$hash", a.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByEmail_Absent(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE email =`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByID_Absent(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE id =`).
		WithArgs("999").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByEmail_StoreError(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE email =`).
		WithArgs("jane@example.com").
		WillReturnError(errors.New("connection refused"))

	_, err := r.GetByEmail(context.Background(), "jane@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateProfile(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE accounts\s+SET first_name =`).
		WithArgs("Janet", "Doe", "janet@example.com", "42").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	rows, err := r.UpdateProfile(context.Background(), "42", "Janet", "Doe", "janet@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdatePassword_NoMatch(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE accounts\s+SET password_hash =`).
		WithArgs("$2a$10$newhash", "999").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	rows, err := r.UpdatePassword(context.Background(), "999", "$2a$10$newhash")
	require.NoError(t, err)
	assert.Zero(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}
