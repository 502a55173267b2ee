package helpers

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfinnegan/account-portal/internal/domain/entity"
)

func testAccount() *entity.Account {
	return &entity.Account{
		ID:           "a1b2c3",
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$someperfectlyvalidbcrypthashvalue",
	}
}

func TestNewTokenIssuer_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("", time.Hour)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", 3600*time.Second)
	require.NoError(t, err)

	a := testAccount()
	before := time.Now()
	token, exp, err := issuer.Issue(a)
	require.NoError(t, err)

	// Lifetime is exactly 3600 seconds from issuance.
	lifetime := exp.Sub(before)
	assert.InDelta(t, (3600 * time.Second).Seconds(), lifetime.Seconds(), 2)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, a.ID, claims.AccountID)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestTokenIssuer_NeverEmbedsPasswordHash(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	a := testAccount()
	token, _, err := issuer.Issue(a)
	require.NoError(t, err)

	// JWT payloads are base64, not encrypted; decode and check the claims.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), a.PasswordHash)
	// Issuing must not mutate the source record.
	assert.NotEmpty(t, a.PasswordHash)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue(testAccount())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	t.Parallel()

	issuer := &TokenIssuer{secret: []byte("test-secret"), ttl: -time.Minute}
	token, _, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}
