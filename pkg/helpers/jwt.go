package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rfinnegan/account-portal/internal/domain/entity"
)

// ErrMissingSecret is a startup-class misconfiguration: the process must not
// serve requests without a signing secret.
var ErrMissingSecret = errors.New("session signing secret is not configured")

// TokenIssuer mints and validates the signed session tokens carried by the
// session cookie. The secret is loaded once at process start and injected.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// AccountClaims embeds the sanitized account record as session claims.
// The password hash is stripped before the token is signed.
type AccountClaims struct {
	AccountID string `json:"account_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = 3600 * time.Second
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the fixed token lifetime.
func (i *TokenIssuer) TTL() time.Duration { return i.ttl }

// Issue signs a session token for the account. The claims carry a copy of
// the record with the password hash stripped and expire at issuance + TTL.
func (i *TokenIssuer) Issue(a *entity.Account) (string, time.Time, error) {
	exp := time.Now().Add(i.ttl)
	sanitized := a.Sanitized()
	claims := &AccountClaims{
		AccountID: sanitized.ID,
		FirstName: sanitized.FirstName,
		LastName:  sanitized.LastName,
		Email:     sanitized.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(i.secret)
	return s, exp, err
}

// Parse validates a session token and returns its claims.
func (i *TokenIssuer) Parse(tokenStr string) (*AccountClaims, error) {
	claims := &AccountClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
