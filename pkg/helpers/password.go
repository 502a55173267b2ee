package helpers

import "golang.org/x/crypto/bcrypt"

// hashCost is the fixed bcrypt work factor for account passwords.
const hashCost = 10

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a bcrypt hash with a plain password in constant
// time. Any failure, including a malformed hash, reads as a mismatch so a
// login attempt can be rejected without surfacing internal detail.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
