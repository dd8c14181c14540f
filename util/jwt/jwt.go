package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issue signs a moderator session token. Verification happens in the
// moderator route group's echo-jwt middleware.
func Issue(secret, subject, role string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
