package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/enquiry-service/internal/domain"
)

// Session tokens expire three hours after issuance.
const sessionTTL = 3 * time.Hour

// TokenManager handles issuing and validating session JWTs.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// SessionClaims describes the session token payload.
type SessionClaims struct {
	UserID int64 `json:"userId"`
	RoleID int   `json:"roleId"`
	jwt.RegisteredClaims
}

// Generate builds and signs a session token for the staff member.
func (tm *TokenManager) Generate(staffID int64, role domain.StaffRole) (string, time.Time, error) {
	expiresAt := time.Now().Add(sessionTTL)
	claims := &SessionClaims{
		UserID: staffID,
		RoleID: int(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns the claims.
func (tm *TokenManager) Parse(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
