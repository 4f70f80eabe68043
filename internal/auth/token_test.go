package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/enquiry-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, expiresAt, err := tm.Generate(42, domain.StaffRoleViewer)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(3*time.Hour), expiresAt, time.Minute)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, int(domain.StaffRoleViewer), claims.RoleID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a").Generate(1, domain.StaffRoleAdmin)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &SessionClaims{
		UserID: 7,
		RoleID: int(domain.StaffRoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-4 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenManager(secret).Parse(expired)
	require.Error(t, err)
}

func TestParseRejectsWrongSigningMethod(t *testing.T) {
	claims := &SessionClaims{UserID: 7, RoleID: 1}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret").Parse(unsigned)
	require.Error(t, err)
}
