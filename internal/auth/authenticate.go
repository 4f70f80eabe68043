package auth

import (
	"strings"

	"github.com/spec-kit/enquiry-service/internal/domain"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

// Authenticate verifies the Authorization header value and returns the acting
// staff id embedded in the token. Every failure mode (missing header, wrong
// scheme, invalid or expired token, insufficient role) yields the identical
// error so callers cannot probe which check rejected them. An empty
// requiredRoles set admits any authenticated principal.
func Authenticate(tokens *TokenManager, requiredRoles []domain.StaffRole, header string) (int64, error) {
	deny := util.NewUnauthorized("User has no permission")

	if header == "" {
		return 0, deny
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, deny
	}

	claims, err := tokens.Parse(parts[1])
	if err != nil {
		return 0, deny
	}

	role := domain.StaffRole(claims.RoleID)
	if !role.Valid() {
		return 0, deny
	}

	if len(requiredRoles) > 0 {
		allowed := false
		for _, required := range requiredRoles {
			if role == required {
				allowed = true
				break
			}
		}
		if !allowed {
			return 0, deny
		}
	}

	return claims.UserID, nil
}
