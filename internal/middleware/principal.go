package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader = "X-User-ID"
	RoleHeader   = "X-User-Role"

	principalKey = "principal"
)

// Principal reads the identity established by the upstream auth layer.
// This service trusts the headers; verifying them is the edge proxy's
// job.
func Principal() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID := c.GetHeader(UserIDHeader)
		if _, err := uuid.Parse(userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or invalid user identity"},
			)
			return
		}

		role := domain.RoleUser
		if c.GetHeader(RoleHeader) == string(domain.RoleAdmin) {
			role = domain.RoleAdmin
		}

		c.Set(principalKey, domain.Principal{UserID: userID, Role: role})
		c.Next()
	}
}

// PrincipalFrom fetches what Principal stored on the context.
func PrincipalFrom(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
