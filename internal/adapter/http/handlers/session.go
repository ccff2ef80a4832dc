package handlers

import (
	"net/http"
	"strings"

	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "billed.session"

// RequireEmployeeSession extracts the employee identity set at login from
// the request headers and makes it available as an explicit Session value.
// Requests without an email are rejected before reaching a handler.
func RequireEmployeeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader("X-User-Email"))
		if email == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing employee identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		role := strings.TrimSpace(c.GetHeader("X-User-Role"))
		if role == "" {
			role = "Employee"
		}
		c.Set(sessionContextKey, entities.Session{Email: email, Role: role})
		c.Next()
	}
}

// SessionFromContext returns the session stored by RequireEmployeeSession.
func SessionFromContext(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}
