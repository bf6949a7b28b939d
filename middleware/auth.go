package middleware

import (
	"net/http"
	"strings"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/auth"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

// ValidateToken authenticates the request from the Authorization header
// and stashes the session user in the context.
func ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
		return
	}

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}

	c.Set(userIDKey, claims.UserID)
	c.Set(roleKey, claims.Role)
	c.Next()
}

// CurrentUser returns the session user stored by ValidateToken, or nil
// when the request is anonymous.
func CurrentUser(c *gin.Context) *SessionUser {
	idVal, ok := c.Get(userIDKey)
	if !ok {
		return nil
	}
	roleVal, ok := c.Get(roleKey)
	if !ok {
		return nil
	}
	return &SessionUser{ID: idVal.(uint), Role: roleVal.(models.Role)}
}

// RequireRoles translates the role-gate decision into HTTP: anonymous
// callers get 401 with a login redirect, wrong-role callers get 403 with
// their own dashboard path.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := Decide(CurrentUser(c), allowed)
		switch decision.Kind {
		case DecisionRedirectLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  "Authentication required",
				"redirect": decision.Target,
			})
		case DecisionRedirectDashboard:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":  "Access denied for your role",
				"redirect": decision.Target,
			})
		default:
			c.Next()
		}
	}
}

// RedirectAuthenticated guards guest-only endpoints (login, register):
// a caller presenting a valid token is pointed back at their dashboard.
func RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *SessionUser
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := auth.ValidateToken(tokenString); err == nil {
				user = &SessionUser{ID: claims.UserID, Role: claims.Role}
			}
		}
		decision := DecidePublic(user)
		if decision.Kind == DecisionRedirectDashboard {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":  "Already authenticated",
				"redirect": decision.Target,
			})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	return strings.TrimPrefix(tokenString, "Bearer ")
}
