package router

import (
	"net/http"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SessionChecker tells signed-in sessions apart from anonymous ones.
type SessionChecker interface {
	IsAuthenticated(session *domain.Session) bool
}

// Admit decides whether a session may open a route. When it may not, it
// returns where to send the browser instead.
func Admit(access Access, authenticated bool) (redirect string, ok bool) {
	switch {
	case access == Private && !authenticated:
		return LoginPath, false
	case access == Public && authenticated:
		return DashboardPath, false
	default:
		return "", true
	}
}

// PrivateRoute sends anonymous sessions to the login page.
func PrivateRoute(checker SessionChecker) gin.HandlerFunc {
	return guard(checker, Private)
}

// PublicRoute sends signed-in sessions to the dashboard.
func PublicRoute(checker SessionChecker) gin.HandlerFunc {
	return guard(checker, Public)
}

func guard(checker SessionChecker, access Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := middleware.GetSessionFromContext(c)
		if target, ok := Admit(access, checker.IsAuthenticated(session)); !ok {
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
