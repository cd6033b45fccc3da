package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/utils"
)

// AdminCookie is the name of the cookie carrying the signed session token.
const AdminCookie = "admin_token"

// CtxAdminUser is the context key under which the guard stores the
// authenticated admin username.
const CtxAdminUser = "admin_user"

// RequireAdmin verifies the admin session cookie before any admin handler
// runs. Unauthenticated callers are redirected to the login page; no error
// is shown.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		claims, err := utils.VerifyAdminToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(CtxAdminUser, claims.Username)
		c.Next()
	}
}

// IsAdmin reports whether the current request carries a valid admin session,
// without redirecting. Used by the login page to skip the form for an
// already-authenticated admin.
func IsAdmin(c *gin.Context) bool {
	token, err := c.Cookie(AdminCookie)
	if err != nil || token == "" {
		return false
	}
	_, err = utils.VerifyAdminToken(token)
	return err == nil
}
