package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/middleware"
	"github.com/tmarchal/agence-voyage/routes"
)

// newTestServer boots a fresh database in a temp dir and wires the full
// router the same way cmd/main.go does.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))

	config.ConnectDB()

	r := gin.New()
	r.Use(middleware.BodySizeLimit())
	r.Use(sessions.Sessions("agence_session", cookie.NewStore([]byte("test-session-secret"))))
	r.LoadHTMLGlob(filepath.Join("..", "templates", "*.html"))
	routes.SetupRoutes(r)
	return r
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAsAdmin authenticates with the seeded credentials and returns the
// session cookie.
func loginAsAdmin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	w := postForm(r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.AdminCookie && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("admin session cookie was not set")
	return nil
}
