package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidhost/internal/service"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(t *testing.T, authService service.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/dashboard", SessionMiddleware(authService), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return router
}

func TestSessionMiddleware(t *testing.T) {
	authService := service.NewAuthService("hunter2", "test-secret", time.Hour)
	router := newProtectedRouter(t, authService)

	t.Run("redirects to login without a cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin?error=") {
			t.Errorf("location = %q, want /admin?error=...", loc)
		}
	})

	t.Run("redirects on a tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
		}
	})

	t.Run("passes with a valid session cookie", func(t *testing.T) {
		token, err := authService.Login("hunter2")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if rec.Body.String() != "dashboard" {
			t.Errorf("body = %q", rec.Body.String())
		}
	})
}

func TestRedirectHelpersEscapeMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		redirectWithError(c, "/admin", "needs escaping & spaces")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	loc := rec.Header().Get("Location")
	if strings.Contains(loc, " ") || strings.Contains(loc, "&s") {
		t.Errorf("location %q contains unescaped characters", loc)
	}
	if !strings.HasPrefix(loc, "/admin?error=") {
		t.Errorf("location = %q, want /admin?error=...", loc)
	}
}
