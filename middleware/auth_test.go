package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

func setupTestUser(t *testing.T, role string) *models.Session {
	t.Helper()
	db.Initialize()

	db.Users.Add(&models.User{
		UserID: "USER-001",
		Name:   "Test User",
		Email:  "test@example.com",
		Role:   role,
	})

	session, err := services.CreateSession("USER-001", role, "127.0.0.1", "test-agent")
	require.NoError(t, err)
	return session
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	okHandler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	t.Run("ValidSession", func(t *testing.T) {
		session := setupTestUser(t, models.RoleClient)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireAuth()(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, GetCurrentUser(c))
		assert.Equal(t, "USER-001", GetCurrentUser(c).UserID)
		require.NotNil(t, GetCurrentSession(c))
		assert.Equal(t, session.Token, GetCurrentSession(c).Token)
	})

	t.Run("NoCookie", func(t *testing.T) {
		setupTestUser(t, models.RoleClient)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireAuth()(okHandler)(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		setupTestUser(t, models.RoleClient)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "invalid-token"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireAuth()(okHandler)(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		db.Initialize()
		session, err := services.CreateSession("USER-GONE", models.RoleClient, "", "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handlerErr := RequireAuth()(okHandler)(c)
		httpErr, ok := handlerErr.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	okHandler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	t.Run("MatchingRole", func(t *testing.T) {
		session := setupTestUser(t, models.RoleLawyer)

		req := httptest.NewRequest(http.MethodGet, "/api/lawyer/cases", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireAuth()(RequireRole(models.RoleLawyer)(okHandler))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("WrongRole", func(t *testing.T) {
		session := setupTestUser(t, models.RoleClient)

		req := httptest.NewRequest(http.MethodGet, "/api/lawyer/cases", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireAuth()(RequireRole(models.RoleLawyer)(okHandler))(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("NotAuthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/lawyer/cases", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireRole(models.RoleLawyer)(okHandler)(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
