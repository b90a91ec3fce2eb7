package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/db"
	"legal_case_api_go/middleware"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

// setupServer resets the in-memory stores and returns an echo instance with
// the full route surface registered.
func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	db.Initialize()
	services.InitManagers()

	e := echo.New()
	RegisterRoutes(e)
	return e
}

func registerUser(t *testing.T, userID, role string, specialities ...string) *http.Cookie {
	t.Helper()

	hash, err := services.HashPassword("password")
	require.NoError(t, err)
	db.Users.Add(&models.User{
		UserID:       userID,
		Name:         userID,
		Email:        userID + "@example.com",
		Phone:        "555-0100",
		Password:     hash,
		Role:         role,
		Specialities: specialities,
		CreatedAt:    time.Now(),
	})

	session, err := services.CreateSession(userID, role, "127.0.0.1", "test-agent")
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: session.Token}
}

func doJSON(e *echo.Echo, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// createPoolCase files a general-pool case as the client and returns its ID.
func createPoolCase(t *testing.T, e *echo.Echo, clientCookie *http.Cookie, hearingDate time.Time) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/client/cases", map[string]any{
		"case_type":    "contract",
		"description":  "contract dispute",
		"hearing_date": hearingDate.Format("2006-01-02T15:04:05"),
	}, clientCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	cs, ok := body["case"].(map[string]any)
	require.True(t, ok)
	return cs["case_id"].(string)
}
