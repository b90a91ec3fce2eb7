package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/db"
	"legal_case_api_go/middleware"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

// Package level variable holding a dummy hash so failed logins take the same
// time whether or not the email exists.
var globalDummyHash string

func init() {
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	if hash != "" {
		globalDummyHash = hash
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginHandler authenticates a client or lawyer and opens a session.
func LoginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password required"})
	}

	user, ok := db.Users.ByEmail(email)
	if !ok {
		services.VerifyPassword(globalDummyHash, req.Password)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	if !services.VerifyPassword(user.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	session, err := services.CreateSession(user.UserID, user.Role, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Could not create session"})
	}
	middleware.SetSessionCookie(c, session, c.Scheme() == "https")

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    user.Public(),
	})
}

// SignupHandler registers a new client account and logs it in.
func SignupHandler(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields required"})
	}

	if db.Users.EmailExists(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already registered"})
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Could not register user"})
	}

	user := &models.User{
		UserID:    models.NewClientID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		Role:      models.RoleClient,
		CreatedAt: time.Now(),
	}
	db.Users.Add(user)

	session, err := services.CreateSession(user.UserID, user.Role, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Could not create session"})
	}
	middleware.SetSessionCookie(c, session, c.Scheme() == "https")

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful",
		"user":    user.Public(),
	})
}

// LogoutHandler closes the current session.
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		services.DeleteSession(cookie.Value)
	}
	middleware.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// MeHandler returns the authenticated user's profile.
func MeHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, user.Public())
}
