package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
)

// LawyersHandler lists every registered lawyer for client-side selection.
func LawyersHandler(c echo.Context) error {
	lawyers := db.Users.Lawyers()
	directory := make([]models.PublicUser, len(lawyers))
	for i, lawyer := range lawyers {
		directory[i] = lawyer.Public()
	}
	return c.JSON(http.StatusOK, echo.Map{"lawyers": directory})
}
