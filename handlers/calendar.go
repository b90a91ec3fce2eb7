package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/middleware"
	"legal_case_api_go/services"
)

// WeeklyCalendarHandler returns the user's case events inside the week
// containing the optional ?start= date (default: today).
func WeeklyCalendarHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	start := time.Now()
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := services.ParseDateTime(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid start date required"})
		}
		start = parsed
	}

	events := services.Events.WeeklyEvents(user.UserID, user.Role, start)
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}
