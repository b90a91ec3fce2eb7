package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/services"
)

// httpError translates a service error into the API's status codes: 404 for
// missing records, 409 for schedule conflicts, 400 for everything the
// workflow refuses (bad transitions, empty undo history, capacity limits,
// claims on unavailable cases). The all-busy 503 never flows through here;
// the case-creation handler reports that outcome directly.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrScheduleConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNoHistory),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrNotAvailable),
		errors.Is(err, services.ErrNotPending):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
}
