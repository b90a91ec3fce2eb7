package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/db"
	"legal_case_api_go/services"
)

// QueueStatsHandler reports appointment dispatch queue lengths.
func QueueStatsHandler(c echo.Context) error {
	normal, urgent := services.Appointments.QueueStats()
	return c.JSON(http.StatusOK, echo.Map{
		"normal_queue_length": normal,
		"urgent_queue_length": urgent,
		"total_pending":       normal + urgent,
	})
}

// UrgencyDistributionHandler reports how many cases are urgent across the
// whole store.
func UrgencyDistributionHandler(c echo.Context) error {
	all := db.Cases.All()
	urgent := 0
	for _, cs := range all {
		if cs.IsUrgent() {
			urgent++
		}
	}

	percentage := 0.0
	if len(all) > 0 {
		percentage = float64(urgent) / float64(len(all)) * 100
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_cases":       len(all),
		"urgent_cases":      urgent,
		"normal_cases":      len(all) - urgent,
		"urgent_percentage": percentage,
	})
}
