package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/db"
	"legal_case_api_go/middleware"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

const dashboardCaseLimit = 5

// ClientDashboardHandler summarizes the client's open cases and
// notifications.
func ClientDashboardHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID

	cases := db.Cases.ByClient(clientID)
	active := []models.Case{}
	for _, cs := range cases {
		if cs.Status != models.CaseStatusClosed {
			active = append(active, cs)
		}
	}
	if len(active) > dashboardCaseLimit {
		active = active[:dashboardCaseLimit]
	}

	return c.JSON(http.StatusOK, echo.Map{
		"active_cases":         active,
		"total_cases":          len(cases),
		"unread_notifications": services.Notifications.UnreadCount(clientID),
		"notifications":        services.Notifications.Notifications(clientID),
	})
}

// LawyerDashboardHandler summarizes the lawyer's workload.
func LawyerDashboardHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID

	cases := db.Cases.ByLawyer(lawyerID)
	urgent := []models.Case{}
	for _, cs := range cases {
		if cs.IsUrgent() {
			urgent = append(urgent, cs)
		}
	}
	urgentCount := len(urgent)
	if len(urgent) > dashboardCaseLimit {
		urgent = urgent[:dashboardCaseLimit]
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_cases":            len(cases),
		"urgent_cases_count":     urgentCount,
		"urgent_cases":           urgent,
		"pending_requests_count": len(services.Appointments.PendingRequests()),
		"unread_notifications":   services.Notifications.UnreadCount(lawyerID),
	})
}
