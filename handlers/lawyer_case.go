package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/db"
	"legal_case_api_go/middleware"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

type updateCaseRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type scheduleFollowUpRequest struct {
	Type          string `json:"type"` // consultation or hearing
	ScheduledDate string `json:"scheduled_date"`
	Notes         string `json:"notes"`
}

// LawyerCasesHandler lists the lawyer's assigned cases.
func LawyerCasesHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	return c.JSON(http.StatusOK, echo.Map{"cases": db.Cases.ByLawyer(lawyerID)})
}

// LawyerCaseDetailHandler returns one assigned case with its messages,
// documents, and follow-ups.
func LawyerCaseDetailHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, lawyerID, models.RoleLawyer) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}
	return caseDetail(c, caseID)
}

// UpdateCaseStatusHandler applies a status transition and notifies the
// client.
func UpdateCaseStatusHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, lawyerID, models.RoleLawyer) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	var req updateCaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Status required"})
	}

	if err := services.Cases.UpdateCaseStatus(caseID, req.Status, lawyerID, req.Notes); err != nil {
		return httpError(c, err)
	}

	if cs, ok := db.Cases.Get(caseID); ok {
		services.Notifications.Add(cs.ClientID, models.NotificationCaseUpdate,
			fmt.Sprintf("Your case status has been updated to %s", req.Status), caseID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Case updated"})
}

// UndoCaseUpdateHandler reverts the most recent status update.
func UndoCaseUpdateHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, lawyerID, models.RoleLawyer) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	if err := services.Cases.UndoLastUpdate(caseID); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Last update undone"})
}

// ScheduleFollowUpHandler records a consultation or hearing follow-up and
// notifies the client.
func ScheduleFollowUpHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, lawyerID, models.RoleLawyer) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	var req scheduleFollowUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Type == "" || req.ScheduledDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Type and date required"})
	}
	scheduledDate, err := services.ParseDateTime(req.ScheduledDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid scheduled date required"})
	}

	followup, err := services.FollowUps.Schedule(caseID, lawyerID, req.Type, scheduledDate, req.Notes)
	if err != nil {
		return httpError(c, err)
	}

	if _, err := services.Events.AddEvent(caseID, models.EventTypeFollowUp, scheduledDate, req.Notes, lawyerID); err != nil {
		return httpError(c, err)
	}

	if cs, ok := db.Cases.Get(caseID); ok {
		services.Notifications.Add(cs.ClientID, models.NotificationFollowUp,
			fmt.Sprintf("New %s scheduled for %s", req.Type, req.ScheduledDate), caseID)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Follow-up scheduled", "followup": followup})
}
