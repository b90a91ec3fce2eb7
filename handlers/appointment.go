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

type requestAppointmentRequest struct {
	PreferredDatetime string `json:"preferred_datetime"`
}

type approveAppointmentRequest struct {
	ConfirmedDatetime string `json:"confirmed_datetime"`
}

type rejectAppointmentRequest struct {
	Reason string `json:"reason"`
}

type rescheduleAppointmentRequest struct {
	NewDatetime string `json:"new_datetime"`
}

// RequestAppointmentHandler files an appointment request on the client's
// case. Urgent cases route to the urgent dispatch queue.
func RequestAppointmentHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, clientID, models.RoleClient) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	var req requestAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	preferred, err := services.ParseDateTime(req.PreferredDatetime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Preferred datetime required"})
	}

	cs, ok := db.Cases.Get(caseID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Case not found"})
	}

	appointment, err := services.Appointments.RequestAppointment(caseID, clientID, preferred, cs.IsUrgent())
	if err != nil {
		return httpError(c, err)
	}

	if cs.LawyerID != nil {
		services.Notifications.Add(*cs.LawyerID, models.NotificationApptRequest,
			fmt.Sprintf("New appointment request for case %s", caseID), appointment.AppointmentID)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Appointment requested",
		"appointment": appointment,
	})
}

// ConsultationRequestsHandler lists queued appointment requests for lawyers,
// urgent first.
func ConsultationRequestsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"requests": services.Appointments.PendingRequests()})
}

// ApproveAppointmentHandler confirms an appointment at the given time.
func ApproveAppointmentHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	appointmentID := c.Param("appointment_id")

	var req approveAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	confirmed, err := services.ParseDateTime(req.ConfirmedDatetime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Confirmed datetime required"})
	}

	if err := services.Appointments.Approve(appointmentID, lawyerID, confirmed); err != nil {
		return httpError(c, err)
	}

	if appointment, ok := services.Appointments.Get(appointmentID); ok {
		services.Notifications.Add(appointment.ClientID, models.NotificationApptApproved,
			fmt.Sprintf("Your appointment has been approved for %s", req.ConfirmedDatetime), appointmentID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Appointment approved"})
}

// RejectAppointmentHandler rejects an appointment request with a reason.
func RejectAppointmentHandler(c echo.Context) error {
	appointmentID := c.Param("appointment_id")

	var req rejectAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Reason == "" {
		req.Reason = "No reason provided"
	}

	if err := services.Appointments.Reject(appointmentID, req.Reason); err != nil {
		return httpError(c, err)
	}

	if appointment, ok := services.Appointments.Get(appointmentID); ok {
		services.Notifications.Add(appointment.ClientID, models.NotificationApptRejected,
			fmt.Sprintf("Your appointment was rejected: %s", req.Reason), appointmentID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Appointment rejected"})
}

// RescheduleAppointmentHandler moves an appointment to a new time.
func RescheduleAppointmentHandler(c echo.Context) error {
	appointmentID := c.Param("appointment_id")

	var req rescheduleAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	newTime, err := services.ParseDateTime(req.NewDatetime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "New datetime required"})
	}

	if err := services.Appointments.Reschedule(appointmentID, newTime); err != nil {
		return httpError(c, err)
	}

	if appointment, ok := services.Appointments.Get(appointmentID); ok {
		services.Notifications.Add(appointment.ClientID, models.NotificationApptRescheduled,
			fmt.Sprintf("Your appointment has been rescheduled to %s", req.NewDatetime), appointmentID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Appointment rescheduled"})
}
