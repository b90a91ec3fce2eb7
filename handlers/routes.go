package handlers

import (
	"github.com/labstack/echo/v4"

	"legal_case_api_go/middleware"
	"legal_case_api_go/models"
)

// RegisterRoutes attaches the full API surface to the echo instance.
func RegisterRoutes(e *echo.Echo) {
	// Authentication (public)
	e.POST("/api/auth/login", LoginHandler)
	e.POST("/api/auth/signup", SignupHandler)
	e.POST("/api/auth/logout", LogoutHandler)

	authed := e.Group("/api")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/auth/me", MeHandler)
		authed.GET("/lawyers", LawyersHandler)
		authed.GET("/calendar/weekly", WeeklyCalendarHandler)
		authed.GET("/analytics/queue-stats", QueueStatsHandler)
		authed.GET("/analytics/urgency-distribution", UrgencyDistributionHandler)
	}

	client := e.Group("/api/client")
	client.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleClient))
	{
		client.GET("/dashboard", ClientDashboardHandler)
		client.GET("/cases", ClientCasesHandler)
		client.POST("/cases", CreateCaseHandler)
		client.GET("/cases/:case_id", ClientCaseDetailHandler)
		client.POST("/cases/:case_id/appointments", RequestAppointmentHandler)
		client.GET("/cases/:case_id/messages", CaseMessagesHandler)
		client.POST("/cases/:case_id/messages", SendMessageHandler)
		client.GET("/cases/:case_id/documents", CaseDocumentsHandler)
		client.POST("/cases/:case_id/documents", UploadDocumentHandler)
	}

	lawyer := e.Group("/api/lawyer")
	lawyer.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleLawyer))
	{
		lawyer.GET("/dashboard", LawyerDashboardHandler)
		lawyer.GET("/consultation-requests", ConsultationRequestsHandler)
		lawyer.POST("/appointments/:appointment_id/approve", ApproveAppointmentHandler)
		lawyer.POST("/appointments/:appointment_id/reject", RejectAppointmentHandler)
		lawyer.POST("/appointments/:appointment_id/reschedule", RescheduleAppointmentHandler)
		lawyer.GET("/cases", LawyerCasesHandler)
		lawyer.GET("/cases/:case_id", LawyerCaseDetailHandler)
		lawyer.POST("/cases/:case_id/update", UpdateCaseStatusHandler)
		lawyer.POST("/cases/:case_id/undo", UndoCaseUpdateHandler)
		lawyer.POST("/cases/:case_id/followups", ScheduleFollowUpHandler)
		lawyer.GET("/cases/:case_id/messages", CaseMessagesHandler)
		lawyer.POST("/cases/:case_id/messages", SendMessageHandler)
		lawyer.GET("/available-cases", AvailableCasesHandler)
		lawyer.GET("/pending-requests", PendingRequestsHandler)
		lawyer.POST("/cases/:case_id/claim", ClaimCaseHandler)
		lawyer.POST("/cases/:case_id/unclaim", UnclaimCaseHandler)
		lawyer.POST("/requests/:case_id/accept", AcceptDirectRequestHandler)
		lawyer.POST("/requests/:case_id/reject", RejectDirectRequestHandler)
	}
}
