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

type sendMessageRequest struct {
	Content string `json:"content"`
}

// CaseMessagesHandler lists the case's message log. Shared by the client and
// lawyer groups; access is checked against the caller's role.
func CaseMessagesHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, user.UserID, user.Role) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	return c.JSON(http.StatusOK, echo.Map{"messages": services.Messages.Messages(caseID)})
}

// SendMessageHandler appends a message to the case log and notifies the
// other party.
func SendMessageHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, user.UserID, user.Role) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message content required"})
	}

	message, err := services.Messages.Send(caseID, user.UserID, user.Role, req.Content)
	if err != nil {
		return httpError(c, err)
	}

	if cs, ok := db.Cases.Get(caseID); ok {
		if user.Role == models.RoleClient && cs.LawyerID != nil {
			services.Notifications.Add(*cs.LawyerID, models.NotificationNewMessage,
				fmt.Sprintf("New message in case %s", caseID), caseID)
		} else if user.Role == models.RoleLawyer {
			services.Notifications.Add(cs.ClientID, models.NotificationNewMessage,
				fmt.Sprintf("New message from lawyer in case %s", caseID), caseID)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Message sent", "data": message})
}
