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

type uploadDocumentRequest struct {
	Filename string `json:"filename"`
	FilePath string `json:"file_path"`
}

// CaseDocumentsHandler lists the case's document metadata.
func CaseDocumentsHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, clientID, models.RoleClient) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	return c.JSON(http.StatusOK, echo.Map{"documents": services.Documents.ByCase(caseID)})
}

// UploadDocumentHandler registers document metadata on the case. File bytes
// are stored elsewhere; only the reference is kept.
func UploadDocumentHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, clientID, models.RoleClient) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	var req uploadDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Filename == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Filename required"})
	}
	if req.FilePath == "" {
		req.FilePath = "uploads/" + req.Filename
	}

	document := services.Documents.Upload(caseID, clientID, req.Filename, req.FilePath)

	if cs, ok := db.Cases.Get(caseID); ok && cs.LawyerID != nil {
		services.Notifications.Add(*cs.LawyerID, models.NotificationNewDocument,
			fmt.Sprintf("New document uploaded in case %s", caseID), caseID)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Document uploaded", "document": document})
}
