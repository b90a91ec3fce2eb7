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

type createCaseRequest struct {
	CaseType       string `json:"case_type"`
	Description    string `json:"description"`
	HearingDate    string `json:"hearing_date"`
	AssignmentType string `json:"assignment_type"` // general, direct, or auto
	LawyerID       string `json:"lawyer_id"`
	Speciality     string `json:"speciality"`
}

// ClientCasesHandler lists the client's cases.
func ClientCasesHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID
	return c.JSON(http.StatusOK, echo.Map{"cases": db.Cases.ByClient(clientID)})
}

// CreateCaseHandler files a new case. Three routing flows:
//   - general: the case enters the shared pool for any lawyer to claim
//   - direct: the case queues on one named lawyer's pending requests
//   - auto: the selected lawyer is assigned immediately, falling back to any
//     lawyer with the speciality; 503 when every candidate is at capacity
func CreateCaseHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID

	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.CaseType == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Case type and description required"})
	}

	hearingDate, err := services.ParseDateTime(req.HearingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid hearing date required"})
	}

	switch req.AssignmentType {
	case models.AssignmentAuto:
		if req.LawyerID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Lawyer required for auto assignment"})
		}
		speciality := req.Speciality
		if speciality == "" {
			speciality = req.CaseType
		}
		result := services.Cases.CreateCaseWithAssignment(clientID, req.CaseType, req.Description, hearingDate, req.LawyerID, speciality)
		return respondAssignment(c, result)

	case models.AssignmentDirect:
		if req.LawyerID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Lawyer required for direct assignment"})
		}
		created := services.Cases.CreateCase(clientID, req.CaseType, req.Description, hearingDate)
		db.Cases.Mutate(created.CaseID, func(cs *models.Case) {
			cs.AssignmentType = models.AssignmentDirect
			cs.RequestedLawyerID = &req.LawyerID
		})
		pooled, _ := db.Cases.Get(created.CaseID)
		if err := services.Pool.AddToPool(pooled); err != nil {
			return httpError(c, err)
		}
		services.Notifications.Add(req.LawyerID, models.NotificationDirectRequest,
			fmt.Sprintf("New direct assignment request: %s", pooled.CaseID), pooled.CaseID)
		return c.JSON(http.StatusCreated, echo.Map{"message": "Case created", "case": pooled})

	default:
		created := services.Cases.CreateCase(clientID, req.CaseType, req.Description, hearingDate)
		if err := services.Pool.AddToPool(created); err != nil {
			return httpError(c, err)
		}
		notifyLawyersOfNewCase(created)
		return c.JSON(http.StatusCreated, echo.Map{"message": "Case created", "case": created})
	}
}

func respondAssignment(c echo.Context, result services.AssignmentResult) error {
	switch result.Outcome {
	case services.AssignOutcomeSuccess:
		return c.JSON(http.StatusCreated, echo.Map{
			"message": "Case created and assigned",
			"case":    result.Case,
		})
	case services.AssignOutcomeAutoAssigned:
		return c.JSON(http.StatusCreated, echo.Map{
			"message":     "Case created; your selected lawyer is at capacity",
			"case":        result.Case,
			"assigned_to": result.AssignedTo.Public(),
		})
	default:
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"message": "All lawyers are currently at capacity. Please contact the firm directly.",
			"case":    result.Case,
		})
	}
}

func notifyLawyersOfNewCase(created models.Case) {
	label := "case"
	if created.IsUrgent() {
		label = "urgent case"
	}
	for _, lawyer := range db.Users.Lawyers() {
		services.Notifications.Add(lawyer.UserID, models.NotificationNewAvailableCase,
			fmt.Sprintf("New %s available: %s", label, created.CaseID), created.CaseID)
	}
}

// ClientCaseDetailHandler returns one case with its messages, documents, and
// follow-ups.
func ClientCaseDetailHandler(c echo.Context) error {
	clientID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, clientID, models.RoleClient) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}
	return caseDetail(c, caseID)
}

func caseDetail(c echo.Context, caseID string) error {
	cs, ok := db.Cases.Get(caseID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Case not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"case":      cs,
		"messages":  services.Messages.Messages(caseID),
		"documents": services.Documents.ByCase(caseID),
		"followups": services.FollowUps.FollowUps(caseID),
	})
}
