package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"legal_case_api_go/db"
	"legal_case_api_go/middleware"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

// AvailableCasesHandler lists the claimable general pool, urgent cases
// first, with the lawyer's current load.
func AvailableCasesHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID

	return c.JSON(http.StatusOK, echo.Map{
		"available_cases": services.Pool.AvailableCases(),
		"your_case_count": services.Pool.LawyerCaseCount(lawyerID),
		"max_cases":       services.MaxCasesPerLawyer,
	})
}

// PendingRequestsHandler lists the direct assignment requests waiting on the
// lawyer.
func PendingRequestsHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	return c.JSON(http.StatusOK, echo.Map{"requests": services.Pool.PendingRequests(lawyerID)})
}

// ClaimCaseHandler claims a case from the pool, assigns the lawyer, and
// moves the case into review.
func ClaimCaseHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if err := services.Pool.ClaimCase(caseID, lawyerID); err != nil {
		return httpError(c, err)
	}

	services.Cases.AssignLawyer(caseID, &lawyerID)
	if cs, ok := db.Cases.Get(caseID); ok && cs.Status == models.CaseStatusCreated {
		if err := services.Cases.UpdateCaseStatus(caseID, models.CaseStatusInReview, lawyerID, "Case claimed"); err != nil {
			return httpError(c, err)
		}
	}

	if cs, ok := db.Cases.Get(caseID); ok {
		services.Notifications.Add(cs.ClientID, models.NotificationCaseClaimed,
			"Your case has been claimed by a lawyer", caseID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Case claimed"})
}

// UnclaimCaseHandler returns a claimed case to the pool and resets it to
// created.
func UnclaimCaseHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if !services.Cases.CheckAccess(caseID, lawyerID, models.RoleLawyer) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	cs, ok := db.Cases.Get(caseID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Case not found"})
	}

	if err := services.Pool.UnclaimCase(caseID, cs); err != nil {
		return httpError(c, err)
	}

	services.Cases.AssignLawyer(caseID, nil)
	if cs.Status == models.CaseStatusInReview {
		if err := services.Cases.UpdateCaseStatus(caseID, models.CaseStatusCreated, lawyerID, "Case returned to pool"); err != nil {
			return httpError(c, err)
		}
	}

	services.Notifications.Add(cs.ClientID, models.NotificationCaseUnclaimed,
		"Your case is back in the available pool", caseID)

	return c.JSON(http.StatusOK, echo.Map{"message": "Case returned to pool"})
}

// AcceptDirectRequestHandler accepts a direct assignment request and
// assigns the lawyer.
func AcceptDirectRequestHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	if err := services.Pool.AcceptDirectRequest(caseID, lawyerID); err != nil {
		return httpError(c, err)
	}

	services.Cases.AssignLawyer(caseID, &lawyerID)

	if cs, ok := db.Cases.Get(caseID); ok {
		services.Notifications.Add(cs.ClientID, models.NotificationRequestAccepted,
			"Your direct assignment request has been accepted", caseID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Request accepted"})
}

// RejectDirectRequestHandler declines a direct request, moving the case to
// the general pool.
func RejectDirectRequestHandler(c echo.Context) error {
	lawyerID := middleware.GetCurrentUser(c).UserID
	caseID := c.Param("case_id")

	cs, ok := db.Cases.Get(caseID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Case not found"})
	}

	if err := services.Pool.RejectDirectRequest(caseID, lawyerID, cs); err != nil {
		return httpError(c, err)
	}

	services.Notifications.Add(cs.ClientID, models.NotificationRequestRejected,
		"Your direct assignment was rejected. Case is now in the general pool.", caseID)

	return c.JSON(http.StatusOK, echo.Map{"message": "Request rejected, case moved to general pool"})
}
