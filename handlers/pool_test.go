package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

func TestClaimAndUnclaimCase(t *testing.T) {
	e := setupServer(t)
	clientCookie := registerUser(t, "CLIENT-001", models.RoleClient)
	lawyerCookie := registerUser(t, "LAWYER-001", models.RoleLawyer, "contract")

	caseID := createPoolCase(t, e, clientCookie, time.Now().AddDate(0, 0, 20))

	rec := doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseID+"/claim", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// Claiming assigns the lawyer and moves the case into review
	cs, ok := db.Cases.Get(caseID)
	require.True(t, ok)
	require.NotNil(t, cs.LawyerID)
	assert.Equal(t, "LAWYER-001", *cs.LawyerID)
	assert.Equal(t, models.CaseStatusInReview, cs.Status)

	// The client hears about it
	notifs := services.Notifications.Notifications("CLIENT-001")
	require.NotEmpty(t, notifs)
	assert.Equal(t, models.NotificationCaseClaimed, notifs[len(notifs)-1].Type)

	// Pool view reflects the claim
	rec = doJSON(e, http.MethodGet, "/api/lawyer/available-cases", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["available_cases"])
	assert.Equal(t, float64(1), body["your_case_count"])
	assert.Equal(t, float64(services.MaxCasesPerLawyer), body["max_cases"])

	// Unclaim puts it back and resets the status
	rec = doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseID+"/unclaim", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cs, _ = db.Cases.Get(caseID)
	assert.Nil(t, cs.LawyerID)
	assert.Equal(t, models.CaseStatusCreated, cs.Status)
	assert.Len(t, services.Pool.AvailableCases(), 1)
}

func TestClaimAtCapacity(t *testing.T) {
	e := setupServer(t)
	clientCookie := registerUser(t, "CLIENT-001", models.RoleClient)
	lawyerCookie := registerUser(t, "LAWYER-001", models.RoleLawyer, "contract")

	var caseIDs []string
	for i := 0; i < services.MaxCasesPerLawyer+1; i++ {
		caseIDs = append(caseIDs, createPoolCase(t, e, clientCookie, time.Now().AddDate(0, 0, 20+i)))
	}

	for i := 0; i < services.MaxCasesPerLawyer; i++ {
		rec := doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseIDs[i]+"/claim", nil, lawyerCookie)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseIDs[services.MaxCasesPerLawyer]+"/claim", nil, lawyerCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The refused case is untouched
	assert.Len(t, services.Pool.AvailableCases(), 1)
}

func TestClaimUnknownCase(t *testing.T) {
	e := setupServer(t)
	lawyerCookie := registerUser(t, "LAWYER-001", models.RoleLawyer, "contract")

	rec := doJSON(e, http.MethodPost, "/api/lawyer/cases/CASE-404/claim", nil, lawyerCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDirectRequestAcceptFlow(t *testing.T) {
	e := setupServer(t)
	clientCookie := registerUser(t, "CLIENT-001", models.RoleClient)
	lawyerCookie := registerUser(t, "LAWYER-001", models.RoleLawyer, "family")

	rec := doJSON(e, http.MethodPost, "/api/client/cases", map[string]any{
		"case_type":       "family",
		"description":     "custody arrangement",
		"hearing_date":    time.Now().AddDate(0, 0, 20).Format("2006-01-02"),
		"assignment_type": models.AssignmentDirect,
		"lawyer_id":       "LAWYER-001",
	}, clientCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	caseID := decodeBody(t, rec)["case"].(map[string]any)["case_id"].(string)

	rec = doJSON(e, http.MethodGet, "/api/lawyer/pending-requests", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["requests"].([]any), 1)

	rec = doJSON(e, http.MethodPost, "/api/lawyer/requests/"+caseID+"/accept", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cs, _ := db.Cases.Get(caseID)
	require.NotNil(t, cs.LawyerID)
	assert.Equal(t, "LAWYER-001", *cs.LawyerID)

	notifs := services.Notifications.Notifications("CLIENT-001")
	require.NotEmpty(t, notifs)
	assert.Equal(t, models.NotificationRequestAccepted, notifs[len(notifs)-1].Type)
}

func TestDirectRequestRejectFlow(t *testing.T) {
	e := setupServer(t)
	clientCookie := registerUser(t, "CLIENT-001", models.RoleClient)
	lawyerCookie := registerUser(t, "LAWYER-001", models.RoleLawyer, "family")
	otherLawyerCookie := registerUser(t, "LAWYER-002", models.RoleLawyer, "family")

	rec := doJSON(e, http.MethodPost, "/api/client/cases", map[string]any{
		"case_type":       "family",
		"description":     "custody arrangement",
		"hearing_date":    time.Now().AddDate(0, 0, 20).Format("2006-01-02"),
		"assignment_type": models.AssignmentDirect,
		"lawyer_id":       "LAWYER-001",
	}, clientCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	caseID := decodeBody(t, rec)["case"].(map[string]any)["case_id"].(string)

	rec = doJSON(e, http.MethodPost, "/api/lawyer/requests/"+caseID+"/reject", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The case fell into the general pool and another lawyer can claim it
	assert.Len(t, services.Pool.AvailableCases(), 1)
	rec = doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseID+"/claim", nil, otherLawyerCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnclaimRequiresAssignment(t *testing.T) {
	e := setupServer(t)
	clientCookie := registerUser(t, "CLIENT-001", models.RoleClient)
	lawyerCookie := registerUser(t, "LAWYER-001", models.RoleLawyer, "contract")
	intruderCookie := registerUser(t, "LAWYER-002", models.RoleLawyer, "contract")

	caseID := createPoolCase(t, e, clientCookie, time.Now().AddDate(0, 0, 20))
	rec := doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseID+"/claim", nil, lawyerCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// Only the assigned lawyer can unclaim
	rec = doJSON(e, http.MethodPost, "/api/lawyer/cases/"+caseID+"/unclaim", nil, intruderCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
