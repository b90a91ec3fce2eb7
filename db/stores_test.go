package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/models"
)

func testCase(id, clientID string, lawyerID *string, status string) *models.Case {
	return &models.Case{
		CaseID:       id,
		ClientID:     clientID,
		LawyerID:     lawyerID,
		CaseType:     "contract",
		Status:       status,
		UrgencyLevel: models.UrgencyNormal,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestCaseStoreByClientAndLawyer(t *testing.T) {
	store := NewCaseStore()
	lawyer := "LAWYER-001"

	store.Add(testCase("CASE-1", "CLIENT-001", nil, models.CaseStatusCreated))
	store.Add(testCase("CASE-2", "CLIENT-001", &lawyer, models.CaseStatusActive))
	store.Add(testCase("CASE-3", "CLIENT-002", &lawyer, models.CaseStatusClosed))

	assert.Len(t, store.ByClient("CLIENT-001"), 2)
	assert.Len(t, store.ByClient("CLIENT-002"), 1)
	assert.Empty(t, store.ByClient("CLIENT-003"))

	assert.Len(t, store.ByLawyer(lawyer), 2)
	assert.Empty(t, store.ByLawyer("LAWYER-002"))

	// Closed cases are excluded from the active count
	assert.Equal(t, 1, store.ActiveCountForLawyer(lawyer))
}

func TestCaseStoreGetReturnsClone(t *testing.T) {
	store := NewCaseStore()
	store.Add(testCase("CASE-1", "CLIENT-001", nil, models.CaseStatusCreated))

	c, ok := store.Get("CASE-1")
	require.True(t, ok)

	// Mutating the returned copy must not touch the stored case
	c.Status = models.CaseStatusClosed
	c.Updates = append(c.Updates, models.CaseUpdate{NewStatus: "bogus"})

	stored, ok := store.Get("CASE-1")
	require.True(t, ok)
	assert.Equal(t, models.CaseStatusCreated, stored.Status)
	assert.Empty(t, stored.Updates)
}

func TestCaseStoreMutate(t *testing.T) {
	store := NewCaseStore()
	store.Add(testCase("CASE-1", "CLIENT-001", nil, models.CaseStatusCreated))

	ok := store.Mutate("CASE-1", func(c *models.Case) {
		c.Status = models.CaseStatusInReview
	})
	assert.True(t, ok)

	c, _ := store.Get("CASE-1")
	assert.Equal(t, models.CaseStatusInReview, c.Status)

	assert.False(t, store.Mutate("CASE-404", func(*models.Case) {}))
}

func TestUserStoreDualIndex(t *testing.T) {
	store := NewUserStore()
	store.Add(&models.User{UserID: "CLIENT-001", Email: "john@example.com", Role: models.RoleClient})

	byEmail, ok := store.ByEmail("john@example.com")
	assert.True(t, ok)
	assert.Equal(t, "CLIENT-001", byEmail.UserID)

	byID, ok := store.ByID("CLIENT-001")
	assert.True(t, ok)
	assert.Equal(t, "john@example.com", byID.Email)

	assert.True(t, store.EmailExists("john@example.com"))
	assert.False(t, store.EmailExists("nobody@example.com"))
}

func TestUserStoreLawyersRegistrationOrder(t *testing.T) {
	store := NewUserStore()
	store.Add(&models.User{UserID: "LAWYER-002", Email: "b@firm.com", Role: models.RoleLawyer})
	store.Add(&models.User{UserID: "CLIENT-001", Email: "c@example.com", Role: models.RoleClient})
	store.Add(&models.User{UserID: "LAWYER-001", Email: "a@firm.com", Role: models.RoleLawyer})

	lawyers := store.Lawyers()
	require.Len(t, lawyers, 2)
	assert.Equal(t, "LAWYER-002", lawyers[0].UserID)
	assert.Equal(t, "LAWYER-001", lawyers[1].UserID)
}

func TestDocumentStoreByCase(t *testing.T) {
	store := NewDocumentStore()
	store.Add(&models.Document{DocID: "DOC-1", CaseID: "CASE-1", Filename: "contract.pdf"})
	store.Add(&models.Document{DocID: "DOC-2", CaseID: "CASE-1", Filename: "evidence.pdf"})
	store.Add(&models.Document{DocID: "DOC-3", CaseID: "CASE-2", Filename: "other.pdf"})

	assert.Len(t, store.ByCase("CASE-1"), 2)
	assert.Len(t, store.ByCase("CASE-2"), 1)
	assert.Empty(t, store.ByCase("CASE-3"))

	doc, ok := store.Get("DOC-1")
	assert.True(t, ok)
	assert.Equal(t, "contract.pdf", doc.Filename)

	_, ok = store.Get("DOC-404")
	assert.False(t, ok)
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	session := &models.Session{
		UserID:    "CLIENT-001",
		Token:     "token-abc",
		Role:      models.RoleClient,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	store.Put(session)

	got, ok := store.Get("token-abc")
	assert.True(t, ok)
	assert.Equal(t, "CLIENT-001", got.UserID)

	assert.True(t, store.Delete("token-abc"))
	assert.False(t, store.Delete("token-abc"))
	_, ok = store.Get("token-abc")
	assert.False(t, ok)
}
