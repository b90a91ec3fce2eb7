package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
)

func TestUploadAndListDocuments(t *testing.T) {
	cases := db.NewCaseStore()
	docs := db.NewDocumentStore()
	m := NewDocumentManager(docs, cases)

	first := m.Upload("CASE-001", "CLIENT-001", "contract.pdf", "/uploads/contract.pdf")
	second := m.Upload("CASE-001", "LAWYER-001", "motion.pdf", "/uploads/motion.pdf")
	m.Upload("CASE-002", "CLIENT-002", "evidence.png", "/uploads/evidence.png")

	assert.NotEmpty(t, first.DocID)
	assert.Equal(t, "contract.pdf", first.Filename)

	byCase := m.ByCase("CASE-001")
	require.Len(t, byCase, 2)
	ids := []string{byCase[0].DocID, byCase[1].DocID}
	assert.Contains(t, ids, first.DocID)
	assert.Contains(t, ids, second.DocID)

	assert.Empty(t, m.ByCase("CASE-404"))
}

func TestDocumentCheckAccess(t *testing.T) {
	cases := db.NewCaseStore()
	docs := db.NewDocumentStore()
	m := NewDocumentManager(docs, cases)

	lawyer := "LAWYER-001"
	cases.Add(&models.Case{
		CaseID:   "CASE-001",
		ClientID: "CLIENT-001",
		LawyerID: &lawyer,
		Status:   models.CaseStatusActive,
	})
	doc := m.Upload("CASE-001", "CLIENT-001", "contract.pdf", "/uploads/contract.pdf")

	assert.True(t, m.CheckAccess(doc.DocID, "CLIENT-001", models.RoleClient))
	assert.True(t, m.CheckAccess(doc.DocID, "LAWYER-001", models.RoleLawyer))
	assert.False(t, m.CheckAccess(doc.DocID, "CLIENT-002", models.RoleClient))
	assert.False(t, m.CheckAccess(doc.DocID, "LAWYER-002", models.RoleLawyer))
	assert.False(t, m.CheckAccess("DOC-404", "CLIENT-001", models.RoleClient))

	// Document on a case that no longer exists is unreadable
	orphan := m.Upload("CASE-404", "CLIENT-001", "x.pdf", "/uploads/x.pdf")
	assert.False(t, m.CheckAccess(orphan.DocID, "CLIENT-001", models.RoleClient))
}
