package services

import (
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
)

// DocumentManager registers document metadata against cases and answers
// access questions. File bytes live outside this backend.
type DocumentManager struct {
	documents *db.DocumentStore
	cases     *db.CaseStore
	now       func() time.Time
}

// NewDocumentManager creates a document manager over the given stores.
func NewDocumentManager(documents *db.DocumentStore, cases *db.CaseStore) *DocumentManager {
	return &DocumentManager{documents: documents, cases: cases, now: time.Now}
}

// Upload records document metadata on the case.
func (m *DocumentManager) Upload(caseID, uploaderID, filename, filePath string) models.Document {
	doc := &models.Document{
		DocID:      models.NewDocumentID(),
		CaseID:     caseID,
		Filename:   filename,
		FilePath:   filePath,
		UploaderID: uploaderID,
		UploadedAt: m.now(),
	}
	m.documents.Add(doc)
	return *doc
}

// CheckAccess reports whether the user may read the document: only the
// case's owning client and its assigned lawyer qualify.
func (m *DocumentManager) CheckAccess(docID, userID, role string) bool {
	doc, ok := m.documents.Get(docID)
	if !ok {
		return false
	}

	c, ok := m.cases.Get(doc.CaseID)
	if !ok {
		return false
	}

	switch role {
	case models.RoleClient:
		return c.ClientID == userID
	case models.RoleLawyer:
		return c.LawyerID != nil && *c.LawyerID == userID
	}
	return false
}

// ByCase returns the case's document metadata.
func (m *DocumentManager) ByCase(caseID string) []models.Document {
	return m.documents.ByCase(caseID)
}
