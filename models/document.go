package models

import "time"

// Document is file metadata attached to a case. File bytes live outside this
// backend; only the reference is stored.
type Document struct {
	DocID      string    `json:"doc_id"`
	CaseID     string    `json:"case_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	UploaderID string    `json:"uploader_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}
