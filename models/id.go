package models

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// shortID returns a prefixed 8-hex-char identifier, e.g. "CASE-3FA8B12C".
func shortID(prefix string) string {
	id := uuid.New()
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

func NewCaseID() string        { return shortID("CASE") }
func NewEventID() string       { return shortID("EVT") }
func NewAppointmentID() string { return shortID("APT") }
func NewDocumentID() string    { return shortID("DOC") }
func NewClientID() string      { return shortID("CLIENT") }
func NewLawyerID() string      { return shortID("LAWYER") }

// NewMessageID returns a bare 8-hex-char identifier for messages and
// follow-ups, which carry no type prefix.
func NewMessageID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:4])
}
