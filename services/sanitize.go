package services

import "github.com/microcosm-cc/bluemonday"

// userInputPolicy strips all markup from user-provided free text (case
// descriptions, message bodies, notes) before it is stored.
var userInputPolicy = bluemonday.StrictPolicy()

// SanitizeUserInput removes any HTML from user-controlled text.
func SanitizeUserInput(text string) string {
	return userInputPolicy.Sanitize(text)
}
