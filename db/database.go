// Package db holds the application's persistence substrate: typed stores
// built on the hash table from the structures package. State lives only in
// process memory and is rebuilt on every start.
package db

import "log"

var (
	Cases     *CaseStore
	Users     *UserStore
	Documents *DocumentStore
	Sessions  *SessionStore
)

// Initialize sets up the package-level stores. Call once at startup; tests
// call it again to get a clean slate.
func Initialize() {
	Cases = NewCaseStore()
	Users = NewUserStore()
	Documents = NewDocumentStore()
	Sessions = NewSessionStore()

	log.Println("In-memory stores initialized")
}
