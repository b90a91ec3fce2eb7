package db

import (
	"sync"

	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// CaseStore is the hash-table-backed case repository. Reads return clones so
// callers never observe in-place mutation; all writes go through Add or
// Mutate under the write lock.
type CaseStore struct {
	mu    sync.RWMutex
	cases *structures.HashTable[*models.Case]
}

func NewCaseStore() *CaseStore {
	return &CaseStore{cases: structures.NewHashTable[*models.Case]()}
}

// Add registers a new case (or replaces one with the same ID).
func (s *CaseStore) Add(c *models.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases.Put(c.CaseID, c)
}

// Get returns a copy of the case and whether it exists.
func (s *CaseStore) Get(caseID string) (models.Case, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases.Get(caseID)
	if !ok {
		return models.Case{}, false
	}
	return c.Clone(), true
}

// Exists reports whether the case ID is known.
func (s *CaseStore) Exists(caseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cases.Contains(caseID)
}

// Mutate applies fn to the stored case under the write lock. Returns false
// when the case does not exist.
func (s *CaseStore) Mutate(caseID string, fn func(*models.Case)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases.Get(caseID)
	if !ok {
		return false
	}
	fn(c)
	return true
}

// ByClient returns copies of all cases created by the client. Secondary
// lookup is a full scan over the table values.
func (s *CaseStore) ByClient(clientID string) []models.Case {
	return s.scan(func(c *models.Case) bool {
		return c.ClientID == clientID
	})
}

// ByLawyer returns copies of all cases assigned to the lawyer.
func (s *CaseStore) ByLawyer(lawyerID string) []models.Case {
	return s.scan(func(c *models.Case) bool {
		return c.LawyerID != nil && *c.LawyerID == lawyerID
	})
}

// All returns copies of every stored case, order unspecified.
func (s *CaseStore) All() []models.Case {
	return s.scan(func(*models.Case) bool { return true })
}

// ActiveCountForLawyer counts the lawyer's non-closed cases.
func (s *CaseStore) ActiveCountForLawyer(lawyerID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, c := range s.cases.Values() {
		if c.LawyerID != nil && *c.LawyerID == lawyerID && c.Status != models.CaseStatusClosed {
			count++
		}
	}
	return count
}

func (s *CaseStore) scan(match func(*models.Case) bool) []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Case
	for _, c := range s.cases.Values() {
		if match(c) {
			result = append(result, c.Clone())
		}
	}
	return result
}

// UserStore indexes users twice, by email and by ID, and additionally keeps
// registration order so lawyer lookups iterate deterministically.
type UserStore struct {
	mu      sync.RWMutex
	byEmail *structures.HashTable[*models.User]
	byID    *structures.HashTable[*models.User]
	order   []string // user IDs in registration order
}

func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: structures.NewHashTable[*models.User](),
		byID:    structures.NewHashTable[*models.User](),
	}
}

// Add registers a user under both indexes.
func (s *UserStore) Add(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byEmail.Put(u.Email, u)
	s.byID.Put(u.UserID, u)
	s.order = append(s.order, u.UserID)
}

// ByEmail returns a copy of the user registered under email.
func (s *UserStore) ByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail.Get(email)
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// ByID returns a copy of the user with the given ID.
func (s *UserStore) ByID(userID string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID.Get(userID)
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// EmailExists reports whether an account uses the email.
func (s *UserStore) EmailExists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byEmail.Contains(email)
}

// All returns copies of every user in registration order.
func (s *UserStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		if u, ok := s.byID.Get(id); ok {
			result = append(result, *u)
		}
	}
	return result
}

// Lawyers returns all lawyer accounts in registration order.
func (s *UserStore) Lawyers() []models.User {
	var lawyers []models.User
	for _, u := range s.All() {
		if u.Role == models.RoleLawyer {
			lawyers = append(lawyers, u)
		}
	}
	return lawyers
}

// DocumentStore holds document metadata keyed by document ID with a
// by-case secondary scan.
type DocumentStore struct {
	mu        sync.RWMutex
	documents *structures.HashTable[*models.Document]
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: structures.NewHashTable[*models.Document]()}
}

// Add registers document metadata.
func (s *DocumentStore) Add(d *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents.Put(d.DocID, d)
}

// Get returns a copy of the document metadata.
func (s *DocumentStore) Get(docID string) (models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documents.Get(docID)
	if !ok {
		return models.Document{}, false
	}
	return *d, true
}

// ByCase returns all documents attached to the case.
func (s *DocumentStore) ByCase(caseID string) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Document
	for _, d := range s.documents.Values() {
		if d.CaseID == caseID {
			result = append(result, *d)
		}
	}
	return result
}

// SessionStore holds login sessions keyed by token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions *structures.HashTable[*models.Session]
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: structures.NewHashTable[*models.Session]()}
}

// Put stores the session under its token.
func (s *SessionStore) Put(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Put(session.Token, session)
}

// Get returns a copy of the session for the token.
func (s *SessionStore) Get(token string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions.Get(token)
	if !ok {
		return models.Session{}, false
	}
	return *session, true
}

// Delete removes the session; returns whether it existed.
func (s *SessionStore) Delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Remove(token)
}
