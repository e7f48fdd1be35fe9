package services

import (
	"sync"
	"time"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/models"
)

// DocumentStore holds the in-memory editing sessions. The in-memory document
// is authoritative for the whole session; persistence only ever sees clones.
// Each session has its own lock, so there is exactly one logical writer per
// document while different documents mutate freely in parallel.
type DocumentStore struct {
	alloc identgen.Allocator

	mu       sync.RWMutex
	sessions map[string]*documentSession
}

type documentSession struct {
	mu        sync.Mutex
	doc       *models.ResumeDocument
	accountID string
	// tier as of the most recent operation; autosave re-reads it at fire
	// time because sign-in or upgrade can complete mid-session.
	tier access.Tier
}

func NewDocumentStore(alloc identgen.Allocator) *DocumentStore {
	return &DocumentStore{
		alloc:    alloc,
		sessions: make(map[string]*documentSession),
	}
}

// Open creates a fresh empty document owned by the account and returns a
// snapshot of it.
func (s *DocumentStore) Open(accountID string, tier access.Tier) *models.ResumeDocument {
	doc := models.NewResumeDocument(s.alloc.Allocate())

	s.mu.Lock()
	s.sessions[doc.ID] = &documentSession{doc: doc, accountID: accountID, tier: tier}
	s.mu.Unlock()

	return doc.Clone()
}

func (s *DocumentStore) session(docID string) (*documentSession, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[docID]
	s.mu.RUnlock()
	return sess, ok
}

// Close drops the session. Pending autosaves are cancelled by the caller.
func (s *DocumentStore) Close(docID string) {
	s.mu.Lock()
	delete(s.sessions, docID)
	s.mu.Unlock()
}

// Snapshot returns a clone of the current document plus the owning account
// and the tier as of the last operation. Used by the autosave bridge at
// debounce fire time so a stale in-flight timer can never persist older
// content than what is in memory.
func (s *DocumentStore) Snapshot(docID string) (*models.ResumeDocument, access.Tier, string, bool) {
	sess, ok := s.session(docID)
	if !ok {
		return nil, access.TierGuest, "", false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.doc.Clone(), sess.tier, sess.accountID, true
}

// update runs fn under the session lock. fn reports whether it mutated the
// document; on mutation LastModified is bumped and the latest tier recorded.
func (s *DocumentStore) update(docID string, accountID string, tier access.Tier, fn func(doc *models.ResumeDocument) bool) (mutated, owned, found bool) {
	sess, ok := s.session(docID)
	if !ok {
		return false, false, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.accountID != accountID {
		return false, false, true
	}
	sess.tier = tier
	if fn(sess.doc) {
		sess.doc.LastModified = time.Now().UTC()
		return true, true, true
	}
	return false, true, true
}
