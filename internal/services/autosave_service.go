package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/models"
)

// SnapshotSource supplies the current document state at debounce fire time.
// *DocumentStore satisfies it.
type SnapshotSource interface {
	Snapshot(docID string) (doc *models.ResumeDocument, tier access.Tier, accountID string, ok bool)
}

// ResumeSaver persists one resume snapshot for an account.
type ResumeSaver interface {
	Save(ctx context.Context, accountID string, doc *models.ResumeDocument) error
}

const (
	defaultAutosaveDelay = 3 * time.Second
	autosaveSaveTimeout  = 10 * time.Second
)

// AutosaveService debounces persistence behind the editor. Each mutation
// restarts a per-document timer; when it fires the service snapshots the
// document and tier fresh, so the write always carries the latest state and a
// mid-session downgrade suppresses the save. Saves for the same document are
// serialized so a slow write can never land after a newer one.
type AutosaveService struct {
	source SnapshotSource
	saver  ResumeSaver
	delay  time.Duration
	log    *logrus.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
	flight map[string]*sync.Mutex
}

func NewAutosaveService(source SnapshotSource, saver ResumeSaver, delay time.Duration, log *logrus.Logger) *AutosaveService {
	if delay <= 0 {
		delay = defaultAutosaveDelay
	}
	return &AutosaveService{
		source: source,
		saver:  saver,
		delay:  delay,
		log:    log,
		timers: make(map[string]*time.Timer),
		flight: make(map[string]*sync.Mutex),
	}
}

// DocumentChanged implements MutationListener: it (re)arms the debounce
// timer for the document.
func (s *AutosaveService) DocumentChanged(docID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[docID]; ok {
		t.Stop()
	}
	s.timers[docID] = time.AfterFunc(s.delay, func() { s.fire(docID) })
}

// Cancel drops any pending save, used when a document session closes.
func (s *AutosaveService) Cancel(docID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[docID]; ok {
		t.Stop()
		delete(s.timers, docID)
	}
}

func (s *AutosaveService) fire(docID string) {
	s.mu.Lock()
	delete(s.timers, docID)
	fl, ok := s.flight[docID]
	if !ok {
		fl = &sync.Mutex{}
		s.flight[docID] = fl
	}
	s.mu.Unlock()

	fl.Lock()
	defer fl.Unlock()

	// Snapshot after acquiring the flight lock, not before: if a previous
	// save is still running, the state read here is at least as new as its.
	doc, tier, accountID, ok := s.source.Snapshot(docID)
	if !ok {
		return
	}
	if tier != access.TierPro || doc.PersonalInfo.FullName == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), autosaveSaveTimeout)
	defer cancel()

	if err := s.saver.Save(ctx, accountID, doc); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"doc_id":     docID,
			"account_id": accountID,
		}).Error("autosave failed")
	}
}
