package services

import (
	"errors"
	"sync"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/utils"
)

// MutationListener is notified after a document changed. Notifications are
// delivered outside the session lock and carry only the document id; the
// listener pulls a snapshot if it needs content.
type MutationListener interface {
	DocumentChanged(docID string)
}

// EditorService is the single write path into a resume document. Every
// mutation re-checks section access against the tier presented on that call.
type EditorService interface {
	Open(accountID string, tier access.Tier) *models.ResumeDocument
	Get(accountID, docID string) (*models.ResumeDocument, error)
	Close(accountID, docID string) error

	UpdatePersonalField(accountID string, tier access.Tier, docID, field, value string) error
	UpdateEntryField(accountID string, tier access.Tier, docID string, col models.Collection, entryID, field, value string) error
	AddEntry(accountID string, tier access.Tier, docID string, col models.Collection) (string, error)
	RemoveEntry(accountID string, tier access.Tier, docID string, col models.Collection, entryID string) error

	ApplyImport(accountID string, tier access.Tier, docID string, imported *models.ResumeDocument) error

	Subscribe(l MutationListener)
}

type editorService struct {
	store *DocumentStore
	alloc identgen.Allocator

	mu        sync.RWMutex
	listeners []MutationListener
}

func NewEditorService(store *DocumentStore, alloc identgen.Allocator) EditorService {
	return &editorService{store: store, alloc: alloc}
}

func (s *editorService) Subscribe(l MutationListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

func (s *editorService) notify(docID string) {
	s.mu.RLock()
	ls := s.listeners
	s.mu.RUnlock()
	for _, l := range ls {
		l.DocumentChanged(docID)
	}
}

// denied maps an access refusal to the transport-facing error code: a
// sign-in wall is 401, a tier wall is the upgrade prompt.
func denied(op string, err error) error {
	var de *access.DeniedError
	if errors.As(err, &de) && de.Required == access.TierFree {
		return utils.E(utils.CodeUnauthorized, op, "sign in to edit this section", err)
	}
	return utils.E(utils.CodeUpgradeRequired, op, "this section requires the Pro plan", err)
}

func (s *editorService) Open(accountID string, tier access.Tier) *models.ResumeDocument {
	return s.store.Open(accountID, tier)
}

func (s *editorService) Get(accountID, docID string) (*models.ResumeDocument, error) {
	const op = "EditorService.Get"

	doc, _, owner, ok := s.store.Snapshot(docID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "document not found", utils.ErrNotFound)
	}
	if owner != accountID {
		return nil, utils.E(utils.CodeForbidden, op, "document belongs to another account", nil)
	}
	return doc, nil
}

func (s *editorService) Close(accountID, docID string) error {
	const op = "EditorService.Close"

	_, _, owner, ok := s.store.Snapshot(docID)
	if !ok {
		return utils.E(utils.CodeNotFound, op, "document not found", utils.ErrNotFound)
	}
	if owner != accountID {
		return utils.E(utils.CodeForbidden, op, "document belongs to another account", nil)
	}
	s.store.Close(docID)
	return nil
}

// mutate wraps store.update with the shared ownership and existence checks.
func (s *editorService) mutate(op, accountID string, tier access.Tier, docID string, fn func(doc *models.ResumeDocument) bool) (bool, error) {
	mutated, owned, found := s.store.update(docID, accountID, tier, fn)
	if !found {
		return false, utils.E(utils.CodeNotFound, op, "document not found", utils.ErrNotFound)
	}
	if !owned {
		return false, utils.E(utils.CodeForbidden, op, "document belongs to another account", nil)
	}
	if mutated {
		s.notify(docID)
	}
	return mutated, nil
}

func (s *editorService) UpdatePersonalField(accountID string, tier access.Tier, docID, field, value string) error {
	const op = "EditorService.UpdatePersonalField"

	if err := access.Check(tier, access.SectionPersonal); err != nil {
		return denied(op, err)
	}

	var known bool
	_, err := s.mutate(op, accountID, tier, docID, func(doc *models.ResumeDocument) bool {
		known = doc.SetPersonalField(field, value)
		return known
	})
	if err != nil {
		return err
	}
	if !known {
		return utils.E(utils.CodeInvalidArgument, op, "unknown personal info field", nil)
	}
	return nil
}

func (s *editorService) UpdateEntryField(accountID string, tier access.Tier, docID string, col models.Collection, entryID, field, value string) error {
	const op = "EditorService.UpdateEntryField"

	if !models.ValidCollection(col) {
		return utils.E(utils.CodeInvalidArgument, op, "unknown collection", nil)
	}
	if err := access.Check(tier, access.Section(col)); err != nil {
		return denied(op, err)
	}

	// A miss on the entry id is a silent no-op: the entry may have been
	// removed by an earlier operation the client has not observed yet.
	_, err := s.mutate(op, accountID, tier, docID, func(doc *models.ResumeDocument) bool {
		return doc.UpdateEntryField(col, entryID, field, value)
	})
	return err
}

func (s *editorService) AddEntry(accountID string, tier access.Tier, docID string, col models.Collection) (string, error) {
	const op = "EditorService.AddEntry"

	if !models.ValidCollection(col) {
		return "", utils.E(utils.CodeInvalidArgument, op, "unknown collection", nil)
	}
	if err := access.Check(tier, access.Section(col)); err != nil {
		return "", denied(op, err)
	}

	id := s.alloc.Allocate()
	_, err := s.mutate(op, accountID, tier, docID, func(doc *models.ResumeDocument) bool {
		return doc.AppendBlank(col, id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *editorService) RemoveEntry(accountID string, tier access.Tier, docID string, col models.Collection, entryID string) error {
	const op = "EditorService.RemoveEntry"

	if !models.ValidCollection(col) {
		return utils.E(utils.CodeInvalidArgument, op, "unknown collection", nil)
	}
	if err := access.Check(tier, access.Section(col)); err != nil {
		return denied(op, err)
	}

	_, err := s.mutate(op, accountID, tier, docID, func(doc *models.ResumeDocument) bool {
		return doc.RemoveEntry(col, entryID)
	})
	return err
}

// ApplyImport replaces the document content with a normalized import result.
// The document keeps its id; every collection and the personal info are
// overwritten wholesale.
func (s *editorService) ApplyImport(accountID string, tier access.Tier, docID string, imported *models.ResumeDocument) error {
	const op = "EditorService.ApplyImport"

	if imported == nil {
		return utils.E(utils.CodeInvalidArgument, op, "nothing to import", nil)
	}
	if err := access.Check(tier, access.SectionImport); err != nil {
		return denied(op, err)
	}

	_, err := s.mutate(op, accountID, tier, docID, func(doc *models.ResumeDocument) bool {
		src := imported.Clone()
		doc.PersonalInfo = src.PersonalInfo
		doc.Experience = src.Experience
		doc.Education = src.Education
		doc.Skills = src.Skills
		doc.Projects = src.Projects
		doc.Certifications = src.Certifications
		doc.Interests = src.Interests
		doc.Volunteering = src.Volunteering
		doc.Honors = src.Honors
		doc.Languages = src.Languages
		doc.Publications = src.Publications
		doc.Recommendations = src.Recommendations
		return true
	})
	return err
}
