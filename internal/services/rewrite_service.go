package services

import (
	"context"
	"strings"
	"sync"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/providers/llm"
	"github.com/shahhub/resumehub/internal/utils"
)

// FieldRef addresses one writable text field. An empty Collection addresses
// a personal info field and EntryID is ignored.
type FieldRef struct {
	Collection models.Collection `json:"collection"`
	EntryID    string            `json:"entry_id"`
	Field      string            `json:"field"`
}

func (r FieldRef) kind() string {
	if r.Collection == "" {
		return "personal " + r.Field
	}
	return string(r.Collection) + " " + r.Field
}

// RewriteService generates alternative phrasings for a field and holds them
// until one is applied or a different field is requested. At most one pending
// variant set exists per document; requesting a new field discards the old
// set, so stale suggestions can never be applied to the wrong field.
type RewriteService interface {
	Request(ctx context.Context, accountID string, tier access.Tier, docID string, ref FieldRef, text string) ([]string, error)
	Apply(ctx context.Context, accountID string, tier access.Tier, docID string, ref FieldRef, choice string) error
	Pending(docID string) (FieldRef, []string, bool)
	Clear(docID string)
}

type rewriteService struct {
	provider llm.Provider
	editor   EditorService

	mu      sync.Mutex
	pending map[string]pendingVariants
}

type pendingVariants struct {
	ref      FieldRef
	variants []string
}

func NewRewriteService(provider llm.Provider, editor EditorService) RewriteService {
	return &rewriteService{
		provider: provider,
		editor:   editor,
		pending:  make(map[string]pendingVariants),
	}
}

func requirePro(op string, tier access.Tier) error {
	if tier != access.TierPro {
		return utils.E(utils.CodeUpgradeRequired, op, "rewrite suggestions require the Pro plan", nil)
	}
	return nil
}

func (s *rewriteService) Request(ctx context.Context, accountID string, tier access.Tier, docID string, ref FieldRef, text string) ([]string, error) {
	const op = "RewriteService.Request"

	if err := requirePro(op, tier); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		// never spend a model call on empty input
		return nil, utils.E(utils.CodeInvalidArgument, op, "nothing to rewrite", nil)
	}
	if ref.Collection != "" && !models.ValidCollection(ref.Collection) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown collection", nil)
	}

	variants, err := s.provider.RewriteVariants(ctx, ref.kind(), text)
	if err != nil {
		s.Clear(docID)
		return nil, utils.E(utils.CodeUnavailable, op, "rewrite provider failed", err)
	}

	s.mu.Lock()
	s.pending[docID] = pendingVariants{ref: ref, variants: variants}
	s.mu.Unlock()

	return variants, nil
}

func (s *rewriteService) Apply(ctx context.Context, accountID string, tier access.Tier, docID string, ref FieldRef, choice string) error {
	const op = "RewriteService.Apply"

	if err := requirePro(op, tier); err != nil {
		return err
	}
	if strings.TrimSpace(choice) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "empty choice", nil)
	}

	var err error
	if ref.Collection == "" {
		err = s.editor.UpdatePersonalField(accountID, tier, docID, ref.Field, choice)
	} else {
		err = s.editor.UpdateEntryField(accountID, tier, docID, ref.Collection, ref.EntryID, ref.Field, choice)
	}
	if err != nil {
		return err
	}

	s.Clear(docID)
	return nil
}

func (s *rewriteService) Pending(docID string) (FieldRef, []string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[docID]
	return p.ref, p.variants, ok
}

func (s *rewriteService) Clear(docID string) {
	s.mu.Lock()
	delete(s.pending, docID)
	s.mu.Unlock()
}
