package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/utils"
)

type fakeProvider struct {
	variants []string
	keywords []string
	err      error
	calls    int
}

func (f *fakeProvider) StructureResume(context.Context, string) ([]byte, error) {
	return nil, errors.New("not used")
}

func (f *fakeProvider) RewriteVariants(_ context.Context, _, _ string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.variants, nil
}

func (f *fakeProvider) SuggestKeywords(context.Context, string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.keywords, nil
}

func (f *fakeProvider) Close() error { return nil }

func newRewriteHarness(variants ...string) (RewriteService, EditorService, *fakeProvider) {
	alloc := identgen.NewSequential()
	store := NewDocumentStore(alloc)
	editor := NewEditorService(store, alloc)
	provider := &fakeProvider{variants: variants}
	return NewRewriteService(provider, editor), editor, provider
}

func TestRewriteRequestStoresPendingSet(t *testing.T) {
	svc, editor, _ := newRewriteHarness("better", "best", "bestest")
	doc := editor.Open("acct-1", access.TierPro)

	ref := FieldRef{Collection: models.CollectionExperience, EntryID: "e-1", Field: "description"}
	variants, err := svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, ref, "did things")
	require.NoError(t, err)
	assert.Len(t, variants, 3)

	gotRef, gotVariants, ok := svc.Pending(doc.ID)
	require.True(t, ok)
	assert.Equal(t, ref, gotRef)
	assert.Equal(t, variants, gotVariants)
}

func TestRewriteRequiresPro(t *testing.T) {
	svc, editor, provider := newRewriteHarness("a")
	doc := editor.Open("acct-1", access.TierFree)

	ref := FieldRef{Field: "summary"}
	_, err := svc.Request(context.Background(), "acct-1", access.TierFree, doc.ID, ref, "text")
	assert.True(t, utils.IsCode(err, utils.CodeUpgradeRequired))
	assert.Equal(t, 0, provider.calls)
}

func TestRewriteEmptyTextNeverReachesProvider(t *testing.T) {
	svc, editor, provider := newRewriteHarness("a")
	doc := editor.Open("acct-1", access.TierPro)

	_, err := svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, FieldRef{Field: "summary"}, "   \n ")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Equal(t, 0, provider.calls)
}

func TestRewriteNewFieldDiscardsPreviousSet(t *testing.T) {
	svc, editor, _ := newRewriteHarness("v1", "v2")
	doc := editor.Open("acct-1", access.TierPro)

	first := FieldRef{Field: "summary"}
	_, err := svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, first, "old text")
	require.NoError(t, err)

	second := FieldRef{Collection: models.CollectionProjects, EntryID: "p-1", Field: "description"}
	_, err = svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, second, "new text")
	require.NoError(t, err)

	gotRef, _, ok := svc.Pending(doc.ID)
	require.True(t, ok)
	assert.Equal(t, second, gotRef)
}

func TestRewriteProviderFailureClearsPending(t *testing.T) {
	svc, editor, provider := newRewriteHarness("v1")
	doc := editor.Open("acct-1", access.TierPro)

	_, err := svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, FieldRef{Field: "summary"}, "text")
	require.NoError(t, err)

	provider.err = errors.New("model down")
	_, err = svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, FieldRef{Field: "summary"}, "text")
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))

	_, _, ok := svc.Pending(doc.ID)
	assert.False(t, ok)
}

func TestRewriteApplyWritesThroughEditorAndClears(t *testing.T) {
	svc, editor, _ := newRewriteHarness("polished summary")
	doc := editor.Open("acct-1", access.TierPro)

	ref := FieldRef{Field: "summary"}
	variants, err := svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, ref, "rough summary")
	require.NoError(t, err)

	require.NoError(t, svc.Apply(context.Background(), "acct-1", access.TierPro, doc.ID, ref, variants[0]))

	got, err := editor.Get("acct-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "polished summary", got.PersonalInfo.Summary)

	_, _, ok := svc.Pending(doc.ID)
	assert.False(t, ok)
}

func TestRewriteApplyToEntryField(t *testing.T) {
	svc, editor, _ := newRewriteHarness("led the team")
	doc := editor.Open("acct-1", access.TierPro)

	id, err := editor.AddEntry("acct-1", access.TierPro, doc.ID, models.CollectionExperience)
	require.NoError(t, err)

	ref := FieldRef{Collection: models.CollectionExperience, EntryID: id, Field: "description"}
	_, err = svc.Request(context.Background(), "acct-1", access.TierPro, doc.ID, ref, "was on a team")
	require.NoError(t, err)

	require.NoError(t, svc.Apply(context.Background(), "acct-1", access.TierPro, doc.ID, ref, "led the team"))

	got, err := editor.Get("acct-1", doc.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "led the team", got.Experience[0].Description)
}
