package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/utils"
)

func newTestEditor() (EditorService, *DocumentStore) {
	alloc := identgen.NewSequential()
	store := NewDocumentStore(alloc)
	return NewEditorService(store, alloc), store
}

type recordingListener struct {
	mu   sync.Mutex
	docs []string
}

func (l *recordingListener) DocumentChanged(docID string) {
	l.mu.Lock()
	l.docs = append(l.docs, docID)
	l.mu.Unlock()
}

func (l *recordingListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.docs)
}

func TestEditorPersonalFieldRoundTrip(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierGuest)

	require.NoError(t, svc.UpdatePersonalField("acct-1", access.TierGuest, doc.ID, "full_name", "Jane Doe"))
	require.NoError(t, svc.UpdatePersonalField("acct-1", access.TierGuest, doc.ID, "summary", "Engineer."))

	got, err := svc.Get("acct-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.PersonalInfo.FullName)
	assert.Equal(t, "Engineer.", got.PersonalInfo.Summary)
	assert.False(t, got.LastModified.Before(doc.LastModified))
}

func TestEditorUnknownPersonalFieldRejected(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierFree)

	err := svc.UpdatePersonalField("acct-1", access.TierFree, doc.ID, "shoe_size", "42")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestEditorGuestCanEditOpenSections(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierGuest)

	id, err := svc.AddEntry("acct-1", access.TierGuest, doc.ID, models.CollectionExperience)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateEntryField("acct-1", access.TierGuest, doc.ID, models.CollectionExperience, id, "company", "Acme"))

	got, err := svc.Get("acct-1", doc.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Acme", got.Experience[0].Company)
}

func TestEditorGuestBlockedFromSignInSections(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierGuest)

	_, err := svc.AddEntry("acct-1", access.TierGuest, doc.ID, models.CollectionSkills)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))

	got, _ := svc.Get("acct-1", doc.ID)
	assert.Empty(t, got.Skills)
}

func TestEditorGuestBlockedFromProSectionsWithUpgrade(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierGuest)

	_, err := svc.AddEntry("acct-1", access.TierGuest, doc.ID, models.CollectionProjects)
	assert.True(t, utils.IsCode(err, utils.CodeUpgradeRequired))
}

func TestEditorFreeTierSectionSpread(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierFree)

	_, err := svc.AddEntry("acct-1", access.TierFree, doc.ID, models.CollectionSkills)
	assert.NoError(t, err)

	_, err = svc.AddEntry("acct-1", access.TierFree, doc.ID, models.CollectionLanguages)
	assert.True(t, utils.IsCode(err, utils.CodeUpgradeRequired))
}

func TestEditorProEditsEverySection(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierPro)

	for _, col := range models.Collections {
		_, err := svc.AddEntry("acct-1", access.TierPro, doc.ID, col)
		assert.NoError(t, err, "collection %s", col)
	}
}

func TestEditorTierChangeMidSessionTakesEffect(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierFree)

	_, err := svc.AddEntry("acct-1", access.TierFree, doc.ID, models.CollectionProjects)
	require.True(t, utils.IsCode(err, utils.CodeUpgradeRequired))

	// same session, upgraded tier on the next call
	_, err = svc.AddEntry("acct-1", access.TierPro, doc.ID, models.CollectionProjects)
	assert.NoError(t, err)
}

func TestEditorStaleEntryIDIsNoOp(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierPro)

	id, err := svc.AddEntry("acct-1", access.TierPro, doc.ID, models.CollectionExperience)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveEntry("acct-1", access.TierPro, doc.ID, models.CollectionExperience, id))

	// update against the removed id succeeds without effect
	err = svc.UpdateEntryField("acct-1", access.TierPro, doc.ID, models.CollectionExperience, id, "company", "Ghost")
	assert.NoError(t, err)

	got, _ := svc.Get("acct-1", doc.ID)
	assert.Empty(t, got.Experience)
}

func TestEditorUnknownCollectionRejected(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierPro)

	_, err := svc.AddEntry("acct-1", access.TierPro, doc.ID, models.Collection("hobbies"))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestEditorOwnershipEnforced(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierPro)

	_, err := svc.Get("acct-2", doc.ID)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	err = svc.UpdatePersonalField("acct-2", access.TierPro, doc.ID, "full_name", "Mallory")
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestEditorUnknownDocumentNotFound(t *testing.T) {
	svc, _ := newTestEditor()

	_, err := svc.Get("acct-1", "missing")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestEditorMutationsNotifyListeners(t *testing.T) {
	svc, _ := newTestEditor()
	l := &recordingListener{}
	svc.Subscribe(l)

	doc := svc.Open("acct-1", access.TierPro)
	require.NoError(t, svc.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "full_name", "Jane"))
	_, err := svc.AddEntry("acct-1", access.TierPro, doc.ID, models.CollectionSkills)
	require.NoError(t, err)

	assert.Equal(t, 2, l.count())
}

func TestEditorDeniedMutationDoesNotNotify(t *testing.T) {
	svc, _ := newTestEditor()
	l := &recordingListener{}
	svc.Subscribe(l)

	doc := svc.Open("acct-1", access.TierGuest)
	_, err := svc.AddEntry("acct-1", access.TierGuest, doc.ID, models.CollectionProjects)
	require.Error(t, err)

	assert.Equal(t, 0, l.count())
}

func TestEditorApplyImportReplacesWholesale(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierFree)

	// pre-existing content that must not survive the import
	id, err := svc.AddEntry("acct-1", access.TierFree, doc.ID, models.CollectionEducation)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateEntryField("acct-1", access.TierFree, doc.ID, models.CollectionEducation, id, "school", "Old School"))

	imported := models.NewResumeDocument("ignored")
	imported.PersonalInfo.FullName = "Jane Doe"
	imported.Experience = append(imported.Experience, models.Experience{ID: "e-1", Company: "Acme"})

	require.NoError(t, svc.ApplyImport("acct-1", access.TierFree, doc.ID, imported))

	got, err := svc.Get("acct-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.PersonalInfo.FullName)
	require.Len(t, got.Experience, 1)
	assert.Empty(t, got.Education)
}

func TestEditorSnapshotsAreIsolated(t *testing.T) {
	svc, _ := newTestEditor()
	doc := svc.Open("acct-1", access.TierPro)

	got, err := svc.Get("acct-1", doc.ID)
	require.NoError(t, err)
	got.PersonalInfo.FullName = "Tampered"

	again, err := svc.Get("acct-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "", again.PersonalInfo.FullName)
}
