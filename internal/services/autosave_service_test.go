package services

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/models"
)

type fakeSaver struct {
	mu    sync.Mutex
	saves []*models.ResumeDocument
	accts []string
}

func (f *fakeSaver) Save(_ context.Context, accountID string, doc *models.ResumeDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, doc)
	f.accts = append(f.accts, accountID)
	return nil
}

func (f *fakeSaver) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func (f *fakeSaver) last() *models.ResumeDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saves) == 0 {
		return nil
	}
	return f.saves[len(f.saves)-1]
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

const testDelay = 30 * time.Millisecond

func newAutosaveHarness(t *testing.T) (EditorService, *fakeSaver, *AutosaveService) {
	t.Helper()
	alloc := identgen.NewSequential()
	store := NewDocumentStore(alloc)
	editor := NewEditorService(store, alloc)
	saver := &fakeSaver{}
	auto := NewAutosaveService(store, saver, testDelay, quietLogger())
	editor.Subscribe(auto)
	return editor, saver, auto
}

func waitForSaves(t *testing.T, saver *fakeSaver, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if saver.count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d saves, got %d", want, saver.count())
}

func TestAutosaveCoalescesBurstIntoOneSave(t *testing.T) {
	editor, saver, _ := newAutosaveHarness(t)
	doc := editor.Open("acct-1", access.TierPro)

	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "full_name", "Jane Doe"))
	for i := 0; i < 5; i++ {
		require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "summary", "draft"))
	}
	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "summary", "final"))

	waitForSaves(t, saver, 1)
	time.Sleep(2 * testDelay)

	assert.Equal(t, 1, saver.count())
	assert.Equal(t, "final", saver.last().PersonalInfo.Summary)
	assert.Equal(t, "acct-1", saver.accts[0])
}

func TestAutosaveSkipsNonProTiers(t *testing.T) {
	editor, saver, _ := newAutosaveHarness(t)
	doc := editor.Open("acct-1", access.TierFree)

	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierFree, doc.ID, "full_name", "Jane Doe"))

	time.Sleep(3 * testDelay)
	assert.Equal(t, 0, saver.count())
}

func TestAutosaveSkipsEmptyName(t *testing.T) {
	editor, saver, _ := newAutosaveHarness(t)
	doc := editor.Open("acct-1", access.TierPro)

	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "summary", "no name yet"))

	time.Sleep(3 * testDelay)
	assert.Equal(t, 0, saver.count())
}

func TestAutosaveReadsTierAtFireTime(t *testing.T) {
	editor, saver, _ := newAutosaveHarness(t)
	doc := editor.Open("acct-1", access.TierPro)

	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "full_name", "Jane Doe"))
	// downgrade lands before the debounce fires; the pending save must drop
	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierFree, doc.ID, "summary", "edited"))

	time.Sleep(3 * testDelay)
	assert.Equal(t, 0, saver.count())
}

func TestAutosaveCancelSuppressesPendingSave(t *testing.T) {
	editor, saver, auto := newAutosaveHarness(t)
	doc := editor.Open("acct-1", access.TierPro)

	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, doc.ID, "full_name", "Jane Doe"))
	auto.Cancel(doc.ID)

	time.Sleep(3 * testDelay)
	assert.Equal(t, 0, saver.count())
}

func TestAutosaveSeparateDocumentsSaveIndependently(t *testing.T) {
	editor, saver, _ := newAutosaveHarness(t)
	a := editor.Open("acct-1", access.TierPro)
	b := editor.Open("acct-2", access.TierPro)

	require.NoError(t, editor.UpdatePersonalField("acct-1", access.TierPro, a.ID, "full_name", "Jane"))
	require.NoError(t, editor.UpdatePersonalField("acct-2", access.TierPro, b.ID, "full_name", "John"))

	waitForSaves(t, saver, 2)
	assert.Equal(t, 2, saver.count())
}
