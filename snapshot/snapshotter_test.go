package snapshot

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/a11y-cli/finding"
)

func messages(findings []finding.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}

func newTestSnapshotter(store Store) (*Snapshotter, *finding.Collector) {
	collector := &finding.Collector{}
	var buf bytes.Buffer
	reporter := finding.NewReporter(slog.New(slog.NewTextHandler(&buf, nil)), collector)
	s := NewSnapshotter(store, reporter)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	return s, collector
}

func TestSnapshotter_MissingReference(t *testing.T) {
	store := NewMemoryStore()
	s, collector := newTestSnapshotter(store)

	got := s.Capture("LoginTests", "testSignIn", sampleElements())
	require.Len(t, got, 1)
	assert.Equal(t, "No reference snapshot. Generated new snapshot.", got[0].Message)
	assert.Equal(t, "Check memory:LoginTests-testSignIn-0.json", got[0].Reason)
	assert.False(t, got[0].IsFailure())
	assert.Equal(t, got, collector.Findings())

	saved, ok := store.Saved("LoginTests-testSignIn-0.json")
	require.True(t, ok)
	assert.Equal(t, CurrentVersion, saved.Version)
	assert.Len(t, saved.Snapshot, 3)
	assert.True(t, s.now().Equal(saved.Generated))
}

func TestSnapshotter_MatchingReference(t *testing.T) {
	store := NewMemoryStore()
	store.Put(NewCapture("LoginTests-testSignIn-0.json", sampleElements()).Document(time.Now()))
	s, collector := newTestSnapshotter(store)

	assert.Empty(t, s.Capture("LoginTests", "testSignIn", sampleElements()))
	assert.Empty(t, collector.Findings())
	assert.False(t, s.Reporter().Failed())
}

func TestSnapshotter_RepeatedCapturesAreNumbered(t *testing.T) {
	store := NewMemoryStore()
	s, _ := newTestSnapshotter(store)

	s.Capture("Suite", "test", sampleElements())
	s.Capture("Suite", "test", sampleElements()[:1])

	_, ok := store.Saved("Suite-test-0.json")
	assert.True(t, ok)
	second, ok := store.Saved("Suite-test-1.json")
	require.True(t, ok)
	assert.Len(t, second.Snapshot, 1)
}

func TestSnapshotter_OutdatedReferenceRegenerates(t *testing.T) {
	store := NewMemoryStore()
	ref := NewCapture("Suite-test-0.json", sampleElements()[:1]).Document(time.Now())
	ref.Version = "1.1"
	store.Put(ref)
	s, _ := newTestSnapshotter(store)

	got := s.Capture("Suite", "test", sampleElements())
	require.Len(t, got, 1, "outdated references are never compared")
	assert.Equal(t, "Reference snapshot is outdated. Generated new snapshot. Check for regressions before replacing as reference.", got[0].Message)
	assert.False(t, got[0].IsFailure())

	saved, ok := store.Saved("Suite-test-0.json")
	require.True(t, ok)
	assert.Equal(t, CurrentVersion, saved.Version)
}

func TestSnapshotter_RegenerationFailure(t *testing.T) {
	store := NewMemoryStore()
	store.SaveErr = errors.New("disk full")
	s, _ := newTestSnapshotter(store)

	got := s.Capture("Suite", "test", sampleElements())
	require.Len(t, got, 1)
	assert.Equal(t, "No reference snapshot. Unable to create new reference", got[0].Message)
	assert.Equal(t, "disk full", got[0].Reason)
	assert.True(t, got[0].IsFailure())
	assert.True(t, s.Reporter().Failed())

	ref := NewCapture("Suite-other-0.json", nil).Document(time.Now())
	ref.Version = "1.0"
	store.Put(ref)
	got = s.Capture("Suite", "other", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Reference snapshot is outdated. Unable to create new reference", got[0].Message)
}

func TestSnapshotter_ChangedScreen(t *testing.T) {
	store := NewMemoryStore()
	store.Put(NewCapture("Suite-test-0.json", sampleElements()).Document(time.Now()))
	s, _ := newTestSnapshotter(store)

	current := sampleElements()
	current[1].Ignored = true

	got := s.Capture("Suite", "test", current)
	require.NotEmpty(t, got)
	assert.Equal(t, "Snapshots contain a different number of items. This screen has changed", got[0].Message)
	assert.True(t, s.Reporter().Failed())
	_, saved := store.Saved("Suite-test-0.json")
	assert.False(t, saved, "a compared reference is not regenerated")
}

func TestSnapshotter_FileStoreEndToEnd(t *testing.T) {
	dir := t.TempDir()
	s, _ := newTestSnapshotter(FileStore{ReferenceDir: dir, OutputDir: dir})

	first := s.Capture("Suite", "test", sampleElements())
	require.Len(t, first, 1)
	assert.False(t, first[0].IsFailure())

	again, _ := newTestSnapshotter(FileStore{ReferenceDir: dir, OutputDir: dir})
	assert.Empty(t, again.Capture("Suite", "test", sampleElements()))
}

func TestSnapshotter_UnreadableReferenceFails(t *testing.T) {
	refDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(refDir, "Suite-test-0.json"), 0755))
	s, _ := newTestSnapshotter(FileStore{ReferenceDir: refDir, OutputDir: outDir})

	got := s.Capture("Suite", "test", sampleElements())
	require.Len(t, got, 1)
	assert.Equal(t, "Unable to load reference snapshot.", got[0].Message)
	assert.True(t, got[0].IsFailure())
	assert.NotEmpty(t, got[0].Reason)

	_, err := os.Stat(filepath.Join(outDir, "Suite-test-0.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "a read failure does not regenerate the reference")
}

func TestSnapshotter_CorruptReferenceRegenerates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Suite-test-0.json"), []byte("{not json"), 0644))
	s, _ := newTestSnapshotter(FileStore{ReferenceDir: dir, OutputDir: t.TempDir()})

	got := s.Capture("Suite", "test", sampleElements())
	require.Len(t, got, 1)
	assert.Equal(t, "No reference snapshot. Generated new snapshot.", got[0].Message)
	assert.False(t, got[0].IsFailure())
}
