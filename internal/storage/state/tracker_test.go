package state

import (
	"io"
	"log/slog"
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvas_sync/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTracker_UnseenItemNeedsSync(t *testing.T) {
	fs := afero.NewMemMapFs()
	tr := NewTracker(fs, "course", false, testLogger())

	assert.True(t, tr.NeedsSync("page_intro", "2026-01-01T00:00:00Z", ""))
}

func TestTracker_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	tr := NewTracker(fs, "course", false, testLogger())

	artifactPath := "course/pages/Intro.txt"
	require.NoError(t, afero.WriteFile(fs, artifactPath, []byte("x"), 0o644))

	tr.MarkSynced(&domain.SyncedItem{
		ID:            "page_intro",
		Type:          domain.ItemTypePage,
		Title:         "Intro",
		VersionMarker: "2026-01-01T00:00:00Z",
		LocalPath:     artifactPath,
	})
	require.NoError(t, tr.Flush())

	reloaded := NewTracker(fs, "course", false, testLogger())
	assert.False(t, reloaded.NeedsSync("page_intro", "2026-01-01T00:00:00Z", artifactPath))
	assert.False(t, reloaded.LastSync().IsZero())
	assert.Len(t, reloaded.Items(), 1)
}

func TestTracker_ChangedMarkerNeedsSync(t *testing.T) {
	fs := afero.NewMemMapFs()
	tr := NewTracker(fs, "course", false, testLogger())

	tr.MarkSynced(&domain.SyncedItem{ID: "page_intro", VersionMarker: "v1"})
	require.NoError(t, tr.Flush())

	reloaded := NewTracker(fs, "course", false, testLogger())
	assert.True(t, reloaded.NeedsSync("page_intro", "v2", ""))
}

func TestTracker_MissingArtifactNeedsSync(t *testing.T) {
	fs := afero.NewMemMapFs()
	tr := NewTracker(fs, "course", false, testLogger())

	tr.MarkSynced(&domain.SyncedItem{ID: "page_intro", VersionMarker: "v1", LocalPath: "course/gone.txt"})
	require.NoError(t, tr.Flush())

	reloaded := NewTracker(fs, "course", false, testLogger())
	assert.True(t, reloaded.NeedsSync("page_intro", "v1", "course/gone.txt"))
}

func TestTracker_ForceResyncsEverything(t *testing.T) {
	fs := afero.NewMemMapFs()
	tr := NewTracker(fs, "course", false, testLogger())
	tr.MarkSynced(&domain.SyncedItem{ID: "page_intro", VersionMarker: "v1"})
	require.NoError(t, tr.Flush())

	forced := NewTracker(fs, "course", true, testLogger())
	assert.True(t, forced.NeedsSync("page_intro", "v1", ""))
}

func TestTracker_CorruptStateStartsFresh(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path.Join("course", StateFileName), []byte("{not json"), 0o644))

	tr := NewTracker(fs, "course", false, testLogger())

	assert.Empty(t, tr.Items())
	assert.True(t, tr.NeedsSync("anything", "v1", ""))
}
