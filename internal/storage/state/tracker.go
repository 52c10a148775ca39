// Package state persists the per-course incremental sync tracking document.
package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/spf13/afero"

	"canvas_sync/internal/domain"
)

// StateFileName is the tracking document kept inside each course directory.
const StateFileName = "_sync_state.json"

// Tracker owns one course's SyncState. It is loaded once, mutated in
// memory while the course syncs, and flushed once at the end, so a crash
// mid-run loses only that run's progress.
type Tracker struct {
	fs     afero.Fs
	path   string
	force  bool
	state  *domain.SyncState
	logger *slog.Logger
}

// NewTracker loads the state file under courseDir. A missing, unreadable
// or corrupt file degrades to an empty state (full resync), never an error.
func NewTracker(fs afero.Fs, courseDir string, force bool, logger *slog.Logger) *Tracker {
	t := &Tracker{
		fs:     fs,
		path:   path.Join(courseDir, StateFileName),
		force:  force,
		logger: logger,
	}
	t.state = t.load()
	return t
}

func (t *Tracker) load() *domain.SyncState {
	data, err := afero.ReadFile(t.fs, t.path)
	if err != nil {
		return domain.NewSyncState()
	}

	var st domain.SyncState
	if err := json.Unmarshal(data, &st); err != nil {
		t.logger.Warn("sync state unreadable, starting fresh", "path", t.path, "error", err)
		return domain.NewSyncState()
	}
	if st.Items == nil {
		st.Items = make(map[string]*domain.SyncedItem)
	}
	return &st
}

// NeedsSync reports whether the item must be (re)downloaded: unseen id,
// changed version marker, or a recorded local artifact that no longer
// exists. Force mode treats everything as stale.
func (t *Tracker) NeedsSync(id, versionMarker, localPath string) bool {
	if t.force {
		return true
	}

	existing, ok := t.state.Items[id]
	if !ok {
		return true
	}
	if existing.VersionMarker != versionMarker {
		return true
	}
	if localPath != "" {
		if exists, _ := afero.Exists(t.fs, localPath); !exists {
			return true
		}
	}
	return false
}

// MarkSynced upserts the item with a fresh synced-at timestamp.
func (t *Tracker) MarkSynced(item *domain.SyncedItem) {
	item.SyncedAt = time.Now()
	t.state.Items[item.ID] = item
}

// Items exposes the tracked records for manifest and planning passes.
func (t *Tracker) Items() map[string]*domain.SyncedItem {
	return t.state.Items
}

// LastSync returns the completion time of the previous run, zero if none.
func (t *Tracker) LastSync() time.Time {
	return t.state.LastSync
}

// Flush writes the state document back to disk in one batch.
func (t *Tracker) Flush() error {
	t.state.LastSync = time.Now()

	data, err := json.MarshalIndent(t.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sync state: %w", err)
	}

	if dir := path.Dir(t.path); dir != "." {
		if err := t.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create course dir: %w", err)
		}
	}
	if err := afero.WriteFile(t.fs, t.path, data, 0o644); err != nil {
		return fmt.Errorf("write sync state: %w", err)
	}
	return nil
}
