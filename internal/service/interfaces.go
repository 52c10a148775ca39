package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"canvas_sync/internal/domain"
	"canvas_sync/internal/source/canvas"
)

// Source is the remote content provider surface the synchronizer consumes.
type Source interface {
	BaseURL() string
	Courses(ctx context.Context) ([]domain.Course, error)
	Modules(ctx context.Context, courseID int64) ([]canvas.Module, error)
	ModuleItems(ctx context.Context, courseID, moduleID int64) ([]canvas.ModuleItem, error)
	Pages(ctx context.Context, courseID int64) ([]canvas.Page, error)
	Page(ctx context.Context, courseID int64, pageURL string) (*canvas.Page, error)
	Assignments(ctx context.Context, courseID int64) ([]canvas.Assignment, error)
	Assignment(ctx context.Context, courseID, assignmentID int64) (*canvas.Assignment, error)
	Quizzes(ctx context.Context, courseID int64) ([]canvas.Quiz, error)
	Quiz(ctx context.Context, courseID, quizID int64) (*canvas.Quiz, error)
	QuizQuestions(ctx context.Context, courseID, quizID int64) ([]canvas.QuizQuestion, error)
	Discussion(ctx context.Context, courseID, discussionID int64) (*canvas.Discussion, error)
	Announcements(ctx context.Context, courseID int64) ([]canvas.Discussion, error)
	Syllabus(ctx context.Context, courseID int64) (*canvas.Syllabus, error)
	FileInfo(ctx context.Context, courseID, fileID int64) (*canvas.File, error)
	RootFiles(ctx context.Context, courseID int64) ([]canvas.File, error)
	Download(ctx context.Context, rawURL string) ([]byte, string, error)
}

// Tracker decides, per item, whether a resync is required, and records
// results. One Tracker instance covers one course.
type Tracker interface {
	NeedsSync(id, versionMarker, localPath string) bool
	MarkSynced(item *domain.SyncedItem)
	Items() map[string]*domain.SyncedItem
	LastSync() time.Time
	Flush() error
}

// TrackerFactory opens the tracker for a course directory.
type TrackerFactory interface {
	ForCourse(courseDir string) Tracker
}

// ArtifactStore is the path-addressable surface for rendered artifacts.
type ArtifactStore interface {
	WriteText(relPath, text string) error
	WriteBytes(relPath string, data []byte) error
	ReadText(relPath string) (string, error)
	Exists(relPath string) bool
}

// ManifestWriter publishes a course's synced records for downstream tools.
type ManifestWriter interface {
	WriteCourse(course domain.Course, courseDir string, lastSync time.Time, items map[string]*domain.SyncedItem) error
}
