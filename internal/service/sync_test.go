package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"canvas_sync/internal/domain"
	"canvas_sync/internal/service"
	"canvas_sync/internal/service/mocks"
	"canvas_sync/internal/source/canvas"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source   *mocks.MockSource
	store    *mocks.MockArtifactStore
	trackers *mocks.MockTrackerFactory
	tracker  *mocks.MockTracker
	manifest *mocks.MockManifestWriter

	svc    *service.Service
	course domain.Course
	logger *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.store = mocks.NewMockArtifactStore(s.ctrl)
	s.trackers = mocks.NewMockTrackerFactory(s.ctrl)
	s.tracker = mocks.NewMockTracker(s.ctrl)
	s.manifest = mocks.NewMockManifestWriter(s.ctrl)

	s.course = domain.Course{ID: 1, Name: "Biology 101", Code: "BIO101"}
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.source.EXPECT().BaseURL().Return("https://canvas.test").AnyTimes()
	s.trackers.EXPECT().ForCourse("Biology 101").Return(s.tracker).AnyTimes()
	s.tracker.EXPECT().LastSync().Return(time.Time{}).AnyTimes()

	s.svc = service.NewService(s.source, s.store, s.trackers, s.manifest, s.logger)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

// expectEmptyCourse stubs every listing except the ones a test stubs itself.
func (s *SyncServiceTestSuite) expectEmptyCourse(except ...string) {
	skip := map[string]bool{}
	for _, m := range except {
		skip[m] = true
	}
	ctx := gomock.Any()
	if !skip["Modules"] {
		s.source.EXPECT().Modules(ctx, int64(1)).Return(nil, nil)
	}
	if !skip["Pages"] {
		s.source.EXPECT().Pages(ctx, int64(1)).Return(nil, nil)
	}
	if !skip["Assignments"] {
		s.source.EXPECT().Assignments(ctx, int64(1)).Return(nil, nil)
	}
	if !skip["Quizzes"] {
		s.source.EXPECT().Quizzes(ctx, int64(1)).Return(nil, nil)
	}
	if !skip["Announcements"] {
		s.source.EXPECT().Announcements(ctx, int64(1)).Return(nil, nil)
	}
	if !skip["Syllabus"] {
		s.source.EXPECT().Syllabus(ctx, int64(1)).Return(&canvas.Syllabus{}, nil)
	}
	if !skip["RootFiles"] {
		s.source.EXPECT().RootFiles(ctx, int64(1)).Return(nil, nil)
	}
}

func (s *SyncServiceTestSuite) expectFinish() {
	s.tracker.EXPECT().Flush().Return(nil)
	s.manifest.EXPECT().WriteCourse(s.course, "Biology 101", gomock.Any(), gomock.Any()).Return(nil)
}

func (s *SyncServiceTestSuite) TestSyncCourse_NewAssignment() {
	ctx := context.Background()

	assignment := canvas.Assignment{
		ID:          7,
		Name:        "Essay One",
		Description: `<p>Write about <a href="https://example.org/topic">this topic</a></p>`,
		DueAt:       "2026-02-06T23:59:00Z",
		UpdatedAt:   "2026-01-10T00:00:00Z",
	}

	s.expectEmptyCourse("Assignments")
	s.source.EXPECT().Assignments(gomock.Any(), int64(1)).Return([]canvas.Assignment{assignment}, nil)

	s.tracker.EXPECT().Items().Return(map[string]*domain.SyncedItem{}).AnyTimes()
	s.tracker.EXPECT().
		NeedsSync("assignment_7", "2026-01-10T00:00:00Z", "Biology 101/assignments/Essay One.txt").
		Return(true)

	s.store.EXPECT().
		WriteText("Biology 101/assignments/Essay One.txt", gomock.Any()).
		DoAndReturn(func(_, text string) error {
			s.Contains(text, "ASSIGNMENT: Essay One")
			s.Contains(text, "Due: 2026-02-06T23:59:00Z")
			s.Contains(text, "https://example.org/topic")
			return nil
		})

	s.tracker.EXPECT().MarkSynced(gomock.Any()).Do(func(item *domain.SyncedItem) {
		s.Equal("assignment_7", item.ID)
		s.Equal(domain.ItemTypeAssignment, item.Type)
		s.Equal("Biology 101/assignments/Essay One.txt", item.LocalPath)
		s.Equal("2026-02-06T23:59:00Z", item.DueAt)
		s.Len(item.Links, 1)
	})

	s.expectFinish()

	stats, err := s.svc.SyncCourse(ctx, s.course)
	s.Require().NoError(err)
	s.Equal(1, stats.New)
	s.Equal(0, stats.Updated)
	s.Equal(0, stats.Errors)
}

func (s *SyncServiceTestSuite) TestSyncCourse_UnchangedItemSkipped() {
	ctx := context.Background()

	assignment := canvas.Assignment{ID: 7, Name: "Essay One", UpdatedAt: "2026-01-10T00:00:00Z"}

	s.expectEmptyCourse("Assignments")
	s.source.EXPECT().Assignments(gomock.Any(), int64(1)).Return([]canvas.Assignment{assignment}, nil)

	s.tracker.EXPECT().Items().Return(map[string]*domain.SyncedItem{}).AnyTimes()
	s.tracker.EXPECT().
		NeedsSync("assignment_7", "2026-01-10T00:00:00Z", "Biology 101/assignments/Essay One.txt").
		Return(false)

	s.expectFinish()

	stats, err := s.svc.SyncCourse(ctx, s.course)
	s.Require().NoError(err)
	s.Equal(0, stats.New)
	s.Equal(1, stats.Skipped)
}

func (s *SyncServiceTestSuite) TestSyncCourse_ChangedItemCountsUpdated() {
	ctx := context.Background()

	assignment := canvas.Assignment{ID: 7, Name: "Essay One", UpdatedAt: "2026-01-12T00:00:00Z"}
	prior := map[string]*domain.SyncedItem{
		"assignment_7": {ID: "assignment_7", VersionMarker: "2026-01-10T00:00:00Z"},
	}

	s.expectEmptyCourse("Assignments")
	s.source.EXPECT().Assignments(gomock.Any(), int64(1)).Return([]canvas.Assignment{assignment}, nil)

	s.tracker.EXPECT().Items().Return(prior).AnyTimes()
	s.tracker.EXPECT().NeedsSync("assignment_7", "2026-01-12T00:00:00Z", gomock.Any()).Return(true)
	s.store.EXPECT().WriteText(gomock.Any(), gomock.Any()).Return(nil)
	s.tracker.EXPECT().MarkSynced(gomock.Any())

	s.expectFinish()

	stats, err := s.svc.SyncCourse(ctx, s.course)
	s.Require().NoError(err)
	s.Equal(0, stats.New)
	s.Equal(1, stats.Updated)
}

func (s *SyncServiceTestSuite) TestSyncCourse_ListingFailureIsCountedNotFatal() {
	ctx := context.Background()

	s.expectEmptyCourse("Assignments")
	s.source.EXPECT().Assignments(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))

	s.tracker.EXPECT().Items().Return(map[string]*domain.SyncedItem{}).AnyTimes()
	s.expectFinish()

	stats, err := s.svc.SyncCourse(ctx, s.course)
	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
}

func (s *SyncServiceTestSuite) TestSyncCourse_LockedModuleGetsPlaceholder() {
	ctx := context.Background()

	locked := canvas.Module{
		ID:        3,
		Name:      "Week 9",
		Published: true,
		UnlockAt:  "2099-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
		Items:     []canvas.ModuleItem{{ID: 1, Type: "Page", PageURL: "hidden"}},
	}

	s.expectEmptyCourse("Modules")
	s.source.EXPECT().Modules(gomock.Any(), int64(1)).Return([]canvas.Module{locked}, nil)

	s.tracker.EXPECT().Items().Return(map[string]*domain.SyncedItem{}).AnyTimes()
	s.tracker.EXPECT().MarkSynced(gomock.Any()).Do(func(item *domain.SyncedItem) {
		s.Equal("module_3", item.ID)
		s.Equal("2099-01-01T00:00:00Z", item.ModuleUnlock)
	})
	s.store.EXPECT().
		WriteText("Biology 101/modules/Week 9/_module_locked.txt", gomock.Any()).
		DoAndReturn(func(_, text string) error {
			s.Contains(text, "MODULE (LOCKED): Week 9")
			return nil
		})

	s.expectFinish()

	stats, err := s.svc.SyncCourse(ctx, s.course)
	s.Require().NoError(err)
	s.Equal(1, stats.New)
}

func (s *SyncServiceTestSuite) TestSyncCourse_ExternalURLArtifact() {
	ctx := context.Background()

	module := canvas.Module{
		ID:        4,
		Name:      "Links",
		Published: true,
		UpdatedAt: "2026-01-01T00:00:00Z",
		Items: []canvas.ModuleItem{
			{ID: 9, Type: "ExternalUrl", Title: "Course Reader", ExternalURL: "https://example.org/reader"},
		},
	}

	s.expectEmptyCourse("Modules")
	s.source.EXPECT().Modules(gomock.Any(), int64(1)).Return([]canvas.Module{module}, nil)

	s.tracker.EXPECT().Items().Return(map[string]*domain.SyncedItem{}).AnyTimes()
	s.tracker.EXPECT().MarkSynced(gomock.Any()).Times(2)
	s.tracker.EXPECT().
		NeedsSync("external_url_9", "https://example.org/reader", "Biology 101/modules/Links/Course Reader.url").
		Return(true)
	s.store.EXPECT().
		WriteText("Biology 101/modules/Links/Course Reader.url", "[InternetShortcut]\nURL=https://example.org/reader\n").
		Return(nil)

	s.expectFinish()

	stats, err := s.svc.SyncCourse(ctx, s.course)
	s.Require().NoError(err)
	s.Equal(2, stats.New) // module record plus the link artifact
}
