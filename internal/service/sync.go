package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"canvas_sync/internal/domain"
	"canvas_sync/internal/extract"
	"canvas_sync/internal/source/canvas"
	"canvas_sync/internal/storage/artifact"
)

// Service synchronizes one course at a time: it consults the tracker,
// runs the extractor over rich-text bodies, writes rendered artifacts,
// and records results back into the tracker. Modules are synced first
// because most content lives there.
type Service struct {
	source    Source
	store     ArtifactStore
	trackers  TrackerFactory
	manifest  ManifestWriter
	extractor *extract.Extractor
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(
	source Source,
	store ArtifactStore,
	trackers TrackerFactory,
	manifest ManifestWriter,
	logger *slog.Logger,
) *Service {
	return &Service{
		source:    source,
		store:     store,
		trackers:  trackers,
		manifest:  manifest,
		extractor: extract.New(source.BaseURL()),
		logger:    logger,
		now:       time.Now,
	}
}

// Courses lists the enrolled courses from the source.
func (s *Service) Courses(ctx context.Context) ([]domain.Course, error) {
	return s.source.Courses(ctx)
}

// SyncCourse runs a full incremental pass over one course. Item-level
// failures are counted and logged but never abort the course; the
// tracker is flushed once at the end.
func (s *Service) SyncCourse(ctx context.Context, course domain.Course) (*domain.SyncStats, error) {
	start := time.Now()

	courseDir := artifact.Sanitize(course.Name)
	cs := &courseSync{
		svc:     s,
		course:  course,
		dir:     courseDir,
		tracker: s.trackers.ForCourse(courseDir),
		stats:   &domain.SyncStats{Course: course.Name},
		logger:  s.logger.With("course", course.Name),
	}

	if last := cs.tracker.LastSync(); !last.IsZero() {
		cs.logger.Info("starting incremental sync", "last_sync", last)
	} else {
		cs.logger.Info("starting full sync")
	}

	cs.syncModules(ctx)
	cs.syncPages(ctx)
	cs.syncAssignments(ctx)
	cs.syncSyllabus(ctx)
	cs.syncAnnouncements(ctx)
	cs.syncQuizzes(ctx)
	cs.syncRootFiles(ctx)

	if err := cs.tracker.Flush(); err != nil {
		return cs.stats, fmt.Errorf("flush sync state: %w", err)
	}

	if s.manifest != nil {
		if err := s.manifest.WriteCourse(course, courseDir, cs.tracker.LastSync(), cs.tracker.Items()); err != nil {
			cs.logger.Warn("write manifest failed", "error", err)
		}
	}

	cs.stats.Duration = time.Since(start)
	cs.logger.Info("course sync completed",
		"new", cs.stats.New,
		"updated", cs.stats.Updated,
		"skipped", cs.stats.Skipped,
		"errors", cs.stats.Errors,
		"duration", cs.stats.Duration,
	)
	return cs.stats, nil
}

// modContext carries the module-folder context items inherit when synced
// from inside a module.
type modContext struct {
	id     int64
	name   string
	unlock string
}

type courseSync struct {
	svc     *Service
	course  domain.Course
	dir     string
	tracker Tracker
	stats   *domain.SyncStats
	logger  *slog.Logger
}

func (cs *courseSync) syncModules(ctx context.Context) {
	modules, err := cs.svc.source.Modules(ctx, cs.course.ID)
	if err != nil {
		cs.fail("list modules", err)
		return
	}

	for _, m := range modules {
		moduleDir := path.Join(cs.dir, "modules", artifact.Sanitize(m.Name))
		accessible := cs.moduleAccessible(m)

		prior, known := cs.tracker.Items()[domain.ItemID(domain.ItemTypeModule, formatID(m.ID))]

		// Track the module itself even when locked, so a later run can
		// detect that it unlocked.
		cs.record(&domain.SyncedItem{
			ID:            domain.ItemID(domain.ItemTypeModule, formatID(m.ID)),
			Type:          domain.ItemTypeModule,
			Title:         m.Name,
			VersionMarker: m.UpdatedAt,
			LocalPath:     moduleDir,
			SourceURL:     fmt.Sprintf("%s/courses/%d/modules/%d", cs.svc.source.BaseURL(), cs.course.ID, m.ID),
			ModuleUnlock:  m.UnlockAt,
		}, known)

		if !accessible {
			cs.logger.Info("module locked", "module", m.Name, "unlock_at", m.UnlockAt)
			lockPath := path.Join(moduleDir, "_module_locked.txt")
			if err := cs.svc.store.WriteText(lockPath, renderLockedModule(m, fmt.Sprintf("%s/courses/%d/modules/%d", cs.svc.source.BaseURL(), cs.course.ID, m.ID))); err != nil {
				cs.fail("write locked module placeholder", err)
			}
			continue
		}

		switch {
		case !known:
			cs.logger.Info("syncing new module", "module", m.Name)
		case wasLocked(prior):
			cs.logger.Info("module newly released", "module", m.Name)
		default:
			cs.logger.Debug("syncing module", "module", m.Name)
		}

		items := m.Items
		if len(items) == 0 {
			items, err = cs.svc.source.ModuleItems(ctx, cs.course.ID, m.ID)
			if err != nil {
				cs.fail("list module items", err)
				continue
			}
		}

		mod := &modContext{id: m.ID, name: m.Name, unlock: m.UnlockAt}
		for _, item := range items {
			cs.syncModuleItem(ctx, item, moduleDir, mod)
		}
	}
}

// wasLocked reports whether the module's unlock time was still ahead of
// it at the previous sync.
func wasLocked(prior *domain.SyncedItem) bool {
	if prior.ModuleUnlock == "" {
		return false
	}
	unlock, err := time.Parse(time.RFC3339, prior.ModuleUnlock)
	if err != nil {
		return false
	}
	return unlock.After(prior.SyncedAt)
}

func (cs *courseSync) moduleAccessible(m canvas.Module) bool {
	if !m.Published {
		return false
	}
	if m.UnlockAt == "" {
		return true
	}
	unlock, err := time.Parse(time.RFC3339, m.UnlockAt)
	if err != nil {
		return true
	}
	return !unlock.After(cs.svc.now())
}

func (cs *courseSync) syncModuleItem(ctx context.Context, item canvas.ModuleItem, dir string, mod *modContext) {
	switch strings.ToLower(item.Type) {
	case "file":
		if item.ContentID == 0 {
			return
		}
		info, err := cs.svc.source.FileInfo(ctx, cs.course.ID, item.ContentID)
		if err != nil {
			cs.fail("fetch file info", err)
			return
		}
		cs.downloadFile(ctx, info.URL, dir, fileDownload{
			id:     domain.ItemID(domain.ItemTypeFile, formatID(info.ID)),
			marker: info.UpdatedAt,
			title:  item.Title,
			name:   info.DisplayName,
			fileID: info.ID,
		}, mod)

	case "page":
		if item.PageURL == "" {
			return
		}
		page, err := cs.svc.source.Page(ctx, cs.course.ID, item.PageURL)
		if err != nil {
			cs.fail("fetch page", err)
			return
		}
		cs.savePage(ctx, page, dir, mod)

	case "assignment":
		if item.ContentID == 0 {
			return
		}
		a, err := cs.svc.source.Assignment(ctx, cs.course.ID, item.ContentID)
		if err != nil {
			cs.fail("fetch assignment", err)
			return
		}
		cs.saveAssignment(ctx, a, dir, mod)

	case "quiz":
		if item.ContentID == 0 {
			return
		}
		q, err := cs.svc.source.Quiz(ctx, cs.course.ID, item.ContentID)
		if err != nil {
			cs.fail("fetch quiz", err)
			return
		}
		cs.saveQuiz(ctx, q, dir, mod)

	case "discussion":
		if item.ContentID == 0 {
			return
		}
		d, err := cs.svc.source.Discussion(ctx, cs.course.ID, item.ContentID)
		if err != nil {
			cs.fail("fetch discussion", err)
			return
		}
		cs.saveDiscussion(d, dir, domain.ItemTypeDiscussion, mod)

	case "externalurl":
		cs.saveExternal(item, item.ExternalURL, dir, domain.ItemTypeExternalURL, ".url", mod)

	case "externaltool":
		u := item.URL
		if u == "" {
			u = item.ExternalURL
		}
		cs.saveExternal(item, u, dir, domain.ItemTypeExternalTool, "_tool.url", mod)

	case "subheader":
		// Section header, nothing to sync.
	}
}

func (cs *courseSync) savePage(ctx context.Context, page *canvas.Page, dir string, mod *modContext) {
	if page.Body == "" {
		return
	}

	native := page.URL
	if native == "" {
		native = formatID(page.PageID)
	}
	id := domain.ItemID(domain.ItemTypePage, native)
	relPath := path.Join(dir, artifact.Sanitize(page.Title)+".txt")

	if !cs.tracker.NeedsSync(id, page.UpdatedAt, relPath) {
		cs.stats.Skipped++
		return
	}

	content := cs.svc.extractor.Extract(page.Body)
	if err := cs.svc.store.WriteText(relPath, renderPage(page.Title, content)); err != nil {
		cs.fail("write page", err)
		return
	}

	_, existed := cs.tracker.Items()[id]
	cs.record(&domain.SyncedItem{
		ID:            id,
		Type:          domain.ItemTypePage,
		Title:         page.Title,
		VersionMarker: page.UpdatedAt,
		LocalPath:     relPath,
		SourceURL:     fmt.Sprintf("%s/courses/%d/pages/%s", cs.svc.source.BaseURL(), cs.course.ID, page.URL),
		Links:         content.Links,
	}, existed, mod)

	cs.downloadLinkedFiles(ctx, content.Links, dir, mod)
}

func (cs *courseSync) saveAssignment(ctx context.Context, a *canvas.Assignment, dir string, mod *modContext) {
	id := domain.ItemID(domain.ItemTypeAssignment, formatID(a.ID))
	relPath := path.Join(dir, artifact.Sanitize(a.Name)+".txt")

	if !cs.tracker.NeedsSync(id, a.UpdatedAt, relPath) {
		cs.stats.Skipped++
		return
	}

	content := cs.svc.extractor.Extract(a.Description)
	directURL := fmt.Sprintf("%s/courses/%d/assignments/%d", cs.svc.source.BaseURL(), cs.course.ID, a.ID)

	if err := cs.svc.store.WriteText(relPath, renderAssignment(a, directURL, content)); err != nil {
		cs.fail("write assignment", err)
		return
	}

	_, existed := cs.tracker.Items()[id]
	cs.record(&domain.SyncedItem{
		ID:            id,
		Type:          domain.ItemTypeAssignment,
		Title:         a.Name,
		VersionMarker: a.UpdatedAt,
		LocalPath:     relPath,
		SourceURL:     directURL,
		DueAt:         a.DueAt,
		Links:         content.Links,
	}, existed, mod)

	cs.downloadLinkedFiles(ctx, content.Links, dir, mod)
}

func (cs *courseSync) saveQuiz(ctx context.Context, q *canvas.Quiz, dir string, mod *modContext) {
	id := domain.ItemID(domain.ItemTypeQuiz, formatID(q.ID))
	relPath := path.Join(dir, artifact.Sanitize(q.Title)+".txt")

	if !cs.tracker.NeedsSync(id, q.UpdatedAt, relPath) {
		cs.stats.Skipped++
		return
	}

	content := cs.svc.extractor.Extract(q.Description)

	// Question bodies are only served once the quiz is visible; absence
	// is normal, not an error.
	questions, err := cs.svc.source.QuizQuestions(ctx, cs.course.ID, q.ID)
	if err != nil {
		cs.logger.Debug("quiz questions unavailable", "quiz", q.Title, "error", err)
		questions = nil
	}

	links := content.Links
	var rendered []renderedQuestion
	for _, question := range questions {
		qc := cs.svc.extractor.Extract(question.QuestionText)
		links = append(links, qc.Links...)
		answers := make([]string, 0, len(question.Answers))
		for _, ans := range question.Answers {
			answers = append(answers, ans.Text)
		}
		rendered = append(rendered, renderedQuestion{text: qc.Text, answers: answers})
	}

	directURL := fmt.Sprintf("%s/courses/%d/quizzes/%d", cs.svc.source.BaseURL(), cs.course.ID, q.ID)
	if err := cs.svc.store.WriteText(relPath, renderQuiz(q, directURL, content, rendered, links)); err != nil {
		cs.fail("write quiz", err)
		return
	}

	_, existed := cs.tracker.Items()[id]
	cs.record(&domain.SyncedItem{
		ID:            id,
		Type:          domain.ItemTypeQuiz,
		Title:         q.Title,
		VersionMarker: q.UpdatedAt,
		LocalPath:     relPath,
		SourceURL:     directURL,
		DueAt:         q.DueAt,
		Links:         links,
	}, existed, mod)

	cs.downloadLinkedFiles(ctx, content.Links, dir, mod)
}

func (cs *courseSync) saveDiscussion(d *canvas.Discussion, dir string, typ domain.ItemType, mod *modContext) {
	id := domain.ItemID(typ, formatID(d.ID))
	relPath := path.Join(dir, artifact.Sanitize(d.Title)+".txt")

	if !cs.tracker.NeedsSync(id, d.PostedAt, relPath) {
		cs.stats.Skipped++
		return
	}

	content := cs.svc.extractor.Extract(d.Message)
	if err := cs.svc.store.WriteText(relPath, renderDiscussion(d, typ, content)); err != nil {
		cs.fail("write discussion", err)
		return
	}

	_, existed := cs.tracker.Items()[id]
	cs.record(&domain.SyncedItem{
		ID:            id,
		Type:          typ,
		Title:         d.Title,
		VersionMarker: d.PostedAt,
		LocalPath:     relPath,
		Links:         content.Links,
	}, existed, mod)
}

func (cs *courseSync) saveExternal(item canvas.ModuleItem, rawURL, dir string, typ domain.ItemType, suffix string, mod *modContext) {
	if rawURL == "" {
		return
	}

	id := domain.ItemID(typ, formatID(item.ID))
	relPath := path.Join(dir, artifact.Sanitize(item.Title)+suffix)

	// The URL itself is the version marker; external items carry no
	// last-modified timestamp.
	if !cs.tracker.NeedsSync(id, rawURL, relPath) {
		cs.stats.Skipped++
		return
	}

	if err := cs.svc.store.WriteText(relPath, "[InternetShortcut]\nURL="+rawURL+"\n"); err != nil {
		cs.fail("write external link", err)
		return
	}

	link := cs.svc.extractor.Link(rawURL, "", item.Title)
	_, existed := cs.tracker.Items()[id]
	cs.record(&domain.SyncedItem{
		ID:            id,
		Type:          typ,
		Title:         item.Title,
		VersionMarker: rawURL,
		LocalPath:     relPath,
		SourceURL:     rawURL,
		Links:         []domain.ExtractedLink{link},
	}, existed, mod)
}

func (cs *courseSync) syncPages(ctx context.Context) {
	pages, err := cs.svc.source.Pages(ctx, cs.course.ID)
	if err != nil {
		cs.fail("list pages", err)
		return
	}

	dir := path.Join(cs.dir, "pages")
	for _, summary := range pages {
		if summary.URL == "" {
			continue
		}
		page, err := cs.svc.source.Page(ctx, cs.course.ID, summary.URL)
		if err != nil {
			cs.fail("fetch page", err)
			continue
		}
		cs.savePage(ctx, page, dir, nil)
	}
}

func (cs *courseSync) syncAssignments(ctx context.Context) {
	assignments, err := cs.svc.source.Assignments(ctx, cs.course.ID)
	if err != nil {
		cs.fail("list assignments", err)
		return
	}

	dir := path.Join(cs.dir, "assignments")
	for i := range assignments {
		cs.saveAssignment(ctx, &assignments[i], dir, nil)
	}
}

func (cs *courseSync) syncQuizzes(ctx context.Context) {
	quizzes, err := cs.svc.source.Quizzes(ctx, cs.course.ID)
	if err != nil {
		cs.fail("list quizzes", err)
		return
	}

	dir := path.Join(cs.dir, "quizzes")
	for i := range quizzes {
		cs.saveQuiz(ctx, &quizzes[i], dir, nil)
	}
}

func (cs *courseSync) syncAnnouncements(ctx context.Context) {
	anns, err := cs.svc.source.Announcements(ctx, cs.course.ID)
	if err != nil {
		cs.fail("list announcements", err)
		return
	}

	dir := path.Join(cs.dir, "announcements")
	for i := range anns {
		cs.saveDiscussion(&anns[i], dir, domain.ItemTypeAnnouncement, nil)
	}
}

func (cs *courseSync) syncSyllabus(ctx context.Context) {
	syl, err := cs.svc.source.Syllabus(ctx, cs.course.ID)
	if err != nil {
		cs.fail("fetch syllabus", err)
		return
	}
	if syl.Body == "" {
		return
	}

	id := domain.ItemID(domain.ItemTypeSyllabus, formatID(cs.course.ID))
	relPath := path.Join(cs.dir, "syllabus.txt")

	if !cs.tracker.NeedsSync(id, syl.UpdatedAt, relPath) {
		cs.stats.Skipped++
		return
	}

	content := cs.svc.extractor.Extract(syl.Body)
	if err := cs.svc.store.WriteText(relPath, renderSyllabus(cs.course.Name, content)); err != nil {
		cs.fail("write syllabus", err)
		return
	}

	_, existed := cs.tracker.Items()[id]
	cs.record(&domain.SyncedItem{
		ID:            id,
		Type:          domain.ItemTypeSyllabus,
		Title:         "Course Syllabus",
		VersionMarker: syl.UpdatedAt,
		LocalPath:     relPath,
		Links:         content.Links,
	}, existed)
}

func (cs *courseSync) syncRootFiles(ctx context.Context) {
	files, err := cs.svc.source.RootFiles(ctx, cs.course.ID)
	if err != nil {
		cs.fail("list root files", err)
		return
	}

	dir := path.Join(cs.dir, "files")
	for _, f := range files {
		name := f.DisplayName
		if name == "" {
			name = f.Filename
		}
		cs.downloadFile(ctx, f.URL, dir, fileDownload{
			id:     domain.ItemID(domain.ItemTypeFile, formatID(f.ID)),
			marker: f.UpdatedAt,
			title:  name,
			name:   name,
			fileID: f.ID,
		}, nil)
	}
}

type fileDownload struct {
	id     string // empty means untracked
	marker string
	title  string
	name   string
	fileID int64
}

func (cs *courseSync) downloadFile(ctx context.Context, rawURL, dir string, fd fileDownload, mod *modContext) {
	if rawURL == "" {
		return
	}

	name := fd.name
	if name == "" {
		name = fd.title
	}
	relPath := path.Join(dir, artifact.Sanitize(name))

	existed := false
	if fd.id != "" {
		checkPath := relPath
		if prior, ok := cs.tracker.Items()[fd.id]; ok {
			existed = true
			if prior.LocalPath != "" {
				checkPath = prior.LocalPath
			}
		}
		if !cs.tracker.NeedsSync(fd.id, fd.marker, checkPath) {
			cs.stats.Skipped++
			return
		}
	}

	data, cdName, err := cs.svc.source.Download(ctx, rawURL)
	if err != nil {
		cs.fail("download file", err)
		return
	}
	if cdName != "" {
		relPath = path.Join(dir, artifact.Sanitize(cdName))
	}

	if err := cs.svc.store.WriteBytes(relPath, data); err != nil {
		cs.fail("write file", err)
		return
	}

	if fd.id != "" {
		sourceURL := rawURL
		if fd.fileID != 0 {
			sourceURL = fmt.Sprintf("%s/courses/%d/files/%d", cs.svc.source.BaseURL(), cs.course.ID, fd.fileID)
		}
		cs.record(&domain.SyncedItem{
			ID:            fd.id,
			Type:          domain.ItemTypeFile,
			Title:         fd.title,
			VersionMarker: fd.marker,
			LocalPath:     relPath,
			SourceURL:     sourceURL,
			FileSize:      int64(len(data)),
		}, existed, mod)
	}
}

var (
	fileIDPattern = regexp.MustCompile(`/files/(\d+)`)
	junkLinkNames = map[string]bool{
		"here": true, "click here": true, "link": true, "download": true,
	}
)

// downloadLinkedFiles fetches every file-category link found in a body.
// Linked files are tracked under a "linked_file" identity with an empty
// version marker so they never clash with module-level file records that
// do carry one.
func (cs *courseSync) downloadLinkedFiles(ctx context.Context, links []domain.ExtractedLink, dir string, mod *modContext) {
	for _, l := range links {
		if l.Category != domain.LinkCategoryFile {
			continue
		}
		u := l.ResolvedURL
		if u == "" {
			u = l.URL
		}

		if strings.Contains(u, "/files/") && !strings.Contains(u, "/download") {
			u = strings.TrimRight(u, "/") + "/download"
		}

		var fileID string
		if m := fileIDPattern.FindStringSubmatch(u); m != nil {
			fileID = m[1]
		}

		name := strings.TrimSpace(l.Text)
		if name == "" {
			name = strings.TrimSpace(l.Title)
		}
		if name == "" || junkLinkNames[strings.ToLower(name)] {
			if fileID == "" {
				name = "linked_file"
			} else {
				name = "linked_file_" + fileID
			}
		}

		var id string
		if fileID != "" {
			id = "linked_file_" + fileID
		}

		cs.downloadFile(ctx, u, dir, fileDownload{
			id:    id,
			title: name,
			name:  name,
		}, mod)
	}
}

// record stamps the module context onto the item, upserts it, and bumps
// the new/updated counters.
func (cs *courseSync) record(item *domain.SyncedItem, existed bool, mod ...*modContext) {
	if len(mod) > 0 && mod[0] != nil {
		item.ModuleID = mod[0].id
		item.ModuleName = mod[0].name
		item.ModuleUnlock = mod[0].unlock
	}
	cs.tracker.MarkSynced(item)
	if existed {
		cs.stats.Updated++
	} else {
		cs.stats.New++
	}
}

func (cs *courseSync) fail(op string, err error) {
	cs.stats.Errors++
	cs.logger.Warn(op+" failed", "error", err)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
