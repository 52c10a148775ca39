package plan

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"canvas_sync/internal/config"
	"canvas_sync/internal/domain"
	"canvas_sync/internal/extract"
	"canvas_sync/internal/storage/state"
)

// Planner builds weekly study bundles out of the per-course state files
// a sync pass left behind. fs is rooted at the download directory, so
// every path it sees and emits is course-relative.
type Planner struct {
	fs     afero.Fs
	loc    *time.Location
	cfg    config.PlanConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewPlanner(fs afero.Fs, cfg config.PlanConfig, logger *slog.Logger) *Planner {
	return &Planner{
		fs:     fs,
		loc:    cfg.Location(),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Result is a full plan: chronologically sorted week bundles plus the
// graded items no due date could be found for.
type Result struct {
	Weeks       []domain.WeekBundle
	Unscheduled []domain.ScheduledItem
}

type courseState struct {
	ref   domain.CourseRef
	dir   string
	items map[string]*domain.SyncedItem
}

// Plan reads every course directory and builds the schedule.
func (p *Planner) Plan() (*Result, error) {
	courses, err := p.loadCourses()
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("no synced courses found")
	}

	weeks := map[WeekKey][]domain.ScheduledItem{}
	resources := map[WeekKey]map[string]domain.ScheduledItem{}
	var unscheduled []domain.ScheduledItem

	for _, course := range courses {
		for _, item := range sortedItems(course.items) {
			if item.Type != domain.ItemTypeAssignment && item.Type != domain.ItemTypeQuiz {
				continue
			}

			materials := p.materialsFor(course, item)
			zoom := zoomLinksFor(course, item)

			due, ok := p.resolveDue(course, item)
			task := domain.ScheduledItem{
				ID:        "task_" + course.ref.ID + "_" + item.ID,
				Kind:      kindOf(item.Type),
				Title:     item.Title,
				Course:    course.ref,
				DirectURL: item.SourceURL,
				LocalPath: courseRelative(course.dir, item.LocalPath),
				Materials: materials,
				ZoomLinks: zoom,
			}

			if !ok {
				task.Priority = domain.PriorityMedium
				if item.DueAt != "" {
					task.DueAt = item.DueAt
				}
				unscheduled = append(unscheduled, task)
				continue
			}

			task.DueAt = due.Format(time.RFC3339)
			task.ScheduledAt = due
			task.Priority = TaskPriority(item.Title, true)

			taskWeek := KeyOf(due)
			task.Week = taskWeek.String()
			weeks[taskWeek] = append(weeks[taskWeek], task)

			prepAt := due.AddDate(0, 0, -p.prepDays(item.Type))
			prepWeek := KeyOf(prepAt)
			prep := domain.ScheduledItem{
				ID:          "prep_" + course.ref.ID + "_" + item.ID,
				Kind:        domain.KindPrep,
				Title:       PrepTitle(item.Title, materials),
				Course:      course.ref,
				Week:        prepWeek.String(),
				ScheduledAt: prepAt,
				DueAt:       task.DueAt,
				DirectURL:   item.SourceURL,
				Materials:   materials,
				ZoomLinks:   zoom,
				Priority:    domain.PriorityHigh,
			}
			weeks[prepWeek] = append(weeks[prepWeek], prep)

			p.addResources(resources, taskWeek, course, materials)
		}
	}

	for week, byKey := range resources {
		for _, res := range byKey {
			weeks[week] = append(weeks[week], res)
		}
	}

	result := &Result{Unscheduled: unscheduled}
	keys := make([]WeekKey, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	for _, k := range keys {
		items := weeks[k]
		sort.Slice(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if !a.ScheduledAt.Equal(b.ScheduledAt) {
				return a.ScheduledAt.Before(b.ScheduledAt)
			}
			if a.Course.Name != b.Course.Name {
				return a.Course.Name < b.Course.Name
			}
			if a.Kind != b.Kind {
				return a.Kind < b.Kind
			}
			return a.Title < b.Title
		})
		result.Weeks = append(result.Weeks, domain.WeekBundle{
			Week:  k.Info(p.loc),
			Items: items,
		})
	}

	sort.Slice(result.Unscheduled, func(i, j int) bool {
		a, b := result.Unscheduled[i], result.Unscheduled[j]
		if a.Course.Name != b.Course.Name {
			return a.Course.Name < b.Course.Name
		}
		return a.Title < b.Title
	})

	p.logger.Info("plan built",
		"courses", len(courses),
		"weeks", len(result.Weeks),
		"unscheduled", len(result.Unscheduled),
	)
	return result, nil
}

// loadCourses walks the top-level course directories, skipping
// underscore-prefixed output and bookkeeping directories.
func (p *Planner) loadCourses() ([]courseState, error) {
	entries, err := afero.ReadDir(p.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("read download dir: %w", err)
	}

	var courses []courseState
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), "_") || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		statePath := path.Join(e.Name(), state.StateFileName)
		data, err := afero.ReadFile(p.fs, statePath)
		if err != nil {
			continue
		}
		var st domain.SyncState
		if err := json.Unmarshal(data, &st); err != nil {
			p.logger.Warn("skipping unreadable state file", "path", statePath, "error", err)
			continue
		}
		courses = append(courses, courseState{
			ref:   p.courseRef(e.Name()),
			dir:   e.Name(),
			items: st.Items,
		})
	}

	sort.Slice(courses, func(i, j int) bool { return courses[i].ref.Name < courses[j].ref.Name })
	return courses, nil
}

// courseRef reads the manifest for course identity, falling back to the
// directory name when no manifest exists.
func (p *Planner) courseRef(dir string) domain.CourseRef {
	ref := domain.CourseRef{ID: dir, Name: dir}
	data, err := afero.ReadFile(p.fs, path.Join(dir, "_manifest.json"))
	if err != nil {
		return ref
	}
	var m struct {
		Course struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"course"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return ref
	}
	if m.Course.ID != 0 {
		ref.ID = fmt.Sprintf("%d", m.Course.ID)
	}
	if m.Course.Name != "" {
		ref.Name = m.Course.Name
	}
	return ref
}

var duePattern = regexp.MustCompile(`(?m)^Due:\s*(.+)$`)

var dueFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// resolveDue finds the effective due time in the local zone. The tracked
// field wins; when it is empty the rendered artifact is scanned for a
// "Due:" line, since instructors sometimes state deadlines only in the
// item body.
func (p *Planner) resolveDue(course courseState, item *domain.SyncedItem) (time.Time, bool) {
	if t, ok := parseDue(item.DueAt); ok {
		return t.In(p.loc), true
	}

	if item.LocalPath == "" {
		return time.Time{}, false
	}
	data, err := afero.ReadFile(p.fs, item.LocalPath)
	if err != nil {
		return time.Time{}, false
	}
	m := duePattern.FindSubmatch(data)
	if m == nil {
		return time.Time{}, false
	}
	if t, ok := parseDue(strings.TrimSpace(string(m[1]))); ok {
		return t.In(p.loc), true
	}
	return time.Time{}, false
}

func parseDue(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dueFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p *Planner) prepDays(t domain.ItemType) int {
	if t == domain.ItemTypeQuiz {
		return p.cfg.QuizPrepDays
	}
	return p.cfg.AssignmentPrepDays
}

// materialsFor collects the study resources attached to a graded item:
// its body links, minus the item's own canonical address, plus the
// non-graded items sharing its module.
func (p *Planner) materialsFor(course courseState, item *domain.SyncedItem) []domain.Material {
	var out []domain.Material

	for _, l := range item.Links {
		target := l.ResolvedURL
		if target == "" {
			target = l.URL
		}
		if target == "" || target == item.SourceURL {
			continue
		}

		title := strings.TrimSpace(l.Text)
		if title == "" {
			title = strings.TrimSpace(l.Title)
		}
		if title == "" {
			title = target
		}

		switch l.Category {
		case domain.LinkCategoryFile:
			out = append(out, domain.Material{
				Title:     title,
				URL:       target,
				LocalPath: p.linkedFilePath(course, target),
				Category:  Classify(title, target, domain.ResourceFile),
			})
		case domain.LinkCategoryVideo:
			out = append(out, domain.Material{
				Title:    title,
				URL:      target,
				Category: domain.ResourceVideo,
			})
		case domain.LinkCategoryExternal:
			out = append(out, domain.Material{
				Title:    title,
				URL:      target,
				Category: Classify(title, target, domain.ResourceExternal),
			})
		}
	}

	if item.ModuleID != 0 {
		for _, sibling := range sortedItems(course.items) {
			if sibling.ModuleID != item.ModuleID || sibling.ID == item.ID {
				continue
			}
			switch sibling.Type {
			case domain.ItemTypeAssignment, domain.ItemTypeQuiz, domain.ItemTypeModule:
				continue
			}
			out = append(out, domain.Material{
				Title:     sibling.Title,
				URL:       sibling.SourceURL,
				LocalPath: courseRelative(course.dir, sibling.LocalPath),
				Category:  Classify(sibling.Title, sibling.LocalPath, domain.ResourceModuleItem),
			})
		}
	}

	return out
}

var linkedFileID = regexp.MustCompile(`/files/(\d+)`)

// linkedFilePath maps a file link back to the local copy the syncer
// downloaded for it, when one exists.
func (p *Planner) linkedFilePath(course courseState, target string) string {
	m := linkedFileID.FindStringSubmatch(target)
	if m == nil {
		return ""
	}
	for _, id := range []string{"linked_file_" + m[1], "file_" + m[1]} {
		if rec, ok := course.items[id]; ok && rec.LocalPath != "" {
			return courseRelative(course.dir, rec.LocalPath)
		}
	}
	return ""
}

// zoomLinksFor gathers videoconference addresses from the item and from
// the rest of its module.
func zoomLinksFor(course courseState, item *domain.SyncedItem) []string {
	seen := map[string]bool{}
	var out []string

	collect := func(links []domain.ExtractedLink, title string) {
		for _, l := range links {
			if !extract.IsZoomRelated(l, title) {
				continue
			}
			target := l.ResolvedURL
			if target == "" {
				target = l.URL
			}
			if target == "" || seen[target] {
				continue
			}
			seen[target] = true
			out = append(out, target)
		}
	}

	collect(item.Links, item.Title)
	if item.ModuleID != 0 {
		for _, sibling := range sortedItems(course.items) {
			if sibling.ModuleID == item.ModuleID && sibling.ID != item.ID {
				collect(sibling.Links, sibling.Title)
			}
		}
	}
	return out
}

// addResources schedules each material once per week under a stable
// dedup key; repeats within the week overwrite the earlier entry.
func (p *Planner) addResources(resources map[WeekKey]map[string]domain.ScheduledItem, week WeekKey, course courseState, materials []domain.Material) {
	if resources[week] == nil {
		resources[week] = map[string]domain.ScheduledItem{}
	}
	scheduledAt := week.Start(p.loc).Add(9 * time.Hour)

	for _, m := range materials {
		key := resourceKey(course.ref.ID, m)
		resources[week][key] = domain.ScheduledItem{
			ID:               key,
			Kind:             domain.KindResource,
			Title:            m.Title,
			Course:           course.ref,
			Week:             week.String(),
			ScheduledAt:      scheduledAt,
			DirectURL:        m.URL,
			LocalPath:        m.LocalPath,
			ResourceCategory: m.Category,
			Priority:         domain.PriorityLow,
		}
	}
}

// resourceKey builds the dedup identity for a material. File links key on
// the provider file id, everything else with an address keys on a short
// hash of it, and local-only materials key on their path.
func resourceKey(courseID string, m domain.Material) string {
	if fm := linkedFileID.FindStringSubmatch(m.URL); fm != nil {
		return "file_" + courseID + "_" + fm[1]
	}
	if m.URL != "" {
		return "url_" + shortHash(normalizeURL(m.URL))
	}
	return "item_" + courseID + "_" + shortHash(m.LocalPath)
}

// normalizeURL collapses cosmetic address variants so the same resource
// linked with a fragment, a trailing slash, or a differently-cased host
// dedups to one key.
func normalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	if len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return u.String()
}

func shortHash(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	return fmt.Sprintf("%08x", h.Sum32())
}

func kindOf(t domain.ItemType) domain.ItemKind {
	if t == domain.ItemTypeQuiz {
		return domain.KindQuiz
	}
	return domain.KindAssignment
}

// courseRelative keeps paths rooted at the download directory. State
// files already store paths that way; this guards against records that
// were written relative to the course directory.
func courseRelative(courseDir, p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, courseDir+"/") {
		return p
	}
	return path.Join(courseDir, p)
}

func sortedItems(items map[string]*domain.SyncedItem) []*domain.SyncedItem {
	out := make([]*domain.SyncedItem, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
