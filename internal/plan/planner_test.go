package plan

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvas_sync/internal/config"
	"canvas_sync/internal/domain"
)

func testPlanner(t *testing.T, fs afero.Fs) *Planner {
	t.Helper()
	p := NewPlanner(fs, config.PlanConfig{
		Timezone:            "UTC",
		OutputDir:           "_weekly",
		AssignmentPrepDays:  3,
		QuizPrepDays:        2,
		MaxInstructionChars: 1000,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.now = func() time.Time { return time.Date(2026, 1, 28, 12, 0, 0, 0, time.UTC) }
	return p
}

func writeState(t *testing.T, fs afero.Fs, courseDir string, items map[string]*domain.SyncedItem) {
	t.Helper()
	data, err := json.Marshal(domain.SyncState{LastSync: time.Now(), Items: items})
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(courseDir, 0o755))
	require.NoError(t, afero.WriteFile(fs, courseDir+"/_sync_state.json", data, 0o644))
}

func fixtureState() map[string]*domain.SyncedItem {
	return map[string]*domain.SyncedItem{
		"assignment_7": {
			ID:            "assignment_7",
			Type:          domain.ItemTypeAssignment,
			Title:         "Essay One",
			DueAt:         "2026-01-28T23:59:00Z",
			SourceURL:     "https://canvas.test/courses/1/assignments/7",
			LocalPath:     "Biology 101/assignments/Essay One.txt",
			ModuleID:      3,
			VersionMarker: "v1",
			Links: []domain.ExtractedLink{
				{
					URL:         "https://canvas.test/courses/1/files/42",
					ResolvedURL: "https://canvas.test/courses/1/files/42",
					Text:        "Slides",
					Category:    domain.LinkCategoryFile,
				},
				// The item's own address never becomes a material.
				{
					URL:         "https://canvas.test/courses/1/assignments/7",
					ResolvedURL: "https://canvas.test/courses/1/assignments/7",
					Category:    domain.LinkCategoryInternal,
				},
			},
		},
		"linked_file_42": {
			ID:        "linked_file_42",
			Type:      domain.ItemTypeFile,
			Title:     "Slides",
			LocalPath: "Biology 101/assignments/slides.pdf",
		},
		"page_zoom-info": {
			ID:        "page_zoom-info",
			Type:      domain.ItemTypePage,
			Title:     "Zoom Info",
			ModuleID:  3,
			LocalPath: "Biology 101/modules/Week 5/Zoom Info.txt",
			Links: []domain.ExtractedLink{
				{
					URL:         "https://us02web.zoom.us/j/99",
					ResolvedURL: "https://us02web.zoom.us/j/99",
					Text:        "Join class",
					Category:    domain.LinkCategoryExternal,
				},
			},
		},
		"quiz_9": {
			ID:        "quiz_9",
			Type:      domain.ItemTypeQuiz,
			Title:     "Quiz 2",
			LocalPath: "Biology 101/quizzes/Quiz 2.txt",
		},
		"assignment_8": {
			ID:    "assignment_8",
			Type:  domain.ItemTypeAssignment,
			Title: "Undated Homework",
		},
		"assignment_99": {
			ID:    "assignment_99",
			Type:  domain.ItemTypeAssignment,
			Title: "Final Project",
			DueAt: "2026-03-11T23:59:00Z",
		},
	}
}

func setupFixture(t *testing.T) (*Planner, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeState(t, fs, "Biology 101", fixtureState())
	// The quiz states its deadline only inside the rendered artifact.
	require.NoError(t, fs.MkdirAll("Biology 101/quizzes", 0o755))
	require.NoError(t, afero.WriteFile(fs, "Biology 101/quizzes/Quiz 2.txt",
		[]byte("QUIZ: Quiz 2\nDue: 2026-01-30\nSome instructions\n"), 0o644))
	return testPlanner(t, fs), fs
}

func bundleFor(t *testing.T, result *Result, key string) domain.WeekBundle {
	t.Helper()
	for _, b := range result.Weeks {
		if b.Week.Key == key {
			return b
		}
	}
	t.Fatalf("no bundle for week %s", key)
	return domain.WeekBundle{}
}

func itemByID(items []domain.ScheduledItem, id string) *domain.ScheduledItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func TestPlan_SchedulesTasksAndPrep(t *testing.T) {
	p, _ := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)

	// Assignment due Wed Jan 28 lands in W05; its prep lands 3 days
	// earlier, in W04.
	w05 := bundleFor(t, result, "2026-W05")
	task := itemByID(w05.Items, "task_Biology 101_assignment_7")
	require.NotNil(t, task)
	assert.Equal(t, domain.KindAssignment, task.Kind)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, []string{"https://us02web.zoom.us/j/99"}, task.ZoomLinks)

	w04 := bundleFor(t, result, "2026-W04")
	prep := itemByID(w04.Items, "prep_Biology 101_assignment_7")
	require.NotNil(t, prep)
	assert.Equal(t, domain.KindPrep, prep.Kind)
	assert.Equal(t, domain.PriorityHigh, prep.Priority)
	assert.Equal(t, task.DueAt, prep.DueAt)
}

func TestPlan_BackfillsDueFromArtifact(t *testing.T) {
	p, _ := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)

	// Quiz due Fri Jan 30, found via the artifact's Due: line. Prep is 2
	// days earlier, still W05.
	w05 := bundleFor(t, result, "2026-W05")
	task := itemByID(w05.Items, "task_Biology 101_quiz_9")
	require.NotNil(t, task)
	assert.Equal(t, domain.KindQuiz, task.Kind)
	assert.Equal(t, "2026-01-30T00:00:00Z", task.DueAt)

	prep := itemByID(w05.Items, "prep_Biology 101_quiz_9")
	require.NotNil(t, prep)
	assert.Equal(t, "Review materials for: Quiz 2", prep.Title)
}

func TestPlan_MaterialsExcludeSelfAndMapLinkedFiles(t *testing.T) {
	p, _ := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)

	w05 := bundleFor(t, result, "2026-W05")
	task := itemByID(w05.Items, "task_Biology 101_assignment_7")
	require.NotNil(t, task)

	var titles []string
	for _, m := range task.Materials {
		titles = append(titles, m.Title)
		assert.NotEqual(t, task.DirectURL, m.URL)
	}
	assert.Contains(t, titles, "Slides")
	assert.Contains(t, titles, "Zoom Info")

	slides := task.Materials[0]
	for _, m := range task.Materials {
		if m.Title == "Slides" {
			slides = m
		}
	}
	assert.Equal(t, "Biology 101/assignments/slides.pdf", slides.LocalPath)
}

func TestPlan_ResourcesAnchoredToTaskHomeWeek(t *testing.T) {
	p, _ := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)

	// The assignment is due in W05, so its materials belong to W05 at
	// Monday 09:00, even though the prep task crossed back into W04.
	w05 := bundleFor(t, result, "2026-W05")
	res := itemByID(w05.Items, "file_Biology 101_42")
	require.NotNil(t, res)
	assert.Equal(t, domain.KindResource, res.Kind)
	assert.Equal(t, time.Date(2026, 1, 26, 9, 0, 0, 0, time.UTC), res.ScheduledAt)
	assert.Equal(t, domain.PriorityLow, res.Priority)

	w04 := bundleFor(t, result, "2026-W04")
	assert.Nil(t, itemByID(w04.Items, "file_Biology 101_42"))
}

func TestPlan_UndatedItemsGoUnscheduled(t *testing.T) {
	p, _ := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)

	require.Len(t, result.Unscheduled, 1)
	assert.Equal(t, "Undated Homework", result.Unscheduled[0].Title)
	assert.Equal(t, domain.PriorityMedium, result.Unscheduled[0].Priority)
}

func TestPlan_NoCoursesIsAnError(t *testing.T) {
	p := testPlanner(t, afero.NewMemMapFs())

	_, err := p.Plan()
	assert.Error(t, err)
}

func TestWrite_SkipsFutureWeeksButKeepsAudit(t *testing.T) {
	p, fs := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)
	require.NoError(t, p.Write(result))

	// Started weeks are materialized.
	for _, dir := range []string{"_weekly/2026-W04_2026-01-19", "_weekly/2026-W05_2026-01-26"} {
		ok, _ := afero.Exists(fs, dir+"/week.json")
		assert.True(t, ok, dir)
	}

	// The Final Project week (March) has not started yet.
	entries, err := afero.ReadDir(fs, "_weekly")
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), "2026-W11")
	}

	data, err := afero.ReadFile(fs, "_weekly/all_items.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Final Project")

	data, err = afero.ReadFile(fs, "_weekly/unscheduled.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Undated Homework")
}

func TestWrite_IndexCountsItemsPerWeek(t *testing.T) {
	p, fs := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)
	require.NoError(t, p.Write(result))

	data, err := afero.ReadFile(fs, "_weekly/index.json")
	require.NoError(t, err)

	var index []indexEntry
	require.NoError(t, json.Unmarshal(data, &index))
	require.Len(t, index, 2)

	counts := map[string]int{}
	for _, e := range index {
		counts[e.Week.Key] = e.ItemCount
	}
	assert.Equal(t, len(bundleFor(t, result, "2026-W04").Items), counts["2026-W04"])
	assert.Equal(t, len(bundleFor(t, result, "2026-W05").Items), counts["2026-W05"])
	assert.Positive(t, counts["2026-W05"])
}

func TestResourceKeyIgnoresAddressVariants(t *testing.T) {
	base := resourceKey("Biology 101", domain.Material{URL: "https://us02web.zoom.us/j/99"})

	variants := []string{
		"https://US02Web.Zoom.US/j/99",
		"https://us02web.zoom.us/j/99/",
		"https://us02web.zoom.us/j/99#join",
	}
	for _, v := range variants {
		assert.Equal(t, base, resourceKey("Biology 101", domain.Material{URL: v}), v)
	}

	other := resourceKey("Biology 101", domain.Material{URL: "https://us02web.zoom.us/j/100"})
	assert.NotEqual(t, base, other)
}

func TestWrite_EmitsTaskDocuments(t *testing.T) {
	p, fs := setupFixture(t)

	result, err := p.Plan()
	require.NoError(t, err)
	require.NoError(t, p.Write(result))

	doc, err := afero.ReadFile(fs, "_weekly/2026-W05_2026-01-26/tasks/Biology 101/Quiz 2.txt")
	require.NoError(t, err)
	assert.Contains(t, string(doc), "QUIZ: Quiz 2")
	assert.Contains(t, string(doc), "Some instructions")
}
