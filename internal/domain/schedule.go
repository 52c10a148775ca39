package domain

import "time"

// ItemKind tags a ScheduledItem variant.
type ItemKind string

const (
	KindAssignment ItemKind = "assignment"
	KindQuiz       ItemKind = "quiz"
	KindPrep       ItemKind = "prep"
	KindResource   ItemKind = "resource"
)

// Priority is a coarse hint for downstream consumers, not a hard ordering.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ResourceCategory classifies a study material by filename/title heuristics.
type ResourceCategory string

const (
	ResourceReading    ResourceCategory = "reading"
	ResourceVideo      ResourceCategory = "video"
	ResourceRecording  ResourceCategory = "recording"
	ResourceModuleItem ResourceCategory = "module_item"
	ResourceFile       ResourceCategory = "file"
	ResourceExternal   ResourceCategory = "external"
)

// CourseRef is the compact course identity embedded in plan output.
type CourseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Material is one study resource attached to a task.
type Material struct {
	Title     string           `json:"title"`
	URL       string           `json:"url,omitempty"`
	LocalPath string           `json:"local_relative_path,omitempty"`
	Category  ResourceCategory `json:"category"`
}

// ScheduledItem is one entry in a week bundle: either a task
// (assignment, quiz, prep) or a resource. ID doubles as the dedup key
// for resources; within one bundle ids are unique by construction.
type ScheduledItem struct {
	ID               string           `json:"id"`
	Kind             ItemKind         `json:"kind"`
	Title            string           `json:"title"`
	Course           CourseRef        `json:"course"`
	Week             string           `json:"week"`
	ScheduledAt      time.Time        `json:"scheduled_at_local"`
	DueAt            string           `json:"due_at,omitempty"`
	DirectURL        string           `json:"direct_url,omitempty"`
	LocalPath        string           `json:"local_relative_path,omitempty"`
	ResourceCategory ResourceCategory `json:"resource_category,omitempty"`
	Materials        []Material       `json:"materials,omitempty"`
	ZoomLinks        []string         `json:"zoom_links,omitempty"`
	Priority         Priority         `json:"priority"`
}

// WeekInfo describes a week bundle's identity and bounds. Start and End
// are dates (YYYY-MM-DD) in the local timezone; weeks start Monday.
type WeekInfo struct {
	Key       string `json:"key"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// WeekBundle groups the scheduled items of one ISO week.
type WeekBundle struct {
	Week  WeekInfo        `json:"week"`
	Items []ScheduledItem `json:"items"`
}
