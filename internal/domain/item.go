package domain

import (
	"fmt"
	"time"
)

// ItemType enumerates every kind of course content unit the syncer tracks.
type ItemType string

const (
	ItemTypeFile         ItemType = "file"
	ItemTypePage         ItemType = "page"
	ItemTypeAssignment   ItemType = "assignment"
	ItemTypeQuiz         ItemType = "quiz"
	ItemTypeModule       ItemType = "module"
	ItemTypeDiscussion   ItemType = "discussion"
	ItemTypeAnnouncement ItemType = "announcement"
	ItemTypeSyllabus     ItemType = "syllabus"
	ItemTypeExternalURL  ItemType = "external_url"
	ItemTypeExternalTool ItemType = "external_tool"
)

// ItemID builds the stable composite key for a content unit,
// e.g. "file_4821" or "assignment_991". nativeID is the provider's own
// identifier; pages use their URL slug since they have no numeric id.
func ItemID(t ItemType, nativeID string) string {
	return fmt.Sprintf("%s_%s", t, nativeID)
}

// LinkCategory classifies an extracted hyperlink.
type LinkCategory string

const (
	LinkCategoryFile     LinkCategory = "file"
	LinkCategoryVideo    LinkCategory = "video"
	LinkCategoryInternal LinkCategory = "internal"
	LinkCategoryExternal LinkCategory = "external"
	LinkCategoryOther    LinkCategory = "other"
)

// ExtractedLink is one hyperlink pulled out of a rich-text body.
// URL is the absolute form of the original address; ResolvedURL is the
// best-effort unwrapped external target when the address was a
// provider-hosted redirect wrapper (equal to URL otherwise).
type ExtractedLink struct {
	URL         string       `json:"url"`
	ResolvedURL string       `json:"resolved_url"`
	Text        string       `json:"text,omitempty"`
	Title       string       `json:"title,omitempty"`
	Category    LinkCategory `json:"category"`
}

// SyncedItem is one record per content unit ever seen for a course.
// Field names in JSON match the persisted state schema.
type SyncedItem struct {
	ID            string          `json:"item_id"`
	Type          ItemType        `json:"item_type"`
	Title         string          `json:"title"`
	VersionMarker string          `json:"updated_at"`
	LocalPath     string          `json:"file_path,omitempty"`
	SourceURL     string          `json:"source_url,omitempty"`
	DueAt         string          `json:"due_at,omitempty"`
	ModuleID      int64           `json:"module_id,omitempty"`
	ModuleName    string          `json:"module_name,omitempty"`
	ModuleUnlock  string          `json:"module_unlock_at,omitempty"`
	FileSize      int64           `json:"file_size,omitempty"`
	Links         []ExtractedLink `json:"links,omitempty"`
	SyncedAt      time.Time       `json:"synced_at"`
}

// SyncState is the whole persisted tracking document for one course.
type SyncState struct {
	LastSync time.Time              `json:"last_sync"`
	Items    map[string]*SyncedItem `json:"items"`
}

// NewSyncState returns an empty state ready for use.
func NewSyncState() *SyncState {
	return &SyncState{Items: make(map[string]*SyncedItem)}
}

// Course identifies one enrolled course.
type Course struct {
	ID   int64
	Name string
	Code string
}
