// Package manifest publishes per-course JSON and text summaries next to
// the synced artifacts so downstream tooling can consume a course without
// walking its directory tree.
package manifest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"canvas_sync/internal/domain"
	"canvas_sync/internal/storage/artifact"
)

const (
	ManifestFileName = "_manifest.json"
	LinksFileName    = "_all_links.json"
	LinksTextName    = "_all_links.txt"
)

type courseSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
	URL  string `json:"url"`
}

type courseManifest struct {
	Course    courseSummary        `json:"course"`
	SyncedAt  time.Time            `json:"synced_at"`
	ItemCount int                  `json:"item_count"`
	Items     []*domain.SyncedItem `json:"items"`
}

type linkRecord struct {
	ItemID    string          `json:"item_id"`
	ItemTitle string          `json:"item_title"`
	ItemType  domain.ItemType `json:"item_type"`
	domain.ExtractedLink
}

// Writer renders course manifests through the artifact store so every
// output lands under the same rooted filesystem as the synced content.
type Writer struct {
	store  *artifact.Store
	base   string
	logger *slog.Logger
}

func NewWriter(store *artifact.Store, baseURL string, logger *slog.Logger) *Writer {
	return &Writer{store: store, base: strings.TrimRight(baseURL, "/"), logger: logger}
}

// WriteCourse writes the manifest and both link digests for one course.
func (w *Writer) WriteCourse(course domain.Course, courseDir string, lastSync time.Time, items map[string]*domain.SyncedItem) error {
	sorted := make([]*domain.SyncedItem, 0, len(items))
	for _, item := range items {
		sorted = append(sorted, item)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	m := courseManifest{
		Course: courseSummary{
			ID:   course.ID,
			Name: course.Name,
			Code: course.Code,
			URL:  fmt.Sprintf("%s/courses/%d", w.base, course.ID),
		},
		SyncedAt:  lastSync,
		ItemCount: len(sorted),
		Items:     sorted,
	}
	if err := w.writeJSON(path.Join(courseDir, ManifestFileName), m); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	links := collectLinks(sorted)
	if err := w.writeJSON(path.Join(courseDir, LinksFileName), links); err != nil {
		return fmt.Errorf("write links: %w", err)
	}
	if err := w.store.WriteText(path.Join(courseDir, LinksTextName), renderLinksText(course.Name, links)); err != nil {
		return fmt.Errorf("write links text: %w", err)
	}

	w.logger.Debug("manifest written", "course", course.Name, "items", len(sorted), "links", len(links))
	return nil
}

func (w *Writer) writeJSON(relPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return w.store.WriteBytes(relPath, append(data, '\n'))
}

func collectLinks(items []*domain.SyncedItem) []linkRecord {
	var out []linkRecord
	for _, item := range items {
		for _, l := range item.Links {
			out = append(out, linkRecord{
				ItemID:        item.ID,
				ItemTitle:     item.Title,
				ItemType:      item.Type,
				ExtractedLink: l,
			})
		}
	}
	return out
}

// renderLinksText groups links by category for human review.
func renderLinksText(courseName string, links []linkRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ALL LINKS: %s\n", courseName)
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")

	byCat := map[domain.LinkCategory][]linkRecord{}
	for _, l := range links {
		byCat[l.Category] = append(byCat[l.Category], l)
	}

	order := []domain.LinkCategory{
		domain.LinkCategoryFile,
		domain.LinkCategoryVideo,
		domain.LinkCategoryExternal,
		domain.LinkCategoryInternal,
		domain.LinkCategoryOther,
	}
	for _, cat := range order {
		group := byCat[cat]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d)\n%s\n", strings.ToUpper(string(cat)), len(group), strings.Repeat("-", 40))
		for _, l := range group {
			target := l.ResolvedURL
			if target == "" {
				target = l.URL
			}
			fmt.Fprintf(&b, "  %s\n    from: %s\n", target, l.ItemTitle)
		}
	}
	return b.String()
}
