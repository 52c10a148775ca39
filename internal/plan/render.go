package plan

import (
	"fmt"
	"strings"

	"canvas_sync/internal/domain"
)

// renderTask produces the per-task text document placed beside the week
// bundle. instructions is the synced artifact body, already truncated.
func renderTask(item domain.ScheduledItem, instructions string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(item.Kind)), item.Title)
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Course: %s\n", item.Course.Name)
	if item.DueAt != "" {
		fmt.Fprintf(&b, "Due: %s\n", item.DueAt)
	}
	if item.DirectURL != "" {
		fmt.Fprintf(&b, "Direct URL: %s\n", item.DirectURL)
	}

	if len(item.ZoomLinks) > 0 {
		b.WriteString("\nZOOM LINKS:\n")
		for _, z := range item.ZoomLinks {
			fmt.Fprintf(&b, "  %s\n", z)
		}
	}

	if len(item.Materials) > 0 {
		b.WriteString("\nMATERIALS:\n")
		for _, m := range item.Materials {
			loc := m.LocalPath
			if loc == "" {
				loc = m.URL
			}
			fmt.Fprintf(&b, "  [%s] %s\n    %s\n", m.Category, m.Title, loc)
		}
	}

	if instructions != "" {
		b.WriteString("\nINSTRUCTIONS:\n")
		b.WriteString(strings.Repeat("-", 40))
		b.WriteString("\n")
		b.WriteString(instructions)
		b.WriteString("\n")
	}

	return b.String()
}

// truncate cuts s at max runes, appending a marker when anything was cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "\n[truncated]"
}
