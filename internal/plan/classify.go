package plan

import (
	"regexp"
	"strings"

	"canvas_sync/internal/domain"
)

var (
	readingPattern       = regexp.MustCompile(`(?i)\b(read(ing)?s?|chapters?|ch\.|pp\.)`)
	participationPattern = regexp.MustCompile(`(?i)(participation|attendance|check-?in)`)
)

var videoExtensions = []string{".mp4", ".mov", ".m4v", ".avi", ".mkv", ".webm"}

// Classify assigns a resource category from the title and location of a
// material. fallback applies when no heuristic matches.
func Classify(title, pathOrURL string, fallback domain.ResourceCategory) domain.ResourceCategory {
	lowerTitle := strings.ToLower(title)
	lowerPath := strings.ToLower(pathOrURL)

	if strings.Contains(lowerTitle, "recording") || strings.Contains(lowerTitle, "zoom") {
		return domain.ResourceRecording
	}
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return domain.ResourceVideo
		}
	}
	if readingPattern.MatchString(title) {
		return domain.ResourceReading
	}
	return fallback
}

// TaskPriority rates a graded item. Participation-style items are
// downgraded to medium; everything else with a due date is high.
func TaskPriority(title string, hasDue bool) domain.Priority {
	if participationPattern.MatchString(title) {
		return domain.PriorityMedium
	}
	if hasDue {
		return domain.PriorityHigh
	}
	return domain.PriorityMedium
}

// PrepTitle names the preparation task for a graded item based on what
// its materials suggest doing.
func PrepTitle(itemTitle string, materials []domain.Material) string {
	var hasRecording, hasVideo, hasReading, hasSlides bool
	for _, m := range materials {
		switch m.Category {
		case domain.ResourceRecording:
			hasRecording = true
		case domain.ResourceVideo:
			hasVideo = true
		case domain.ResourceReading:
			hasReading = true
		}
		lower := strings.ToLower(m.Title + " " + m.LocalPath)
		if strings.Contains(lower, ".ppt") || strings.Contains(lower, "slide") {
			hasSlides = true
		}
	}

	switch {
	case hasRecording:
		return "Watch recording for: " + itemTitle
	case hasVideo:
		return "Watch video for: " + itemTitle
	case hasReading:
		return "Do reading for: " + itemTitle
	case hasSlides:
		return "Review slides for: " + itemTitle
	default:
		return "Review materials for: " + itemTitle
	}
}
