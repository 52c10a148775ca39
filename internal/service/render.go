package service

import (
	"fmt"
	"strings"

	"canvas_sync/internal/domain"
	"canvas_sync/internal/extract"
	"canvas_sync/internal/source/canvas"
)

// Plain-text artifact rendering. Every document opens with a typed
// header line under a rule so downstream text tooling can tell artifact
// kinds apart without parsing JSON.

const (
	headerRule  = "============================================================"
	sectionRule = "----------------------------------------"
)

type renderedQuestion struct {
	text    string
	answers []string
}

func renderPage(title string, content extract.Content) string {
	var b strings.Builder
	writeHeader(&b, "PAGE", title)
	b.WriteString(content.Text)
	b.WriteString("\n")
	writeLinks(&b, "PAGE", content.Links)
	return b.String()
}

func renderAssignment(a *canvas.Assignment, directURL string, content extract.Content) string {
	var b strings.Builder
	writeHeader(&b, "ASSIGNMENT", a.Name)
	if a.DueAt != "" {
		fmt.Fprintf(&b, "Due: %s\n", a.DueAt)
	}
	if a.PointsPossible > 0 {
		fmt.Fprintf(&b, "Points: %g\n", a.PointsPossible)
	}
	if len(a.SubmissionTypes) > 0 {
		fmt.Fprintf(&b, "Submission: %s\n", strings.Join(a.SubmissionTypes, ", "))
	}
	fmt.Fprintf(&b, "Direct URL: %s\n\n", directURL)
	b.WriteString(content.Text)
	b.WriteString("\n")
	writeLinks(&b, "ASSIGNMENT", content.Links)
	return b.String()
}

func renderQuiz(q *canvas.Quiz, directURL string, content extract.Content, questions []renderedQuestion, links []domain.ExtractedLink) string {
	var b strings.Builder
	writeHeader(&b, "QUIZ", q.Title)
	if q.DueAt != "" {
		fmt.Fprintf(&b, "Due: %s\n", q.DueAt)
	}
	if q.PointsPossible > 0 {
		fmt.Fprintf(&b, "Points: %g\n", q.PointsPossible)
	}
	if q.TimeLimit > 0 {
		fmt.Fprintf(&b, "Time limit: %g minutes\n", q.TimeLimit)
	}
	if q.QuestionCount > 0 {
		fmt.Fprintf(&b, "Questions: %d\n", q.QuestionCount)
	}
	fmt.Fprintf(&b, "Direct URL: %s\n\n", directURL)
	b.WriteString(content.Text)
	b.WriteString("\n")

	if len(questions) > 0 {
		b.WriteString("\nQUESTIONS:\n")
		b.WriteString(sectionRule)
		b.WriteString("\n")
		for i, question := range questions {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, question.text)
			for _, ans := range question.answers {
				fmt.Fprintf(&b, "   - %s\n", ans)
			}
		}
	}

	writeLinks(&b, "QUIZ", links)
	return b.String()
}

func renderDiscussion(d *canvas.Discussion, typ domain.ItemType, content extract.Content) string {
	kind := "DISCUSSION"
	if typ == domain.ItemTypeAnnouncement {
		kind = "ANNOUNCEMENT"
	}
	var b strings.Builder
	writeHeader(&b, kind, d.Title)
	if d.PostedAt != "" {
		fmt.Fprintf(&b, "Posted: %s\n\n", d.PostedAt)
	}
	b.WriteString(content.Text)
	b.WriteString("\n")
	writeLinks(&b, kind, content.Links)
	return b.String()
}

func renderSyllabus(courseName string, content extract.Content) string {
	var b strings.Builder
	writeHeader(&b, "SYLLABUS", courseName)
	b.WriteString(content.Text)
	b.WriteString("\n")
	writeLinks(&b, "SYLLABUS", content.Links)
	return b.String()
}

func renderLockedModule(m canvas.Module, moduleURL string) string {
	var b strings.Builder
	writeHeader(&b, "MODULE (LOCKED)", m.Name)
	if m.UnlockAt != "" {
		fmt.Fprintf(&b, "Unlocks at: %s\n", m.UnlockAt)
	}
	fmt.Fprintf(&b, "Module URL: %s\n\n", moduleURL)
	b.WriteString("This module is not yet available. Its contents will be synced\nautomatically once it unlocks.\n")
	return b.String()
}

func writeHeader(b *strings.Builder, kind, title string) {
	fmt.Fprintf(b, "%s: %s\n%s\n", kind, title, headerRule)
}

func writeLinks(b *strings.Builder, kind string, links []domain.ExtractedLink) {
	if len(links) == 0 {
		return
	}
	fmt.Fprintf(b, "\nLINKS FOUND IN THIS %s:\n%s\n", kind, sectionRule)
	for _, l := range links {
		label := strings.ToUpper(string(l.Category))
		target := l.ResolvedURL
		if target == "" {
			target = l.URL
		}
		text := strings.TrimSpace(l.Text)
		if text != "" {
			fmt.Fprintf(b, "  %s: %s (%s)\n", label, target, text)
		} else {
			fmt.Fprintf(b, "  %s: %s\n", label, target)
		}
	}
}
