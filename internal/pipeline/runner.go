// Package pipeline drives one sync pass across all enrolled courses.
// Each course runs under its own timeout and a course failure never
// stops the pass.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"canvas_sync/internal/domain"
)

// CourseSyncer is the per-course sync surface the runner drives.
type CourseSyncer interface {
	Courses(ctx context.Context) ([]domain.Course, error)
	SyncCourse(ctx context.Context, course domain.Course) (*domain.SyncStats, error)
}

type Runner struct {
	syncer        CourseSyncer
	courseFilter  string
	courseTimeout time.Duration
	logger        *slog.Logger
}

// NewRunner builds a Runner. An empty courseFilter syncs every course;
// otherwise only courses whose name contains the filter run.
func NewRunner(syncer CourseSyncer, courseFilter string, courseTimeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		syncer:        syncer,
		courseFilter:  courseFilter,
		courseTimeout: courseTimeout,
		logger:        logger,
	}
}

// Run performs one pass over the matching courses and returns the
// aggregate statistics. It fails outright only when the course list
// itself cannot be fetched.
func (r *Runner) Run(ctx context.Context) (*domain.SyncStats, error) {
	start := time.Now()

	courses, err := r.syncer.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	courses = r.filter(courses)
	if len(courses) == 0 {
		return nil, fmt.Errorf("no courses matched filter %q", r.courseFilter)
	}

	r.logger.Info("sync pass starting", "courses", len(courses))

	total := &domain.SyncStats{}
	for _, course := range courses {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		stats, err := r.syncCourse(ctx, course)
		if stats != nil {
			total.Add(stats)
		}
		if err != nil {
			total.Errors++
			r.logger.Error("course sync failed", "course", course.Name, "error", err)
		}
	}

	total.Duration = time.Since(start)
	r.logger.Info("sync pass completed",
		"new", total.New,
		"updated", total.Updated,
		"skipped", total.Skipped,
		"errors", total.Errors,
		"duration", total.Duration,
	)
	return total, nil
}

func (r *Runner) syncCourse(ctx context.Context, course domain.Course) (*domain.SyncStats, error) {
	courseCtx := ctx
	if r.courseTimeout > 0 {
		var cancel context.CancelFunc
		courseCtx, cancel = context.WithTimeout(ctx, r.courseTimeout)
		defer cancel()
	}
	return r.syncer.SyncCourse(courseCtx, course)
}

func (r *Runner) filter(courses []domain.Course) []domain.Course {
	if r.courseFilter == "" {
		return courses
	}
	needle := strings.ToLower(r.courseFilter)
	var out []domain.Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Code), needle) {
			out = append(out, c)
		}
	}
	return out
}
