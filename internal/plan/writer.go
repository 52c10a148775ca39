package plan

import (
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/spf13/afero"

	"canvas_sync/internal/domain"
	"canvas_sync/internal/storage/artifact"
)

// indexEntry is one materialized week in index.json.
type indexEntry struct {
	Week      domain.WeekInfo `json:"week"`
	ItemCount int             `json:"item_count"`
}

// Write renders the plan under the configured output directory. Weeks
// that have not started yet are kept out of the week bundles but remain
// in the all-items audit file, so a later run picks them up without
// recomputation being lost.
func (p *Planner) Write(result *Result) error {
	outDir := p.cfg.OutputDir
	if err := p.fs.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	today := p.now().In(p.loc)
	var index []indexEntry
	var written int

	for _, bundle := range result.Weeks {
		start, err := time.ParseInLocation("2006-01-02", bundle.Week.StartDate, p.loc)
		if err != nil {
			return fmt.Errorf("parse week start %q: %w", bundle.Week.StartDate, err)
		}
		if start.After(today) {
			p.logger.Debug("skipping future week", "week", bundle.Week.Key)
			continue
		}

		weekDir := path.Join(outDir, bundle.Week.Key+"_"+bundle.Week.StartDate)
		if err := p.writeJSON(path.Join(weekDir, "week.json"), bundle); err != nil {
			return err
		}
		if err := p.writeTasks(weekDir, bundle.Items); err != nil {
			return err
		}

		index = append(index, indexEntry{Week: bundle.Week, ItemCount: len(bundle.Items)})
		written++
	}

	if err := p.writeJSON(path.Join(outDir, "index.json"), index); err != nil {
		return err
	}
	if err := p.writeJSON(path.Join(outDir, "all_items.json"), result.Weeks); err != nil {
		return err
	}
	if err := p.writeJSON(path.Join(outDir, "unscheduled.json"), result.Unscheduled); err != nil {
		return err
	}

	p.logger.Info("plan written", "output_dir", outDir, "weeks", written)
	return nil
}

// writeTasks emits one text document per task, grouped by course.
func (p *Planner) writeTasks(weekDir string, items []domain.ScheduledItem) error {
	for _, item := range items {
		if item.Kind == domain.KindResource {
			continue
		}

		instructions := ""
		if item.LocalPath != "" {
			if data, err := afero.ReadFile(p.fs, item.LocalPath); err == nil {
				instructions = truncate(string(data), p.cfg.MaxInstructionChars)
			}
		}

		taskPath := path.Join(weekDir, "tasks",
			artifact.Sanitize(item.Course.Name),
			artifact.Sanitize(item.Title)+".txt")
		if err := p.fs.MkdirAll(path.Dir(taskPath), 0o755); err != nil {
			return fmt.Errorf("create task dir: %w", err)
		}
		if err := afero.WriteFile(p.fs, taskPath, []byte(renderTask(item, instructions)), 0o644); err != nil {
			return fmt.Errorf("write task %s: %w", taskPath, err)
		}
	}
	return nil
}

func (p *Planner) writeJSON(relPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", relPath, err)
	}
	if err := p.fs.MkdirAll(path.Dir(relPath), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", relPath, err)
	}
	if err := afero.WriteFile(p.fs, relPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}
