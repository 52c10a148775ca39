// Package plan turns synced course state into weekly study bundles.
// It reads only local state files; it never talks to the provider.
package plan

import (
	"fmt"
	"time"

	"canvas_sync/internal/domain"
)

// WeekKey identifies an ISO-8601 week.
type WeekKey struct {
	Year int
	Week int
}

// KeyOf returns the ISO week containing t.
func KeyOf(t time.Time) WeekKey {
	y, w := t.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// Start returns the Monday opening this ISO week, at midnight in loc.
// January 4 is always inside week 1, which anchors the offset.
func (k WeekKey) Start(loc *time.Location) time.Time {
	jan4 := time.Date(k.Year, time.January, 4, 0, 0, 0, 0, loc)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (k.Week-1)*7)
}

// End returns the Sunday closing this ISO week, at midnight in loc.
func (k WeekKey) End(loc *time.Location) time.Time {
	return k.Start(loc).AddDate(0, 0, 6)
}

// Before orders week keys chronologically.
func (k WeekKey) Before(other WeekKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Week < other.Week
}

// Info renders the bundle-facing week descriptor.
func (k WeekKey) Info(loc *time.Location) domain.WeekInfo {
	return domain.WeekInfo{
		Key:       k.String(),
		StartDate: k.Start(loc).Format("2006-01-02"),
		EndDate:   k.End(loc).Format("2006-01-02"),
	}
}
