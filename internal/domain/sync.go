package domain

import "time"

// SyncStats holds statistics about one course's sync run.
type SyncStats struct {
	Course   string
	New      int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Add folds another stats value into the receiver.
func (s *SyncStats) Add(other *SyncStats) {
	s.New += other.New
	s.Updated += other.Updated
	s.Skipped += other.Skipped
	s.Errors += other.Errors
}
