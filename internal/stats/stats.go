// Package stats accumulates counters over one search run.
package stats

import (
	"fmt"
	"time"
)

// Orientation names which strand of the query produced an alignment.
type Orientation string

const (
	Forward           Orientation = "forward"
	ReverseComplement Orientation = "reverse_complement"
)

// RunStats tracks reads processed, rows written and the best hit seen so
// far. Emitted is incremented by the caller for every row it writes, since
// a score threshold may suppress some of them.
type RunStats struct {
	Reads           int
	Skipped         int
	Emitted         int
	BestScore       int64
	BestReadID      string
	BestOrientation Orientation

	scoreSum   int64
	qualitySum float64
	started    time.Time
}

// NewRunStats returns a fresh accumulator with the clock started.
func NewRunStats() *RunStats {
	return &RunStats{started: time.Now()}
}

// Record notes the forward and reverse complement scores for one read. Ties
// between the two orientations count as forward, matching the order rows
// are written in.
func (s *RunStats) Record(readID string, forward, reverse int64, meanQuality float64) {
	s.Reads++

	best := forward
	orientation := Forward
	if reverse > forward {
		best = reverse
		orientation = ReverseComplement
	}

	if s.Reads == 1 || best > s.BestScore {
		s.BestScore = best
		s.BestReadID = readID
		s.BestOrientation = orientation
	}

	s.scoreSum += best
	s.qualitySum += meanQuality
}

// Skip notes a malformed record that was not aligned.
func (s *RunStats) Skip() {
	s.Skipped++
}

// MeanBestScore returns the mean of the per-read best scores.
func (s *RunStats) MeanBestScore() float64 {
	if s.Reads == 0 {
		return 0.0
	}
	return float64(s.scoreSum) / float64(s.Reads)
}

// MeanQuality returns the mean of the per-read mean base qualities.
func (s *RunStats) MeanQuality() float64 {
	if s.Reads == 0 {
		return 0.0
	}
	return s.qualitySum / float64(s.Reads)
}

// Elapsed returns the time since the accumulator was created.
func (s *RunStats) Elapsed() time.Duration {
	return time.Since(s.started)
}

func (s *RunStats) String() string {
	best := "n/a"
	if s.Reads > 0 {
		best = fmt.Sprintf("%d (%s, %s)", s.BestScore, s.BestReadID, s.BestOrientation)
	}

	return fmt.Sprintf(`RunStats {
  reads: %d
  skipped: %d
  rows written: %d
  best score: %s
  mean best score: %.1f
  mean read quality: %.1f
}`, s.Reads, s.Skipped, s.Emitted, best, s.MeanBestScore(), s.MeanQuality())
}
