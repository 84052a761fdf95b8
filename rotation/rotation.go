// Package rotation decides when a journal writer should close its
// current segment and start a new one.
package rotation

import "time"

// Information describes the segment currently being written, as seen
// by a Strategy.
type Information struct {
	RecordCount  int
	WorkerID     int
	FirstWritten time.Time
}

// Strategy decides whether the segment described by information should
// be rotated before accepting the next record, observed at now.
type Strategy interface {
	ShouldRotate(information Information, now time.Time) bool
}

// CountStrategy rotates once a segment holds maxRecords records.
type CountStrategy struct {
	maxRecords int
}

// NewCountStrategy builds a Strategy that rotates after maxRecords
// records.
func NewCountStrategy(maxRecords int) CountStrategy {
	return CountStrategy{maxRecords: maxRecords}
}

func (s CountStrategy) ShouldRotate(information Information, _ time.Time) bool {
	return information.RecordCount >= s.maxRecords
}

// TimeStrategy rotates once a segment has been open longer than window.
type TimeStrategy struct {
	window time.Duration
}

// NewTimeStrategy builds a Strategy that rotates after window has
// elapsed since the segment's first record.
func NewTimeStrategy(window time.Duration) TimeStrategy {
	return TimeStrategy{window: window}
}

func (s TimeStrategy) ShouldRotate(information Information, now time.Time) bool {
	if information.FirstWritten.IsZero() {
		return false
	}
	return now.Sub(information.FirstWritten) > s.window
}

// Composite rotates as soon as any of its member strategies would.
type Composite struct {
	strategies []Strategy
}

// NewComposite combines strategies, rotating on the first one that
// agrees.
func NewComposite(strategies ...Strategy) Composite {
	return Composite{strategies: strategies}
}

func (c Composite) ShouldRotate(information Information, now time.Time) bool {
	for _, s := range c.strategies {
		if s.ShouldRotate(information, now) {
			return true
		}
	}
	return false
}
