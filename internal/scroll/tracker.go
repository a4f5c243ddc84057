package scroll

import "math"

// DefaultFilterFactor is the share of the gap to the raw scroll position the
// tracker closes each frame.
const DefaultFilterFactor = 0.1

// Sampler reports the page scroll position. Range is the largest reachable
// offset (document height minus viewport height).
type Sampler interface {
	Offset() float64
	Range() float64
}

// Tracker low-pass filters raw scroll position into progress in [0,1].
type Tracker struct {
	Sampler      Sampler
	FilterFactor float64
	OnProgress   func(progress float64) // optional, called after every Update

	progress float64
}

// NewTracker returns a tracker reading from s. Filter factors outside (0,1]
// fall back to DefaultFilterFactor.
func NewTracker(s Sampler, filter float64) *Tracker {
	if math.IsNaN(filter) || filter <= 0 || filter > 1 {
		filter = DefaultFilterFactor
	}
	return &Tracker{Sampler: s, FilterFactor: filter}
}

// Target returns the unfiltered progress the sampler currently reports.
func (t *Tracker) Target() float64 {
	r := t.Sampler.Range()
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	p := t.Sampler.Offset() / r
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Update samples the scroll position once and returns the filtered progress.
func (t *Tracker) Update() float64 {
	t.progress += (t.Target() - t.progress) * t.FilterFactor
	if t.OnProgress != nil {
		t.OnProgress(t.progress)
	}
	return t.progress
}

// Progress returns the last filtered value.
func (t *Tracker) Progress() float64 { return t.progress }

// Reset jumps the filtered value straight to the current target.
func (t *Tracker) Reset() {
	t.progress = t.Target()
}
