package scroll

import (
	"fmt"
	"sort"
)

// Stop pins the scroll offset at a frame index.
type Stop struct {
	Frame  int
	Offset float64
}

// Script is a Sampler that replays scroll offsets for a headless host.
// Between stops the offset moves linearly; a stop sharing its frame with
// the previous one is an instant jump.
type Script struct {
	stops []Stop
	rng   float64
	frame int
}

// NewScript validates and sorts stops. Offsets must lie in [0, rng].
func NewScript(rng float64, stops []Stop) (*Script, error) {
	if rng <= 0 {
		return nil, fmt.Errorf("scroll range must be positive, got %v", rng)
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("scroll script needs at least one stop")
	}
	sorted := append([]Stop(nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })
	for _, s := range sorted {
		if s.Frame < 0 {
			return nil, fmt.Errorf("stop frame %d is negative", s.Frame)
		}
		if s.Offset < 0 || s.Offset > rng {
			return nil, fmt.Errorf("stop offset %v outside [0, %v]", s.Offset, rng)
		}
	}
	return &Script{stops: sorted, rng: rng}, nil
}

// Linear scrolls from the top to the bottom of rng over frames, then holds.
func Linear(rng float64, frames int) (*Script, error) {
	return NewScript(rng, []Stop{{0, 0}, {frames, rng}})
}

// Jump sits at the top, then jumps straight to the bottom at frame at.
// Used to show the camera lagging behind a fast scroll.
func Jump(rng float64, at int) (*Script, error) {
	return NewScript(rng, []Stop{{0, 0}, {at, 0}, {at, rng}})
}

// Offset returns the scripted offset at the current frame.
func (s *Script) Offset() float64 {
	stops := s.stops
	// last stop at or before the current frame
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Frame > s.frame }) - 1
	if i < 0 {
		return stops[0].Offset
	}
	if i == len(stops)-1 {
		return stops[i].Offset
	}
	a, b := stops[i], stops[i+1]
	t := float64(s.frame-a.Frame) / float64(b.Frame-a.Frame)
	return a.Offset + (b.Offset-a.Offset)*t
}

// Range returns the maximum offset.
func (s *Script) Range() float64 { return s.rng }

// Frame returns the current frame index.
func (s *Script) Frame() int { return s.frame }

// Advance moves to the next frame.
func (s *Script) Advance() { s.frame++ }
