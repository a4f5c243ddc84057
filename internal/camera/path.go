package camera

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/citycam/internal/easing"
)

var (
	ErrTooFewKeyframes  = errors.New("camera path needs at least 2 keyframes")
	ErrMixedOrientation = errors.New("camera path mixes look_at and yaw_pitch keyframes")
	ErrInvalidKeyframe  = errors.New("invalid keyframe")
	ErrInvalidOption    = errors.New("invalid path option")
)

// Path is an immutable keyframe route with its progress mapping
// precomputed. It is safe to share between frames and goroutines.
type Path struct {
	keyframes  []Keyframe
	kind       OrientationKind
	opts       Options
	weights    []float64 // one per segment
	cumulative []float64 // one per keyframe, 0 .. 1
}

// Segment locates a progress value between two adjacent keyframes.
type Segment struct {
	Index  int     // in [0, N-2]
	LocalT float64 // in [0, 1], before easing
	From   Keyframe
	To     Keyframe
}

// Section returns the label of the keyframe nearer to the resolved point.
func (s Segment) Section() string {
	if s.LocalT >= 0.5 {
		return s.To.Section
	}
	return s.From.Section
}

// NewPath validates keyframes and precomputes the cumulative progress table.
// The keyframe slice is copied.
func NewPath(keyframes []Keyframe, opts Options) (*Path, error) {
	if len(keyframes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKeyframes, len(keyframes))
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	if opts.Easing == nil {
		opts.Easing = easing.Smootherstep
	}

	kind := keyframes[0].Orientation.Kind
	for i, kf := range keyframes {
		if kf.Orientation.Kind != LookAt && kf.Orientation.Kind != YawPitch {
			return nil, fmt.Errorf("%w %d: unknown orientation %v", ErrInvalidKeyframe, i, kf.Orientation.Kind)
		}
		if kf.Orientation.Kind != kind {
			return nil, fmt.Errorf("%w: keyframe %d is %v, keyframe 0 is %v", ErrMixedOrientation, i, kf.Orientation.Kind, kind)
		}
		if !kf.finite() {
			return nil, fmt.Errorf("%w %d: non-finite coordinate", ErrInvalidKeyframe, i)
		}
	}

	p := &Path{
		keyframes: append([]Keyframe(nil), keyframes...),
		kind:      kind,
		opts:      opts,
	}
	p.weights = SegmentWeights(p.keyframes, opts.AngularScale, opts.MinSegmentDistance)
	p.cumulative = CumulativeTable(p.weights)
	return p, nil
}

func checkOptions(opts Options) error {
	checks := []struct {
		name string
		v    float64
	}{
		{"look-ahead distance", opts.LookAheadDistance},
		{"angular scale", opts.AngularScale},
		{"minimum segment distance", opts.MinSegmentDistance},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidOption, c.name, c.v)
		}
	}
	if opts.Mapping != Weighted && opts.Mapping != Uniform {
		return fmt.Errorf("%w: mapping %d", ErrInvalidOption, opts.Mapping)
	}
	if opts.Curve != Linear && opts.Curve != CatmullRom {
		return fmt.Errorf("%w: curve %d", ErrInvalidOption, opts.Curve)
	}
	return nil
}

// SegmentWeights returns the traversal cost of each segment:
// max(positional distance + angular distance*angularScale, floor).
// Yaw uses the shortest wrapped delta; look-at keyframes use the angle
// between their view directions.
func SegmentWeights(keyframes []Keyframe, angularScale, floor float64) []float64 {
	if len(keyframes) < 2 {
		return nil
	}
	weights := make([]float64, len(keyframes)-1)
	for i := range weights {
		a, b := keyframes[i], keyframes[i+1]
		dist := b.Position.Sub(a.Position).Len()
		weights[i] = math.Max(dist+angularDistance(a, b)*angularScale, floor)
	}
	return weights
}

func angularDistance(a, b Keyframe) float64 {
	if a.Orientation.Kind == YawPitch && b.Orientation.Kind == YawPitch {
		return math.Abs(ShortestAngle(a.Orientation.Yaw, b.Orientation.Yaw)) +
			math.Abs(b.Orientation.Pitch-a.Orientation.Pitch)
	}
	da, db := a.direction(), b.direction()
	if da.LenSqr() == 0 || db.LenSqr() == 0 {
		return 0
	}
	return math.Acos(mgl64.Clamp(da.Dot(db), -1, 1))
}

// CumulativeTable turns segment weights into a normalized running sum with
// one entry per keyframe: table[0] == 0, table[len-1] == 1, non-decreasing.
// When the weights sum to zero the table is spread evenly.
func CumulativeTable(weights []float64) []float64 {
	table := make([]float64, len(weights)+1)
	total := 0.0
	for i, w := range weights {
		total += w
		table[i+1] = total
	}

	n := len(table) - 1
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		for i := range table {
			table[i] = float64(i) / float64(n)
		}
		return table
	}

	for i := range table {
		table[i] /= total
	}
	table[n] = 1
	return table
}

// Len returns the number of keyframes.
func (p *Path) Len() int { return len(p.keyframes) }

// Kind returns the orientation kind shared by every keyframe.
func (p *Path) Kind() OrientationKind { return p.kind }

// Options returns the options the path was built with.
func (p *Path) Options() Options { return p.opts }

// Keyframe returns keyframe i.
func (p *Path) Keyframe(i int) Keyframe { return p.keyframes[i] }

// Keyframes returns a copy of the keyframe list.
func (p *Path) Keyframes() []Keyframe {
	return append([]Keyframe(nil), p.keyframes...)
}

// Weights returns a copy of the per-segment weights.
func (p *Path) Weights() []float64 {
	return append([]float64(nil), p.weights...)
}

// Cumulative returns a copy of the normalized cumulative table.
func (p *Path) Cumulative() []float64 {
	return append([]float64(nil), p.cumulative...)
}

// Resolve maps global progress onto a segment. Progress outside [0,1] is
// clamped.
func (p *Path) Resolve(progress float64) Segment {
	progress = Clamp01(progress)
	last := len(p.keyframes) - 2

	var index int
	var localT float64

	if p.opts.Mapping == Uniform {
		scaled := progress * float64(last+1)
		index = int(math.Floor(scaled))
		if index > last {
			index = last
		}
		localT = scaled - float64(index)
	} else {
		// first entry strictly above progress closes the bracket
		hi := sort.Search(len(p.cumulative), func(i int) bool {
			return p.cumulative[i] > progress
		})
		index = hi - 1
		if index < 0 {
			index = 0
		}
		if index > last {
			index = last
		}
		lo, up := p.cumulative[index], p.cumulative[index+1]
		if width := up - lo; width > 0 {
			localT = (progress - lo) / width
		}
	}

	return Segment{
		Index:  index,
		LocalT: Clamp01(localT),
		From:   p.keyframes[index],
		To:     p.keyframes[index+1],
	}
}

// PoseAt interpolates the pose inside a resolved segment using the path's
// curve and easing.
func (p *Path) PoseAt(seg Segment) Pose {
	if p.opts.Curve != CatmullRom {
		return InterpolatePose(seg.From, seg.To, seg.LocalT, p.opts)
	}

	t := ease(p.opts, seg.LocalT)
	k0 := p.wrapped(seg.Index - 1)
	k1 := p.wrapped(seg.Index)
	k2 := p.wrapped(seg.Index + 1)
	k3 := p.wrapped(seg.Index + 2)

	pos := CatmullRomVec(k0.Position, k1.Position, k2.Position, k3.Position, t)
	target := CatmullRomVec(k0.Orientation.Target, k1.Orientation.Target, k2.Orientation.Target, k3.Orientation.Target, t)
	return orient(pos, target, k1, k2, t, p.opts)
}

// Sample resolves progress and interpolates the pose in one call.
func (p *Path) Sample(progress float64) (Pose, Segment) {
	seg := p.Resolve(progress)
	return p.PoseAt(seg), seg
}

// wrapped indexes the keyframes as a closed loop.
func (p *Path) wrapped(i int) Keyframe {
	n := len(p.keyframes)
	return p.keyframes[((i%n)+n)%n]
}
