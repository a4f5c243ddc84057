package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func yp(x, y, z, yaw, pitch float64, section string) Keyframe {
	return Keyframe{
		Position:    mgl64.Vec3{x, y, z},
		Orientation: YawPitchAngles(yaw, pitch),
		Section:     section,
	}
}

func testTour() []Keyframe {
	return []Keyframe{
		yp(0, 5, 40, 0, -0.1, "hero"),
		yp(0, 5, 38, 0.05, -0.1, "hero"), // near-duplicate, exercises the floor
		yp(20, 12, 10, 1.2, -0.3, "about"),
		yp(20, 12, -30, 3.0, 0.0, "projects"),
		yp(-15, 30, -60, -3.0, -0.5, "contact"),
	}
}

func mustPath(t *testing.T, kfs []Keyframe, opts Options) *Path {
	t.Helper()
	p, err := NewPath(kfs, opts)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	return p
}

func TestNewPathPreconditions(t *testing.T) {
	opts := DefaultOptions()
	look := Keyframe{Position: mgl64.Vec3{1, 0, 0}, Orientation: LookAtPoint(mgl64.Vec3{})}

	tests := []struct {
		name string
		kfs  []Keyframe
		opts Options
		want error
	}{
		{"empty", nil, opts, ErrTooFewKeyframes},
		{"single", []Keyframe{yp(0, 0, 0, 0, 0, "a")}, opts, ErrTooFewKeyframes},
		{"mixed", []Keyframe{yp(0, 0, 0, 0, 0, "a"), look}, opts, ErrMixedOrientation},
		{"nan", []Keyframe{yp(0, 0, 0, 0, 0, "a"), yp(math.NaN(), 0, 0, 0, 0, "b")}, opts, ErrInvalidKeyframe},
		{"negative floor", testTour(), Options{MinSegmentDistance: -1}, ErrInvalidOption},
		{"inf scale", testTour(), Options{AngularScale: math.Inf(1)}, ErrInvalidOption},
		{"bad mapping", testTour(), Options{Mapping: Mapping(9)}, ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPath(tt.kfs, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewPath error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewPathCopiesKeyframes(t *testing.T) {
	kfs := testTour()
	p := mustPath(t, kfs, DefaultOptions())
	kfs[0].Position = mgl64.Vec3{999, 999, 999}
	if p.Keyframe(0).Position == kfs[0].Position {
		t.Fatal("path shares the caller's keyframe slice")
	}
}

func TestCumulativeTableInvariants(t *testing.T) {
	for _, mapping := range []Mapping{Weighted, Uniform} {
		opts := DefaultOptions()
		opts.Mapping = mapping
		p := mustPath(t, testTour(), opts)
		cum := p.Cumulative()

		if len(cum) != p.Len() {
			t.Fatalf("table has %d entries, want %d", len(cum), p.Len())
		}
		if cum[0] != 0 {
			t.Errorf("cum[0] = %f, want 0", cum[0])
		}
		if math.Abs(cum[len(cum)-1]-1) > 1e-12 {
			t.Errorf("cum[last] = %f, want 1", cum[len(cum)-1])
		}
		for i := 1; i < len(cum); i++ {
			if cum[i] < cum[i-1] {
				t.Errorf("table decreases at %d: %f < %f", i, cum[i], cum[i-1])
			}
		}
	}
}

func TestCumulativeTableAllZeroWeights(t *testing.T) {
	cum := CumulativeTable([]float64{0, 0, 0, 0})
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(cum[i]-want[i]) > 1e-12 {
			t.Errorf("cum[%d] = %f, want %f", i, cum[i], want[i])
		}
	}
}

func TestSegmentWeightFloor(t *testing.T) {
	kfs := []Keyframe{
		yp(0, 0, 0, 0, 0, "a"),
		yp(0.001, 0, 0, 0.0001, 0, "a"),
		yp(0, 0, 0, 0, 0.0001, "b"),
	}
	weights := SegmentWeights(kfs, 10, 5)
	for i, w := range weights {
		if w < 5 {
			t.Errorf("weight[%d] = %f, below floor 5", i, w)
		}
	}
}

func TestSegmentWeightsShortestYaw(t *testing.T) {
	kfs := []Keyframe{
		yp(0, 0, 0, 3.0, 0, "a"),
		yp(0, 0, 0, -3.0, 0, "b"),
	}
	w := SegmentWeights(kfs, 10, 0)
	want := (2*math.Pi - 6) * 10
	if math.Abs(w[0]-want) > 1e-9 {
		t.Errorf("weight = %f, want %f (short way across ±π)", w[0], want)
	}
}

func TestSegmentWeightsLookAt(t *testing.T) {
	kfs := []Keyframe{
		{Position: mgl64.Vec3{0, 0, 0}, Orientation: LookAtPoint(mgl64.Vec3{0, 0, -1})},
		{Position: mgl64.Vec3{3, 0, 0}, Orientation: LookAtPoint(mgl64.Vec3{4, 0, 0})},
	}
	w := SegmentWeights(kfs, 10, 0)
	want := 3 + math.Pi/2*10
	if math.Abs(w[0]-want) > 1e-9 {
		t.Errorf("weight = %f, want %f", w[0], want)
	}
}

func TestResolveBounds(t *testing.T) {
	for _, mapping := range []Mapping{Weighted, Uniform} {
		opts := DefaultOptions()
		opts.Mapping = mapping
		p := mustPath(t, testTour(), opts)
		last := p.Len() - 2

		for i := -10; i <= 1010; i++ {
			progress := float64(i) / 1000
			seg := p.Resolve(progress)
			if seg.Index < 0 || seg.Index > last {
				t.Fatalf("%v: progress %.3f index %d out of [0,%d]", mapping, progress, seg.Index, last)
			}
			if seg.LocalT < 0 || seg.LocalT > 1 {
				t.Fatalf("%v: progress %.3f localT %f out of [0,1]", mapping, progress, seg.LocalT)
			}
		}
	}
}

func TestResolveEndpoints(t *testing.T) {
	for _, mapping := range []Mapping{Weighted, Uniform} {
		for _, curve := range []Curve{Linear, CatmullRom} {
			opts := DefaultOptions()
			opts.Mapping = mapping
			opts.Curve = curve
			kfs := testTour()
			p := mustPath(t, kfs, opts)

			start := p.Resolve(0)
			if start.Index != 0 || start.LocalT != 0 {
				t.Errorf("%v/%v: Resolve(0) = (%d, %f), want (0, 0)", mapping, curve, start.Index, start.LocalT)
			}
			end := p.Resolve(1)
			if end.Index != len(kfs)-2 || end.LocalT != 1 {
				t.Errorf("%v/%v: Resolve(1) = (%d, %f), want (%d, 1)", mapping, curve, end.Index, end.LocalT, len(kfs)-2)
			}

			if pose := p.PoseAt(start); !vecNear(pose.Position, kfs[0].Position, 1e-9) {
				t.Errorf("%v/%v: pose at 0 = %v, want %v", mapping, curve, pose.Position, kfs[0].Position)
			}
			lastPos := kfs[len(kfs)-1].Position
			if pose := p.PoseAt(end); !vecNear(pose.Position, lastPos, 1e-9) {
				t.Errorf("%v/%v: pose at 1 = %v, want %v", mapping, curve, pose.Position, lastPos)
			}
		}
	}
}

func TestResolveUniformScenario(t *testing.T) {
	opts := DefaultOptions()
	opts.Mapping = Uniform
	kfs := []Keyframe{
		yp(0, 0, 0, 0, 0, "a"),
		yp(10, 0, 0, 0, 0, "b"),
		yp(10, 10, 0, 0, 0, "c"),
	}
	p := mustPath(t, kfs, opts)

	seg := p.Resolve(0.25)
	if seg.Index != 0 || math.Abs(seg.LocalT-0.5) > 1e-12 {
		t.Fatalf("Resolve(0.25) = (%d, %f), want (0, 0.5)", seg.Index, seg.LocalT)
	}

	pose := p.PoseAt(seg)
	x, y := pose.Position.X(), pose.Position.Y()
	if x <= 0 || x >= 10 {
		t.Errorf("x = %f, want strictly between 0 and 10", x)
	}
	if math.Abs(y) > 1e-9 {
		t.Errorf("y = %f, want 0", y)
	}
}

func TestResolveWeightedFollowsDistance(t *testing.T) {
	opts := DefaultOptions()
	opts.AngularScale = 0
	opts.MinSegmentDistance = 0
	kfs := []Keyframe{
		yp(0, 0, 0, 0, 0, "a"),
		yp(10, 0, 0, 0, 0, "b"),
		yp(40, 0, 0, 0, 0, "c"),
	}
	p := mustPath(t, kfs, opts)

	cum := p.Cumulative()
	if math.Abs(cum[1]-0.25) > 1e-12 {
		t.Fatalf("cum[1] = %f, want 0.25", cum[1])
	}

	seg := p.Resolve(0.125)
	if seg.Index != 0 || math.Abs(seg.LocalT-0.5) > 1e-12 {
		t.Errorf("Resolve(0.125) = (%d, %f), want (0, 0.5)", seg.Index, seg.LocalT)
	}
	seg = p.Resolve(0.625)
	if seg.Index != 1 || math.Abs(seg.LocalT-0.5) > 1e-12 {
		t.Errorf("Resolve(0.625) = (%d, %f), want (1, 0.5)", seg.Index, seg.LocalT)
	}
}

func TestResolveZeroWidthBracket(t *testing.T) {
	opts := DefaultOptions()
	opts.AngularScale = 0
	opts.MinSegmentDistance = 0
	kfs := []Keyframe{
		yp(0, 0, 0, 0, 0, "a"),
		yp(0, 0, 0, 0, 0, "b"), // coincident: zero-width first segment
		yp(10, 0, 0, 0, 0, "c"),
	}
	p := mustPath(t, kfs, opts)

	seg := p.Resolve(0)
	if seg.LocalT != 0 {
		t.Errorf("Resolve(0) localT = %f, want 0", seg.LocalT)
	}
	pose := p.PoseAt(seg)
	if !vecNear(pose.Position, mgl64.Vec3{}, 1e-12) {
		t.Errorf("pose at 0 = %v, want origin", pose.Position)
	}
}

func TestCatmullRomWrapsAround(t *testing.T) {
	opts := DefaultOptions()
	opts.Curve = CatmullRom
	opts.Mapping = Uniform
	kfs := []Keyframe{
		yp(0, 0, 0, 0, 0, "a"),
		yp(10, 0, 0, 0, 0, "b"),
		yp(10, 0, 10, 0, 0, "c"),
		yp(0, 0, 10, 0, 0, "d"),
	}
	p := mustPath(t, kfs, opts)

	// The first segment uses the last keyframe as its leading control point,
	// which bows the curve away from the straight chord.
	pose, _ := p.Sample(1.0 / 6)
	if math.Abs(pose.Position.Z()) < 1e-3 {
		t.Errorf("spline midpoint %v lies on the chord; wraparound control point unused", pose.Position)
	}
}

func TestSegmentSection(t *testing.T) {
	a, b := yp(0, 0, 0, 0, 0, "a"), yp(1, 0, 0, 0, 0, "b")
	if got := (Segment{LocalT: 0.2, From: a, To: b}).Section(); got != "a" {
		t.Errorf("Section at 0.2 = %s, want a", got)
	}
	if got := (Segment{LocalT: 0.8, From: a, To: b}).Section(); got != "b" {
		t.Errorf("Section at 0.8 = %s, want b", got)
	}
}

func TestParseOptions(t *testing.T) {
	if m, err := ParseMapping("uniform"); err != nil || m != Uniform {
		t.Errorf("ParseMapping(uniform) = %v, %v", m, err)
	}
	if _, err := ParseMapping("bogus"); err == nil {
		t.Error("ParseMapping(bogus) should fail")
	}
	if c, err := ParseCurve("catmullrom"); err != nil || c != CatmullRom {
		t.Errorf("ParseCurve(catmullrom) = %v, %v", c, err)
	}
	if _, err := ParseCurve("bezier"); err == nil {
		t.Error("ParseCurve(bezier) should fail")
	}
}
