package director

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/citycam/internal/camera"
)

// Sections of the portfolio page, top to bottom
var Sections = []string{"hero", "about", "skills", "projects", "experience", "contact"}

// Director authors the camera route through the night city
type Director struct {
	EyeHeight float64 // street-level camera height
	LookAhead float64 // distance of derived look-at points
}

// NewDirector creates a new Director with default settings
func NewDirector() *Director {
	return &Director{
		EyeHeight: 6,
		LookAhead: 10,
	}
}

// waypoint is one stop of the tour before it is turned into a keyframe
type waypoint struct {
	section  string
	pos      mgl64.Vec3
	yawDeg   float64
	pitchDeg float64
}

// tour is the hand-authored flight: a high establishing shot over the
// skyline, down to street level along the main avenue, past the park and
// market, then back up between the towers for the closing view.
var tour = []waypoint{
	{"hero", mgl64.Vec3{0, 60, 120}, 0, -18},
	{"hero", mgl64.Vec3{0, 45, 90}, 0, -14},
	{"about", mgl64.Vec3{12, 0, 55}, 20, -4},
	{"skills", mgl64.Vec3{30, 0, 20}, 75, -2},
	{"skills", mgl64.Vec3{32, 0, 16}, 100, -2},
	{"projects", mgl64.Vec3{10, 4, -20}, 170, 0},
	{"projects", mgl64.Vec3{-12, 4, -30}, -160, 4},
	{"experience", mgl64.Vec3{-40, 8, -10}, -110, 6},
	{"contact", mgl64.Vec3{-30, 35, 30}, -45, -10},
	{"contact", mgl64.Vec3{0, 80, 60}, 0, -30},
}

// Tour returns the night city route in yaw/pitch form. Street-level
// waypoints are lifted to EyeHeight.
func (d *Director) Tour() []camera.Keyframe {
	kfs := make([]camera.Keyframe, 0, len(tour))
	for _, w := range tour {
		kfs = append(kfs, camera.Keyframe{
			Position:    d.lift(w.pos),
			Orientation: camera.YawPitchAngles(w.yawDeg*math.Pi/180, w.pitchDeg*math.Pi/180),
			Section:     w.section,
		})
	}
	return kfs
}

// LookAtTour returns the same route with explicit look-at points placed
// LookAhead units along each waypoint's heading.
func (d *Director) LookAtTour() []camera.Keyframe {
	kfs := d.Tour()
	for i, kf := range kfs {
		fwd := camera.Forward(kf.Orientation.Yaw, kf.Orientation.Pitch)
		kfs[i].Orientation = camera.LookAtPoint(kf.Position.Add(fwd.Mul(d.LookAhead)))
	}
	return kfs
}

func (d *Director) lift(p mgl64.Vec3) mgl64.Vec3 {
	if p.Y() < d.EyeHeight {
		p[1] = d.EyeHeight
	}
	return p
}

// DefaultTour returns the built-in route in the named orientation form:
// "yawpitch" (or "") or "lookat".
func DefaultTour(form string) ([]camera.Keyframe, error) {
	d := NewDirector()
	switch form {
	case "yawpitch", "":
		return d.Tour(), nil
	case "lookat":
		return d.LookAtTour(), nil
	default:
		return nil, fmt.Errorf("unknown tour form: %s", form)
	}
}
