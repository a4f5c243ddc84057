package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ivlev/citycam/internal/camera"
	"github.com/ivlev/citycam/internal/director"
)

var (
	backgroundColor = color.RGBA{10, 12, 28, 255}
	routeColor      = color.RGBA{70, 95, 160, 255}
	trackColor      = color.RGBA{255, 184, 64, 255}
	markerColor     = color.RGBA{230, 70, 140, 255}
	labelColor      = color.RGBA{220, 225, 240, 255}
)

const (
	padding         = 32
	routeSteps      = 48 // samples per segment when tracing the path curve
	routeWidth      = 1.5
	trackWidth      = 2.5
	markerRadius    = 5
	headingLength   = 18
	labelOffsetX    = 8
	labelOffsetY    = -6
	legendLineSpace = 15
)

// projection maps the world x/z plane onto image pixels, looking down the
// -Y axis with -Z pointing up the image.
type projection struct {
	min    mgl64.Vec2
	scale  float64
	offset mgl64.Vec2
}

// fitProjection fits the bounds [lo, hi] into a width x height image with
// pad pixels on every side. Degenerate bounds are widened so a path that
// never moves along one axis still gets a finite scale.
func fitProjection(lo, hi mgl64.Vec2, width, height, pad int) projection {
	for i := 0; i < 2; i++ {
		if hi[i]-lo[i] < 1e-9 {
			lo[i] -= 1
			hi[i] += 1
		}
	}
	size := hi.Sub(lo)
	availW := math.Max(float64(width-2*pad), 1)
	availH := math.Max(float64(height-2*pad), 1)
	scale := math.Min(availW/size.X(), availH/size.Y())

	// center the shorter axis
	offset := mgl64.Vec2{
		float64(width)/2 - size.X()*scale/2,
		float64(height)/2 - size.Y()*scale/2,
	}
	return projection{min: lo, scale: scale, offset: offset}
}

func (p projection) apply(v mgl64.Vec3) (float32, float32) {
	x := (v.X()-p.min.X())*p.scale + p.offset.X()
	y := (v.Z()-p.min.Y())*p.scale + p.offset.Y()
	return float32(x), float32(y)
}

// RenderPreview draws a top-down debug view of a camera run: the path
// curve, the smoothed track the camera actually flew, keyframe markers and
// section labels.
func RenderPreview(path *camera.Path, samples []director.Sample, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	route := traceRoute(path)
	track := make([]mgl64.Vec3, len(samples))
	for i, s := range samples {
		track[i] = mgl64.Vec3(s.Position)
	}
	kfs := path.Keyframes()

	all := append(append([]mgl64.Vec3(nil), route...), track...)
	for _, kf := range kfs {
		all = append(all, kf.Position)
	}
	lo, hi := bounds(all)
	proj := fitProjection(lo, hi, width, height, padding)

	r := vector.NewRasterizer(width, height)
	strokePolyline(r, proj, route, routeWidth)
	fill(r, img, routeColor)

	if len(track) > 1 {
		r.Reset(width, height)
		strokePolyline(r, proj, track, trackWidth)
		fill(r, img, trackColor)
	}

	r.Reset(width, height)
	for _, kf := range kfs {
		x, y := proj.apply(kf.Position)
		diamond(r, x, y, markerRadius)
		// heading tick
		hx, hy := proj.apply(kf.Position.Add(heading(kf).Mul(headingLength / proj.scale)))
		segment(r, x, y, hx, hy, 1)
	}
	fill(r, img, markerColor)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(labelColor), Face: basicfont.Face7x13}
	last := ""
	for _, kf := range kfs {
		if kf.Section == last {
			continue
		}
		last = kf.Section
		x, y := proj.apply(kf.Position)
		d.Dot = fixed.P(int(x)+labelOffsetX, int(y)+labelOffsetY)
		d.DrawString(kf.Section)
	}

	opts := path.Options()
	legend := []string{
		fmt.Sprintf("%d keyframes, %s", path.Len(), path.Kind()),
		fmt.Sprintf("mapping %s, curve %s", opts.Mapping, opts.Curve),
		fmt.Sprintf("%d frames", len(samples)),
	}
	for i, line := range legend {
		d.Dot = fixed.P(8, 16+i*legendLineSpace)
		d.DrawString(line)
	}

	return img
}

// SavePNG writes img to path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}

// traceRoute samples the path curve densely in progress space.
func traceRoute(path *camera.Path) []mgl64.Vec3 {
	n := (path.Len() - 1) * routeSteps
	pts := make([]mgl64.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		pose, _ := path.Sample(float64(i) / float64(n))
		pts = append(pts, pose.Position)
	}
	return pts
}

// bounds returns the x/z extent of pts. An empty set yields a zero box.
func bounds(pts []mgl64.Vec3) (mgl64.Vec2, mgl64.Vec2) {
	if len(pts) == 0 {
		return mgl64.Vec2{}, mgl64.Vec2{}
	}
	lo := mgl64.Vec2{pts[0].X(), pts[0].Z()}
	hi := lo
	for _, v := range pts[1:] {
		lo[0], hi[0] = math.Min(lo[0], v.X()), math.Max(hi[0], v.X())
		lo[1], hi[1] = math.Min(lo[1], v.Z()), math.Max(hi[1], v.Z())
	}
	return lo, hi
}

// heading is the keyframe view direction flattened onto the ground plane.
func heading(kf camera.Keyframe) mgl64.Vec3 {
	var dir mgl64.Vec3
	if kf.Orientation.Kind == camera.YawPitch {
		dir = camera.Forward(kf.Orientation.Yaw, 0)
	} else {
		dir = kf.Orientation.Target.Sub(kf.Position)
		dir[1] = 0
	}
	if dir.LenSqr() == 0 {
		return dir
	}
	return dir.Normalize()
}

func strokePolyline(r *vector.Rasterizer, proj projection, pts []mgl64.Vec3, width float32) {
	for i := 1; i < len(pts); i++ {
		ax, ay := proj.apply(pts[i-1])
		bx, by := proj.apply(pts[i])
		segment(r, ax, ay, bx, by, width)
	}
}

// segment adds a line of the given width as a quad. Shapes sharing a
// rasterizer must wind the same way or their overlap cancels out.
func segment(r *vector.Rasterizer, ax, ay, bx, by, width float32) {
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l < 1e-3 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

func diamond(r *vector.Rasterizer, x, y, radius float32) {
	r.MoveTo(x, y-radius)
	r.LineTo(x-radius, y)
	r.LineTo(x, y+radius)
	r.LineTo(x+radius, y)
	r.ClosePath()
}

func fill(r *vector.Rasterizer, dst draw.Image, c color.Color) {
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
