package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/citycam/internal/camera"
	"github.com/ivlev/citycam/internal/config"
	"github.com/ivlev/citycam/internal/director"
	"github.com/ivlev/citycam/internal/renderer"
	"github.com/ivlev/citycam/internal/scroll"
	"github.com/ivlev/citycam/internal/system"
)

// Session is a headless render host. It owns the live camera and drives the
// scroll tracker and the path controller once per frame.
type Session struct {
	Config     *config.Config
	Name       string
	Path       *camera.Path
	Controller *camera.Controller
	Tracker    *scroll.Tracker
	Script     *scroll.Script
	Camera     camera.State

	runTime    time.Duration
	exportTime time.Duration
}

func NewSession(cfg *config.Config, path *camera.Path, script *scroll.Script) *Session {
	return &Session{
		Config:     cfg,
		Path:       path,
		Controller: camera.NewController(path, cfg.SmoothingFactor),
		Tracker:    scroll.NewTracker(script, cfg.FilterFactor),
		Script:     script,
	}
}

// NewScript builds the scroll script selected by cfg.ScrollMode. A linear
// script reaches the bottom of the page at three quarters of the run; a jump
// script leaves the page at the top for the first quarter.
func NewScript(cfg *config.Config) (*scroll.Script, error) {
	switch cfg.ScrollMode {
	case "", "linear":
		return scroll.Linear(cfg.ScrollRange, cfg.Frames*3/4)
	case "jump":
		return scroll.Jump(cfg.ScrollRange, cfg.Frames/4)
	default:
		return nil, fmt.Errorf("unknown scroll mode: %s", cfg.ScrollMode)
	}
}

// Run advances the host loop for the given number of frames, strictly in
// order. Each frame reads the script, filters it through the tracker, moves
// the camera and records a sample before the script advances. Cancelling
// ctx stops the loop between frames and returns what was recorded so far.
func (s *Session) Run(ctx context.Context, frames int) ([]director.Sample, error) {
	start := time.Now()
	defer func() { s.runTime = time.Since(start) }()

	samples := make([]director.Sample, 0, frames)
	section := ""

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}

		progress := s.Tracker.Update()
		frame := s.Controller.Update(&s.Camera, progress)

		if frame.Section != section {
			log.Printf("[*] Frame %d: section %s (progress %.3f)", i, frame.Section, frame.Progress)
			section = frame.Section
		}

		samples = append(samples, director.Sample{
			Frame:    i,
			Progress: frame.Progress,
			Section:  frame.Section,
			Segment:  frame.Segment.Index,
			Position: director.Vec3(s.Camera.Position),
			Target:   director.Vec3(s.Camera.Target),
			Yaw:      s.Camera.Yaw,
			Pitch:    s.Camera.Pitch,
		})

		s.Script.Advance()
	}

	return samples, nil
}

// Export writes the track YAML and the preview PNG concurrently. An empty
// output path skips that export.
func (s *Session) Export(ctx context.Context, samples []director.Sample) error {
	start := time.Now()
	defer func() { s.exportTime = time.Since(start) }()

	g, ctx := errgroup.WithContext(ctx)

	if out := s.Config.TrackOutput; out != "" {
		g.Go(func() error {
			if err := system.EnsureDir(filepath.Dir(out)); err != nil {
				return err
			}
			track := &director.Track{Version: "1.0", Path: s.Name, Frames: samples}
			if err := director.WriteTrack(track, out); err != nil {
				return fmt.Errorf("write track: %w", err)
			}
			fmt.Printf("[+++] Track written: %s (%d frames)\n", out, len(samples))
			return nil
		})
	}

	if out := s.Config.PreviewOutput; out != "" {
		g.Go(func() error {
			if err := system.EnsureDir(filepath.Dir(out)); err != nil {
				return err
			}
			img := renderer.RenderPreview(s.Path, samples, s.Config.PreviewWidth, s.Config.PreviewHeight)
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := renderer.SavePNG(img, out); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			fmt.Printf("[+++] Preview written: %s\n", out)
			return nil
		})
	}

	return g.Wait()
}

// Report prints timings of the last Run and Export and appends a line to
// benchmark.log in dir. An empty dir skips the log file.
func (s *Session) Report(frames int, dir string) {
	fps := 0.0
	if s.runTime > 0 {
		fps = float64(frames) / s.runTime.Seconds()
	}

	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Path: %s (%d keyframes, %s)\n"+
			"Simulation: %.3fs\n"+
			"Export: %.3fs\n"+
			"Effective FPS: %.0f\n"+
			"----------------------------\n",
		s.Name, s.Path.Len(), s.Path.Kind(), s.runTime.Seconds(), s.exportTime.Seconds(), fps,
	)

	if dir == "" {
		return
	}
	entry := fmt.Sprintf("[%s] Path: %s | Frames: %d | Run: %.3fs | Export: %.3fs | FPS: %.0f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		s.Name, frames, s.runTime.Seconds(), s.exportTime.Seconds(), fps,
	)
	f, err := os.OpenFile(filepath.Join(dir, "benchmark.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("[!] Could not write benchmark.log: %v\n", err)
		return
	}
	defer f.Close()
	f.WriteString(entry)
}
