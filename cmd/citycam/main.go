package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ivlev/citycam/internal/camera"
	"github.com/ivlev/citycam/internal/config"
	"github.com/ivlev/citycam/internal/director"
	"github.com/ivlev/citycam/internal/easing"
	"github.com/ivlev/citycam/internal/engine"
	"github.com/ivlev/citycam/internal/system"
)

const (
	pathsDir  = "input/paths"
	outputDir = "output"
	tourName  = "night-city"
)

func main() {
	// Create the working directories if they are missing
	for _, d := range []string{pathsDir, outputDir} {
		if err := system.EnsureDir(d); err != nil {
			log.Printf("[!] %v", err)
		}
	}

	def := config.Default()

	pathPtr := flag.String("path", "", "Camera path YAML (default: newest file in input/paths/, else the built-in tour)")
	tourPtr := flag.String("tour", def.TourForm, "Built-in tour form: yawpitch, lookat")
	mappingPtr := flag.String("mapping", def.Mapping, "Progress mapping: weighted, uniform")
	curvePtr := flag.String("curve", def.Curve, "Position curve: linear, catmullrom")
	easingPtr := flag.String("easing", def.Easing, "Segment easing: "+strings.Join(easing.Names(), ", "))
	smoothingPtr := flag.Float64("smoothing", def.SmoothingFactor, "Camera smoothing per frame (0, 1]")
	lookAheadPtr := flag.Float64("look-ahead", def.LookAheadDistance, "Look-at distance for yaw/pitch paths")
	angularPtr := flag.Float64("angular-scale", def.AngularScale, "Weight of rotation against distance in segment cost")
	minSegmentPtr := flag.Float64("min-segment", def.MinSegmentDistance, "Minimum segment cost")
	filterPtr := flag.Float64("filter", def.FilterFactor, "Scroll low-pass factor (0, 1]")
	framesPtr := flag.Int("frames", def.Frames, "Frames to simulate")
	scrollPtr := flag.String("scroll", def.ScrollMode, "Scroll script: linear, jump")
	scrollRangePtr := flag.Float64("scroll-range", def.ScrollRange, "Scrollable page height in pixels")
	outputPtr := flag.String("output", "", "Track YAML (if empty, generated in output/)")
	previewPtr := flag.String("preview", "", "Top-down preview PNG (optional)")
	widthPtr := flag.Int("width", def.PreviewWidth, "Preview width")
	heightPtr := flag.Int("height", def.PreviewHeight, "Preview height")
	writeTourPtr := flag.String("write-tour", "", "Write the built-in tour to this YAML file and exit")
	statsPtr := flag.Bool("stats", false, "Print host and performance statistics")

	flag.Parse()

	cfg := &config.Config{
		PathInput:          *pathPtr,
		TourForm:           *tourPtr,
		Mapping:            *mappingPtr,
		Curve:              *curvePtr,
		Easing:             *easingPtr,
		SmoothingFactor:    *smoothingPtr,
		LookAheadDistance:  *lookAheadPtr,
		AngularScale:       *angularPtr,
		MinSegmentDistance: *minSegmentPtr,
		FilterFactor:       *filterPtr,
		Frames:             *framesPtr,
		ScrollMode:         *scrollPtr,
		ScrollRange:        *scrollRangePtr,
		TrackOutput:        *outputPtr,
		PreviewOutput:      *previewPtr,
		PreviewWidth:       *widthPtr,
		PreviewHeight:      *heightPtr,
		ShowStats:          *statsPtr,
	}

	if *writeTourPtr != "" {
		if err := writeTour(cfg.TourForm, *writeTourPtr); err != nil {
			log.Fatalf("[-] Error writing tour: %v", err)
		}
		fmt.Printf("[+++] Tour written: %s\n", *writeTourPtr)
		return
	}

	name, kfs, err := loadKeyframes(cfg, explicitFlags())
	if err != nil {
		log.Fatalf("[-] Error loading path: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid settings: %v", err)
	}
	opts, err := cfg.PathOptions()
	if err != nil {
		log.Fatalf("[-] Invalid settings: %v", err)
	}

	path, err := camera.NewPath(kfs, opts)
	if err != nil {
		log.Fatalf("[-] Invalid camera path: %v", err)
	}

	if cfg.TrackOutput == "" {
		cfg.TrackOutput = director.GenerateTrackPath(outputDir)
	}

	fmt.Println("--- [CITYCAM: CAMERA PATH] ---")
	fmt.Printf("[*] Path: %s | Keyframes: %d | Orientation: %s\n", name, path.Len(), path.Kind())
	fmt.Printf("[*] Mapping: %s | Curve: %s | Easing: %s\n", opts.Mapping, opts.Curve, cfg.Easing)
	fmt.Printf("[*] Frames: %d | Scroll: %s | Smoothing: %.3f | Filter: %.3f\n", cfg.Frames, cfg.ScrollMode, cfg.SmoothingFactor, cfg.FilterFactor)
	if cfg.ShowStats {
		if report, err := system.Report(); err != nil {
			log.Printf("[!] Host stats unavailable: %v", err)
		} else {
			fmt.Printf("[*] Host: %s\n", report)
		}
	}
	fmt.Println("------------------------------")

	script, err := engine.NewScript(cfg)
	if err != nil {
		log.Fatalf("[-] Scroll script error: %v", err)
	}
	sess := engine.NewSession(cfg, path, script)
	sess.Name = name

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	samples, err := sess.Run(ctx, cfg.Frames)
	if err != nil {
		log.Printf("[!] Run stopped after %d frames: %v", len(samples), err)
	}

	// export whatever was simulated, even after an interrupt
	if err := sess.Export(context.Background(), samples); err != nil {
		log.Fatalf("[-] Export error: %v", err)
	}

	if cfg.ShowStats {
		sess.Report(len(samples), outputDir)
	}

	fmt.Println("[+++] Done")
}

// explicitFlags returns the names of flags given on the command line
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// loadKeyframes picks the path source: an explicit file, the newest file in
// input/paths, or the built-in tour. Settings stored in a path file apply
// unless the same flag was given explicitly.
func loadKeyframes(cfg *config.Config, explicit map[string]bool) (string, []camera.Keyframe, error) {
	file := cfg.PathInput
	if file == "" {
		latest, err := director.FindLatestPath(pathsDir)
		if err != nil {
			fmt.Printf("[*] No path files in %s, using the built-in %s tour\n", pathsDir, cfg.TourForm)
			kfs, err := director.DefaultTour(cfg.TourForm)
			return tourName, kfs, err
		}
		file = latest
		fmt.Printf("[*] Selected path: %s\n", file)
	}

	doc, err := director.ReadPath(file)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", file, err)
	}

	if doc.Mapping != "" && !explicit["mapping"] {
		cfg.Mapping = doc.Mapping
	}
	if doc.Curve != "" && !explicit["curve"] {
		cfg.Curve = doc.Curve
	}
	if doc.Easing != "" && !explicit["easing"] {
		cfg.Easing = doc.Easing
	}

	kfs, err := doc.Resolve()
	if err != nil {
		return "", nil, err
	}

	name := doc.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return name, kfs, nil
}

func writeTour(form, out string) error {
	kfs, err := director.DefaultTour(form)
	if err != nil {
		return err
	}
	if err := system.EnsureDir(filepath.Dir(out)); err != nil {
		return err
	}
	doc := director.FromKeyframes(tourName, kfs)
	return director.WritePath(doc, out)
}
