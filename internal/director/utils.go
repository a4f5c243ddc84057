package director

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GenerateTrackPath creates a timestamped track filename inside dir
func GenerateTrackPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("track_%s.yaml", timestamp))
}

// FindLatestPath finds the most recently modified path file in dir
func FindLatestPath(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read paths directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var paths []candidate
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		paths = append(paths, candidate{filepath.Join(dir, name), info.ModTime()})
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("no path files found in %s", dir)
	}

	// Newest first
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].modTime.After(paths[j].modTime)
	})

	return paths[0].path, nil
}
