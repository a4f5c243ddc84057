package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{8 << 30, "8.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{LogicalCPUs: 8, PhysicalCPUs: 4, MemTotal: 16 << 30, MemUsed: 4 << 30, MemUsedPercent: 25}
	got := s.String()
	for _, part := range []string{"8 logical", "4 physical", "4.0 GiB of 16.0 GiB", "25.0%"} {
		if !strings.Contains(got, part) {
			t.Errorf("Stats string %q missing %q", got, part)
		}
	}
}

func TestReport(t *testing.T) {
	report, err := Report()
	if err != nil {
		t.Skipf("host stats unavailable: %v", err)
	}
	t.Logf("host: %s", report)
	if !strings.Contains(report, "CPU:") {
		t.Errorf("Unexpected report: %q", report)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("Directory not created: %v", err)
	}
	// existing directory is fine
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
	if err := EnsureDir(""); err != nil {
		t.Errorf("EnsureDir(\"\") failed: %v", err)
	}
}
