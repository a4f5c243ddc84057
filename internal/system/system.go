package system

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a snapshot of the host the session runs on
type Stats struct {
	LogicalCPUs    int
	PhysicalCPUs   int
	MemTotal       uint64
	MemUsed        uint64
	MemUsedPercent float64
}

// Collect queries CPU and memory information
func Collect() (Stats, error) {
	var s Stats

	logical, err := cpu.Counts(true)
	if err != nil {
		return s, fmt.Errorf("cpu count: %w", err)
	}
	s.LogicalCPUs = logical

	// physical cores are not reported on every platform
	if physical, err := cpu.Counts(false); err == nil {
		s.PhysicalCPUs = physical
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return s, fmt.Errorf("virtual memory: %w", err)
	}
	s.MemTotal = vm.Total
	s.MemUsed = vm.Used
	s.MemUsedPercent = vm.UsedPercent

	return s, nil
}

func (s Stats) String() string {
	return fmt.Sprintf("CPU: %d logical / %d physical | RAM: %s of %s (%.1f%%)",
		s.LogicalCPUs, s.PhysicalCPUs, formatBytes(s.MemUsed), formatBytes(s.MemTotal), s.MemUsedPercent)
}

// Report returns a one-line host summary
func Report() (string, error) {
	s, err := Collect()
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// EnsureDir creates dir and its parents if needed
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
