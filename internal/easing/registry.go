package easing

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

var registry = map[string]Func{
	"smootherstep": Smootherstep,
	"smoothstep":   Smoothstep,
	"linear":       Linear,
	"cubic":        fromTween(ease.InOutCubic),
	"quint":        fromTween(ease.InOutQuint),
	"sine":         fromTween(ease.InOutSine),
}

// New returns the easing curve registered under name.
// An empty name selects Smootherstep.
func New(name string) (Func, error) {
	if name == "" {
		return Smootherstep, nil
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing: %s", name)
	}
	return fn, nil
}

// Names lists the registered easing curves in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
