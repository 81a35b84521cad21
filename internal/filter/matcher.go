package filter

import (
	"github.com/kernelvet/kernelvet/internal/kernel"
)

// opHolds maps operators to comparison predicates over kernel.Compare results.
var opHolds = map[Op]func(cmp int) bool{
	OpEqual:        func(cmp int) bool { return cmp == 0 },
	OpGreater:      func(cmp int) bool { return cmp > 0 },
	OpLess:         func(cmp int) bool { return cmp < 0 },
	OpGreaterEqual: func(cmp int) bool { return cmp >= 0 },
	OpLessEqual:    func(cmp int) bool { return cmp <= 0 },
}

// Match checks if a kernel satisfies the filter.
// Logic: OR between group constraints, AND for everything else.
func (f *Filter) Match(k kernel.Kernel) bool {
	if f == nil || len(f.Constraints) == 0 {
		return true
	}

	sawGroup := false
	groupMatched := false

	for _, c := range f.Constraints {
		switch {
		case c.Flag != "":
			if !matchFlag(c.Flag, k) {
				return false
			}
		case c.Field == FieldGroup:
			sawGroup = true
			if k.Group == c.Value {
				groupMatched = true
			}
		case c.Field == FieldVersion:
			holds, ok := opHolds[c.Op]
			if !ok || !holds(kernel.Compare(k.Version, c.Value)) {
				return false
			}
		}
	}

	if sawGroup && !groupMatched {
		return false
	}
	return true
}

func matchFlag(f Flag, k kernel.Kernel) bool {
	switch f {
	case FlagActive:
		return k.Active
	case FlagInstalled:
		return k.Installed
	case FlagDownloaded:
		return k.Downloaded
	default:
		return false
	}
}

// FilterKernels returns the kernels that match the filter.
func FilterKernels(kernels []kernel.Kernel, f *Filter) []kernel.Kernel {
	if f == nil {
		return kernels
	}

	var result []kernel.Kernel
	for _, k := range kernels {
		if f.Match(k) {
			result = append(result, k)
		}
	}
	return result
}
