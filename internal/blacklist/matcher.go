package blacklist

import "github.com/kernelvet/kernelvet/internal/kernel"

// Matches reports whether a single rule suppresses the given kernel.
// GROUP rules compare the version group for exact equality; KERNEL rules
// match the package name from its start.
func (r Rule) Matches(k kernel.Kernel) bool {
	switch r.Kind {
	case KindGroup:
		return r.Pattern == k.Group
	case KindKernel:
		return r.re != nil && r.re.MatchString(k.Package)
	default:
		return false
	}
}

// Suppresses reports whether any rule in the set matches the kernel.
// It evaluates rules only; the active-kernel exemption and the hidden-set
// contract are applied by Apply.
func (rs *RuleSet) Suppresses(k kernel.Kernel) bool {
	if rs == nil {
		return false
	}
	for _, r := range rs.Rules {
		if r.Matches(k) {
			return true
		}
	}
	return false
}

// Apply returns the kernels that remain visible under the rule set.
// The active kernel is never suppressed, and hidden kernels are never
// evaluated against the rules at all.
func Apply(kernels []kernel.Kernel, rs *RuleSet) []kernel.Kernel {
	visible := make([]kernel.Kernel, 0, len(kernels))
	for _, k := range kernels {
		if k.Hidden {
			visible = append(visible, k)
			continue
		}
		if k.Active || !rs.Suppresses(k) {
			visible = append(visible, k)
		}
	}
	return visible
}
