package kernel

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// maxSubversions caps how many numeric components StripVersion keeps.
const maxSubversions = 10

// StripVersion reduces a kernel package name to its pure numeric version.
// Everything after a '+' or ':' is discarded, the "linux-image-" prefix is
// removed, and only leading numeric dot/dash components are kept:
// "linux-image-4.8.0-46-generic" -> "4.8.0.46".
func StripVersion(name string) string {
	name, _, _ = strings.Cut(name, "+")
	name, _, _ = strings.Cut(name, ":")
	name = strings.ReplaceAll(strings.TrimPrefix(name, "linux-image-"), "-", ".")

	var numeric []string
	for i, part := range strings.Split(name, ".") {
		if i >= maxSubversions {
			break
		}
		if isDigits(part) {
			numeric = append(numeric, part)
		}
	}
	return strings.Join(numeric, ".")
}

// MajorVersion returns the coarse version group ("4.8") for a stripped
// version string. ok is false when the version has fewer than three
// components, which indicates a meta-package rather than a concrete kernel.
func MajorVersion(version string) (string, bool) {
	parts := strings.Split(version, ".")
	if len(parts) <= 2 {
		return "", false
	}
	return parts[0] + "." + parts[1], true
}

// Compare returns -1, 0, or 1 comparing two version strings.
// Semver is tried first; versions with more than three components
// (stripped kernel versions) fall back to numeric component comparison.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return compareComponents(a, b)
}

// compareComponents compares dot-separated numeric components pairwise,
// treating missing components as zero ("4.8" == "4.8.0").
func compareComponents(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		ai, bi := 0, 0
		if i < len(as) {
			ai, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bi, _ = strconv.Atoi(bs[i])
		}
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	return 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
