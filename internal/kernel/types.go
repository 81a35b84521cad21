// Package kernel provides kernel inventory types and version utilities.
package kernel

import "strings"

// Kernel represents one installable or installed kernel package.
type Kernel struct {
	Package       string // package name, e.g. "linux-image-4.8.0-46-generic"
	Version       string // stripped numeric version, e.g. "4.8.0.46"
	Group         string // major version group, e.g. "4.8"
	PkgVersion    string // package version as published by the archive
	Size          uint64 // download size in bytes
	InstalledSize uint64 // installed size in bytes
	Origins       string // joined origin description
	Active        bool   // currently running kernel
	Installed     bool
	Downloaded    bool
	Hidden        bool // excluded from all processing by an external mechanism
}

// Status returns a short comma-joined state summary for display.
func (k Kernel) Status() string {
	var parts []string
	if k.Active {
		parts = append(parts, "active")
	}
	if k.Installed {
		parts = append(parts, "installed")
	}
	if k.Downloaded && !k.Installed {
		parts = append(parts, "downloaded")
	}
	if len(parts) == 0 {
		return "available"
	}
	return strings.Join(parts, ",")
}
