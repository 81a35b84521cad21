package output

import (
	"encoding/json"

	"github.com/dustin/go-humanize"
)

// KernelEntry represents a single kernel listing row.
type KernelEntry struct {
	Group      string `json:"group"`
	Package    string `json:"package"`
	Version    string `json:"version"`
	PkgVersion string `json:"pkg_version,omitempty"`
	Status     string `json:"status"`
	Size       uint64 `json:"size"`
	Support    string `json:"support,omitempty"`
	Origins    string `json:"origins,omitempty"`
}

// KernelList implements Formatter for kernel listings.
// Entries are rendered in the order given; the inventory is already sorted
// by version, descending.
type KernelList struct {
	Entries []KernelEntry
	Wide    bool // include the ORIGINS column in text output
}

// FormatText returns table output with aligned columns.
func (l *KernelList) FormatText() string {
	if len(l.Entries) == 0 {
		return ""
	}

	tw := NewTableWriter()
	if l.Wide {
		tw.Header("GROUP", "PACKAGE", "VERSION", "STATUS", "SIZE", "SUPPORT", "ORIGINS")
	} else {
		tw.Header("GROUP", "PACKAGE", "VERSION", "STATUS", "SIZE", "SUPPORT")
	}

	for _, e := range l.Entries {
		support := e.Support
		if support == "" {
			support = "-"
		}
		size := "-"
		if e.Size > 0 {
			size = humanize.IBytes(e.Size)
		}
		if l.Wide {
			origins := e.Origins
			if origins == "" {
				origins = "-"
			}
			tw.Row(e.Group, e.Package, e.Version, e.Status, size, support, origins)
		} else {
			tw.Row(e.Group, e.Package, e.Version, e.Status, size, support)
		}
	}

	return tw.String()
}

// FormatJSON returns JSON array output.
func (l *KernelList) FormatJSON() ([]byte, error) {
	if len(l.Entries) == 0 {
		return []byte("[]"), nil
	}
	return json.MarshalIndent(l.Entries, "", "  ")
}
