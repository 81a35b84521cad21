package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kernelvet/kernelvet/internal/kernel"
)

// SupportEntry represents a single support timeline row.
type SupportEntry struct {
	Origin  string `json:"origin"`
	Version string `json:"version"`
	Until   string `json:"until"` // YYYY-MM
	Months  int    `json:"months_remaining"`
	State   string `json:"state"`
}

// SupportList implements Formatter for support timeline listings.
type SupportList struct {
	Entries []SupportEntry
	sorted  bool
}

// sort orders entries by origin ASC, version DESC.
func (l *SupportList) sort() {
	if l.sorted {
		return
	}
	sort.SliceStable(l.Entries, func(i, j int) bool {
		if l.Entries[i].Origin != l.Entries[j].Origin {
			return l.Entries[i].Origin < l.Entries[j].Origin
		}
		return kernel.Compare(l.Entries[i].Version, l.Entries[j].Version) > 0
	})
	l.sorted = true
}

// FormatText returns table output with aligned columns.
func (l *SupportList) FormatText() string {
	if len(l.Entries) == 0 {
		return ""
	}
	l.sort()

	tw := NewTableWriter()
	tw.Header("ORIGIN", "VERSION", "UNTIL", "STATE")
	for _, e := range l.Entries {
		tw.Row(e.Origin, e.Version, e.Until, e.State)
	}
	return tw.String()
}

// FormatJSON returns JSON array output.
func (l *SupportList) FormatJSON() ([]byte, error) {
	if len(l.Entries) == 0 {
		return []byte("[]"), nil
	}
	l.sort()
	return json.MarshalIndent(l.Entries, "", "  ")
}

// UntilString formats a month/year pair for the UNTIL column.
func UntilString(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
