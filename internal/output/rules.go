package output

import "encoding/json"

// RuleEntry represents a single blacklist rule row.
type RuleEntry struct {
	Kind    string `json:"kind"`
	Pattern string `json:"pattern"`
}

// RuleList implements Formatter for blacklist rule listings.
// Entries keep file order; rules are position-sensitive only in the sense
// that the file is the canonical ordering, so no sorting happens here.
type RuleList struct {
	Entries []RuleEntry
}

// FormatText returns table output with aligned columns.
func (l *RuleList) FormatText() string {
	if len(l.Entries) == 0 {
		return "no rules"
	}

	tw := NewTableWriter()
	tw.Header("KIND", "PATTERN")
	for _, e := range l.Entries {
		tw.Row(e.Kind, e.Pattern)
	}
	return tw.String()
}

// FormatJSON returns JSON array output.
func (l *RuleList) FormatJSON() ([]byte, error) {
	if len(l.Entries) == 0 {
		return []byte("[]"), nil
	}
	return json.MarshalIndent(l.Entries, "", "  ")
}
