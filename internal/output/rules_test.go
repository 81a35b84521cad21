package output

import (
	"strings"
	"testing"
)

func TestRuleListFormatText(t *testing.T) {
	l := &RuleList{Entries: []RuleEntry{
		{Kind: "GROUP", Pattern: "4.4"},
		{Kind: "KERNEL", Pattern: "linux-image-unsigned-.*"},
	}}
	got := l.FormatText()

	if !strings.Contains(got, "KIND") || !strings.Contains(got, "PATTERN") {
		t.Errorf("missing headers in:\n%s", got)
	}
	// File order is preserved.
	if strings.Index(got, "4.4") > strings.Index(got, "unsigned") {
		t.Errorf("rule order not preserved:\n%s", got)
	}
}

func TestRuleListFormatTextEmpty(t *testing.T) {
	l := &RuleList{}
	if got := l.FormatText(); got != "no rules" {
		t.Errorf("empty rule list = %q, want 'no rules'", got)
	}
}

func TestRuleListFormatJSONEmpty(t *testing.T) {
	l := &RuleList{}
	data, err := l.FormatJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty rule list JSON = %q, want []", data)
	}
}
