// Package support provides kernel support timeline data.
//
// The timeline file is line-oriented CSV: origin,version,month,year where
// month/year name the end of support for that kernel series from that
// origin. Comment lines and lines that do not split into four fields are
// ignored.
package support

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed data/kernel_support
var defaultTimeline []byte

// Entry is one support window: origin plus kernel series, ending at
// month/year (inclusive).
type Entry struct {
	Origin  string `json:"origin"`
	Version string `json:"version"` // version group, e.g. "5.4"
	Month   int    `json:"month"`
	Year    int    `json:"year"`
}

// MonthsRemaining returns how many months of support remain at time now.
// Zero means support ends this month; negative means it already ended.
func (e Entry) MonthsRemaining(now time.Time) int {
	return e.Month + e.Year*12 - (now.Year()*12 + int(now.Month()))
}

// Timeline is the parsed support file.
type Timeline struct {
	Entries []Entry
}

// Lookup finds the entry whose origin appears in the kernel's origins string
// and whose version equals the kernel's group.
func (t *Timeline) Lookup(origins, group string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	for _, e := range t.Entries {
		if strings.Contains(origins, e.Origin+" ") && e.Version == group {
			return e, true
		}
	}
	return Entry{}, false
}

// Describe renders a months-remaining value the way the listing shows it.
func Describe(months int) string {
	switch {
	case months > 0:
		return fmt.Sprintf("supported for another %d month(s)", months)
	case months < 0:
		return fmt.Sprintf("support expired %d month(s) ago", -months)
	default:
		return "support will expire this month"
	}
}

// Read parses a support timeline. Malformed records are skipped.
func Read(reader io.Reader) (*Timeline, error) {
	r := csv.NewReader(reader)
	r.Comment = '#'
	r.FieldsPerRecord = -1

	t := &Timeline{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if len(record) != 4 {
			continue
		}

		month, errM := strconv.Atoi(strings.TrimSpace(record[2]))
		year, errY := strconv.Atoi(strings.TrimSpace(record[3]))
		if errM != nil || errY != nil {
			continue
		}

		t.Entries = append(t.Entries, Entry{
			Origin:  strings.TrimSpace(record[0]),
			Version: strings.TrimSpace(record[1]),
			Month:   month,
			Year:    year,
		})
	}
	return t, nil
}

// Default returns the timeline shipped with kernelvet.
func Default() *Timeline {
	t, err := Read(bytes.NewReader(defaultTimeline))
	if err != nil {
		panic(fmt.Sprintf("parse embedded support timeline: %v", err))
	}
	return t
}

// LoadFile reads a timeline from path, falling back to the embedded default
// when path is empty or the file does not exist.
func LoadFile(path string) (*Timeline, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open support file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("support file %s: %w", path, err)
	}
	return t, nil
}
