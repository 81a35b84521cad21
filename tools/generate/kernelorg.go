package generate

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kernelvet/kernelvet/internal/log"
	"github.com/kernelvet/kernelvet/internal/support"
)

// KernelOrgGenerator implements Generator for kernel.org release data.
type KernelOrgGenerator struct{}

// Name returns the generator's display name.
func (KernelOrgGenerator) Name() string { return "kernel.org" }

const kernelOrgReleasesURL = "https://www.kernel.org/category/releases.html"

const originKernelOrg = "kernel.org"

// versionPattern matches series labels like "5.15" or "6.12".
var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// eolPattern matches projected EOL cells like "Dec, 2026".
var eolPattern = regexp.MustCompile(`^([A-Z][a-z]{2}),?\s+(\d{4})$`)

// Generate scrapes the longterm release table from kernel.org.
func (KernelOrgGenerator) Generate() ([]support.Entry, error) {
	body, err := fetchURL(kernelOrgReleasesURL)
	if err != nil {
		return nil, err
	}
	return ParseReleasesPage(body)
}

// ParseReleasesPage extracts support entries from the releases page HTML.
// Rows without a parseable projected-EOL cell (mainline, stable) are skipped.
func ParseReleasesPage(body []byte) ([]support.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse releases page: %w", err)
	}

	logger := log.WithComponent("generate")
	var entries []support.Entry
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		version := strings.TrimSpace(cells.First().Text())
		if !versionPattern.MatchString(version) {
			return
		}

		eol := strings.TrimSpace(cells.Last().Text())
		month, year, ok := parseEOL(eol)
		if !ok {
			logger.Warn().Str("version", version).Str("eol", eol).
				Msg("no projected EOL, skipping row")
			return
		}

		entries = append(entries, support.Entry{
			Origin:  originKernelOrg,
			Version: version,
			Month:   month,
			Year:    year,
		})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no release rows found, page layout changed?")
	}
	return entries, nil
}

// parseEOL parses a projected EOL cell like "Dec, 2026".
func parseEOL(text string) (month, year int, ok bool) {
	m := eolPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	t, err := time.Parse("Jan 2006", m[1]+" "+m[2])
	if err != nil {
		return 0, 0, false
	}
	return int(t.Month()), t.Year(), true
}
