// Command generate regenerates the embedded kernel support data file.
// Usage: go run ./tools/generate/cmd
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kernelvet/kernelvet/internal/kernel"
	"github.com/kernelvet/kernelvet/internal/support"
	"github.com/kernelvet/kernelvet/tools/generate"
)

const dataDir = "internal/support/data"

func main() {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	var failed bool
	var allEntries []support.Entry

	generators := []generate.Generator{
		generate.KernelOrgGenerator{},
	}

	for _, g := range generators {
		name := g.Name()
		fmt.Printf("Generating %s support entries...\n", name)

		entries, err := g.Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s support entries: %v\n", name, err)
			failed = true
			continue
		}

		allEntries = append(allEntries, entries...)
		fmt.Printf("✓ %s (%d entries)\n", name, len(entries))
	}

	if len(allEntries) == 0 {
		fmt.Fprintln(os.Stderr, "No entries generated, keeping existing data file")
		os.Exit(1)
	}

	sort.SliceStable(allEntries, func(i, j int) bool {
		if allEntries[i].Origin != allEntries[j].Origin {
			return allEntries[i].Origin < allEntries[j].Origin
		}
		return kernel.Compare(allEntries[i].Version, allEntries[j].Version) > 0
	})

	if err := writeSupportFile(allEntries); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing support file: %v\n", err)
		os.Exit(1)
	}

	if failed {
		os.Exit(1)
	}
}

func writeSupportFile(entries []support.Entry) error {
	var b strings.Builder
	b.WriteString("# Kernel support timeline.\n")
	b.WriteString("# Format: origin,version,month,year (end of support, inclusive)\n")
	b.WriteString("#\n")
	b.WriteString("# Regenerate with: go run ./tools/generate/cmd\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%s,%d,%d\n", e.Origin, e.Version, e.Month, e.Year)
	}

	path := filepath.Join(dataDir, "kernel_support")
	return os.WriteFile(path, []byte(b.String()), 0644)
}
