// Package generate regenerates the embedded kernel support timeline.
package generate

import "github.com/kernelvet/kernelvet/internal/support"

// Generator produces support timeline entries from an external source.
type Generator interface {
	// Name returns the generator's display name.
	Name() string
	// Generate fetches and returns support entries.
	Generate() ([]support.Entry, error)
}
