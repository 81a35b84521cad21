package filter

import (
	"testing"

	"github.com/kernelvet/kernelvet/internal/kernel"
)

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name string
		expr string
		k    kernel.Kernel
		want bool
	}{
		// Group equality
		{"group matches", "group=4.4", kernel.Kernel{Group: "4.4", Version: "4.4.0.21"}, true},
		{"group rejects other group", "group=4.4", kernel.Kernel{Group: "4.8", Version: "4.8.0.46"}, false},

		// OR between group constraints
		{"either group matches first", "group=4.4,group=4.8", kernel.Kernel{Group: "4.4"}, true},
		{"either group matches second", "group=4.4,group=4.8", kernel.Kernel{Group: "4.8"}, true},
		{"either group rejects third", "group=4.4,group=4.8", kernel.Kernel{Group: "4.15"}, false},

		// Version comparisons (AND)
		{"version>= matches equal", "version>=4.15", kernel.Kernel{Version: "4.15.0.29"}, true},
		{"version>= matches greater", "version>=4.15", kernel.Kernel{Version: "5.4.0.1"}, true},
		{"version>= rejects smaller", "version>=4.15", kernel.Kernel{Version: "4.8.0.46"}, false},
		{"version range matches inside", "version>=4.4,version<=4.15", kernel.Kernel{Version: "4.8.0.46"}, true},
		{"version range rejects outside", "version>=4.4,version<=4.15", kernel.Kernel{Version: "5.4.0.1"}, false},
		{"version< rejects equal", "version<4.15", kernel.Kernel{Version: "4.15.0.0"}, false},

		// Flags
		{"installed matches", "installed", kernel.Kernel{Installed: true}, true},
		{"installed rejects", "installed", kernel.Kernel{}, false},
		{"active matches", "active", kernel.Kernel{Active: true}, true},
		{"downloaded matches", "downloaded", kernel.Kernel{Downloaded: true}, true},

		// Combinations
		{"group and flag both required", "group=4.4,installed", kernel.Kernel{Group: "4.4", Installed: true}, true},
		{"group and flag, flag missing", "group=4.4,installed", kernel.Kernel{Group: "4.4"}, false},
		{"group and flag, group missing", "group=4.4,installed", kernel.Kernel{Group: "4.8", Installed: true}, false},

		// Nil / empty filters match everything
		{"empty expression handled by Parse", "installed", kernel.Kernel{Installed: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.expr, err)
			}
			if got := f.Match(tt.k); got != tt.want {
				t.Errorf("Match(%+v) under %q = %v, want %v", tt.k, tt.expr, got, tt.want)
			}
		})
	}
}

func TestNilFilterMatchesAll(t *testing.T) {
	var f *Filter
	if !f.Match(kernel.Kernel{Group: "4.4"}) {
		t.Error("nil filter must match everything")
	}
}

func TestFilterKernels(t *testing.T) {
	kernels := []kernel.Kernel{
		{Package: "a", Group: "4.4", Version: "4.4.0.21", Installed: true},
		{Package: "b", Group: "4.8", Version: "4.8.0.46"},
		{Package: "c", Group: "4.8", Version: "4.8.0.47", Installed: true},
	}

	f, err := Parse("group=4.8,installed")
	if err != nil {
		t.Fatal(err)
	}

	got := FilterKernels(kernels, f)
	if len(got) != 1 || got[0].Package != "c" {
		t.Fatalf("FilterKernels = %+v, want just c", got)
	}

	if all := FilterKernels(kernels, nil); len(all) != 3 {
		t.Errorf("nil filter should pass everything, got %d", len(all))
	}
}
