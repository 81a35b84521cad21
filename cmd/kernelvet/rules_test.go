package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kernelvet/kernelvet/internal/testutil"
)

func writeRulesFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blacklist")
	content := "# test rules\nGROUP 4.4\nKERNEL linux-image-unsigned-.*\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()
	blacklistFile := writeRulesFixture(t)

	tests := []struct {
		name        string
		args        []string
		wantSubstrs []string
	}{
		{
			name:        "text output",
			args:        []string{"rules", "-b", blacklistFile},
			wantSubstrs: []string{"KIND", "PATTERN", "GROUP", "4.4", "KERNEL"},
		},
		{
			name:        "json output",
			args:        []string{"rules", "-j", "-b", blacklistFile},
			wantSubstrs: []string{`"kind":`, `"pattern":`},
		},
		{
			name:        "check suppressed by group",
			args:        []string{"rules", "-b", blacklistFile, "--check", "linux-image-4.4.0-21-generic"},
			wantSubstrs: []string{"suppressed", "GROUP 4.4"},
		},
		{
			name:        "check suppressed by pattern",
			args:        []string{"rules", "-b", blacklistFile, "--check", "linux-image-unsigned-4.15.0-29-generic"},
			wantSubstrs: []string{"suppressed", "KERNEL"},
		},
		{
			name:        "check visible",
			args:        []string{"rules", "-b", blacklistFile, "--check", "linux-image-4.15.0-29-generic"},
			wantSubstrs: []string{"visible"},
		},
		{
			name:        "check with explicit group",
			args:        []string{"rules", "-b", blacklistFile, "--check", "custom-kernel", "--group", "4.4"},
			wantSubstrs: []string{"suppressed", "GROUP 4.4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args...)

			if result.ExitCode != ExitOK {
				t.Errorf("exit code = %d, want 0 (stderr: %s)", result.ExitCode, result.Stderr)
			}
			for _, want := range tt.wantSubstrs {
				if !strings.Contains(result.Stdout, want) {
					t.Errorf("stdout should contain %q, got:\n%s", want, result.Stdout)
				}
			}
		})
	}
}
