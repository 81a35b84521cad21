package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kernelvet/kernelvet/internal/blacklist"
	"github.com/kernelvet/kernelvet/internal/kernel"
	"github.com/kernelvet/kernelvet/internal/output"
)

var (
	rulesJSON       bool
	rulesBlacklist  string
	rulesCheck      string
	rulesCheckGroup string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective blacklist rules",
	Long:  `Display the suppression rules loaded from the user blacklist, or check a kernel name against them.`,
	Args:  cobra.NoArgs,
	Example: `  kernelvet rules
  kernelvet rules -j
  kernelvet rules --check linux-image-4.4.0-21-generic`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().BoolVarP(&rulesJSON, "json", "j", false, "Output in JSON format")
	rulesCmd.Flags().StringVarP(&rulesBlacklist, "blacklist", "b", "", "Blacklist file path (overrides config)")
	rulesCmd.Flags().StringVar(&rulesCheck, "check", "", "Report the suppression verdict for a kernel package name")
	rulesCmd.Flags().StringVar(&rulesCheckGroup, "group", "", "Version group for --check (derived from the name when omitted)")
}

// checkVerdict is the JSON shape of a --check result.
type checkVerdict struct {
	Package    string `json:"package"`
	Group      string `json:"group"`
	Suppressed bool   `json:"suppressed"`
	Kind       string `json:"matched_kind,omitempty"`
	Pattern    string `json:"matched_pattern,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := rulesBlacklist
	if path == "" {
		path = cfg.Paths.Blacklist
	}

	rules, err := blacklist.LoadUser(path)
	if err != nil {
		return err
	}

	if rulesCheck != "" {
		return runCheck(rules)
	}

	list := &output.RuleList{}
	for _, r := range rules.Rules {
		list.Entries = append(list.Entries, output.RuleEntry{
			Kind:    string(r.Kind),
			Pattern: r.Pattern,
		})
	}

	format := output.FormatText
	if rulesJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(list, format)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// runCheck evaluates a hypothetical kernel against the rule set and reports
// the verdict with the first matching rule.
func runCheck(rules *blacklist.RuleSet) error {
	group := rulesCheckGroup
	if group == "" {
		group, _ = kernel.MajorVersion(kernel.StripVersion(rulesCheck))
	}

	k := kernel.Kernel{Package: rulesCheck, Group: group}

	verdict := checkVerdict{Package: rulesCheck, Group: group}
	for _, r := range rules.Rules {
		if r.Matches(k) {
			verdict.Suppressed = true
			verdict.Kind = string(r.Kind)
			verdict.Pattern = r.Pattern
			break
		}
	}

	if rulesJSON {
		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if verdict.Suppressed {
		fmt.Printf("%s: suppressed (%s %s)\n", verdict.Package, verdict.Kind, verdict.Pattern)
	} else {
		fmt.Printf("%s: visible\n", verdict.Package)
	}
	return nil
}
