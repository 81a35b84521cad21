package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kernelvet/kernelvet/internal/output"
	"github.com/kernelvet/kernelvet/internal/support"
)

var supportJSON bool

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "Show the kernel support timeline",
	Long:  `Display how long each known kernel series is supported by its origin.`,
	Args:  cobra.NoArgs,
	RunE:  runSupport,
}

func init() {
	supportCmd.Flags().BoolVarP(&supportJSON, "json", "j", false, "Output in JSON format")
}

func runSupport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	timeline, err := support.LoadFile(cfg.Paths.Support)
	if err != nil {
		return err
	}

	now := time.Now()
	list := &output.SupportList{}
	for _, e := range timeline.Entries {
		months := e.MonthsRemaining(now)
		list.Entries = append(list.Entries, output.SupportEntry{
			Origin:  e.Origin,
			Version: e.Version,
			Until:   output.UntilString(e.Month, e.Year),
			Months:  months,
			State:   support.Describe(months),
		})
	}

	format := output.FormatText
	if supportJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(list, format)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Println(result)
	}
	return nil
}
