package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kernelvet/kernelvet/internal/blacklist"
	"github.com/kernelvet/kernelvet/internal/filter"
	"github.com/kernelvet/kernelvet/internal/kernel"
	"github.com/kernelvet/kernelvet/internal/output"
	"github.com/kernelvet/kernelvet/internal/support"
)

var (
	listJSON        bool
	listFilter      string
	listWide        bool
	listInventory   string
	listBlacklist   string
	listNoBlacklist bool
	listWatch       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List kernels from the inventory",
	Long:  `Display the kernel inventory with blacklisted entries suppressed.`,
	Args:  cobra.NoArgs,
	Example: `  kernelvet list
  kernelvet list -j
  kernelvet list -f 'group=4.4'
  kernelvet list -f 'version>=4.15,installed' --watch`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Filter expression (e.g., group=4.4,installed)")
	listCmd.Flags().BoolVarP(&listWide, "wide", "w", false, "Include package origins in the output")
	listCmd.Flags().StringVarP(&listInventory, "inventory", "i", "", "Inventory CSV path (overrides config)")
	listCmd.Flags().StringVarP(&listBlacklist, "blacklist", "b", "", "Blacklist file path (overrides config)")
	listCmd.Flags().BoolVar(&listNoBlacklist, "no-blacklist", false, "Show suppressed kernels too")
	listCmd.Flags().BoolVar(&listWatch, "watch", false, "Re-render when the blacklist file changes")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inventoryPath := listInventory
	if inventoryPath == "" {
		inventoryPath = cfg.Paths.Inventory
	}
	blacklistPath := listBlacklist
	if blacklistPath == "" {
		blacklistPath = cfg.Paths.Blacklist
	}

	// Parse filter
	var f *filter.Filter
	if listFilter != "" {
		f, err = filter.Parse(listFilter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	timeline, err := support.LoadFile(cfg.Paths.Support)
	if err != nil {
		return err
	}
	hidden := cfg.HiddenSet()

	render := func(rules *blacklist.RuleSet) error {
		kernels, err := kernel.LoadInventory(inventoryPath)
		if err != nil {
			return err
		}

		// Hidden kernels leave the pipeline here; the blacklist never
		// sees them.
		visible := make([]kernel.Kernel, 0, len(kernels))
		for _, k := range kernels {
			if !hidden[k.Package] {
				visible = append(visible, k)
			}
		}

		if !listNoBlacklist {
			visible = blacklist.Apply(visible, rules)
		}
		visible = filter.FilterKernels(visible, f)

		list := &output.KernelList{
			Entries: buildKernelEntries(visible, timeline),
			Wide:    listWide,
		}
		format := output.FormatText
		if listJSON {
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

	// Seed the user blacklist on first use, then load it.
	rules, err := blacklist.LoadUser(blacklistPath)
	if err != nil {
		return err
	}

	if !listWatch {
		return render(rules)
	}
	return watchAndRender(cmd.Context(), blacklistPath, render)
}

// watchAndRender renders once, then again after every blacklist reload,
// until interrupted.
func watchAndRender(parent context.Context, blacklistPath string, render func(*blacklist.RuleSet) error) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	holder, err := blacklist.NewHolder(blacklistPath)
	if err != nil {
		return err
	}

	updates := make(chan *blacklist.RuleSet, 1)
	holder.RegisterListener(updates)
	if err := holder.Watch(ctx); err != nil {
		return err
	}

	if err := render(holder.Get()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case rules := <-updates:
			fmt.Println()
			if err := render(rules); err != nil {
				return err
			}
		}
	}
}

// buildKernelEntries converts kernels to list entries for output.
func buildKernelEntries(kernels []kernel.Kernel, timeline *support.Timeline) []output.KernelEntry {
	now := time.Now()
	entries := make([]output.KernelEntry, 0, len(kernels))

	for _, k := range kernels {
		supportText := ""
		if entry, ok := timeline.Lookup(k.Origins, k.Group); ok {
			supportText = support.Describe(entry.MonthsRemaining(now))
		}

		entries = append(entries, output.KernelEntry{
			Group:      k.Group,
			Package:    k.Package,
			Version:    k.Version,
			PkgVersion: k.PkgVersion,
			Status:     k.Status(),
			Size:       k.Size,
			Support:    supportText,
			Origins:    k.Origins,
		})
	}
	return entries
}
