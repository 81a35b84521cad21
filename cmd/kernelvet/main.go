package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kernelvet/kernelvet/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes.
const (
	ExitOK         = 0
	ExitInputError = 2
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "kernelvet",
	Short: "List Linux kernel packages with blacklist-based suppression",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/kernelvet/config)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(supportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves and loads the user configuration.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitInputError)
	}
}
