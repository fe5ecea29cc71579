// Package cmd provides the CLI commands for port-tariff.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"port-tariff/internal/config"
	"port-tariff/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "port-tariff",
	Short: "Deterministic port tariff calculation",
	Long: `port-tariff calculates port call costs from an extracted tariff
rule database.

Given structured vessel parameters it applies the port's tariff rules
deterministically: rule conditions, tonnage bands, component
exclusivity and automatic environmental discounts.

Examples:
  port-tariff calculate --type tankers --gt 5000 --origin EU
  port-tariff calculate --params call.yaml --format json
  port-tariff rules list --rules tariff_rules.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.port-tariff.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("port-tariff version 0.1.0")
	},
}
