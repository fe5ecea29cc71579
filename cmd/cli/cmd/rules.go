// Package cmd - rules command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"port-tariff/core/loader"
	"port-tariff/core/types"
	"port-tariff/internal/config"
)

var (
	rulesListVesselType string
	rulesListComponent  string
)

// rulesCmd groups rule database inspection commands
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the tariff rule database",
}

// rulesListCmd lists loaded rules
var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tariff rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := loadRules()
		if err != nil {
			return err
		}

		rules := db.RulesFor(types.VesselType(rulesListVesselType), types.TariffComponent(rulesListComponent))

		fmt.Printf("%s, tariff version %s (%d rules)\n\n", db.PortName, db.Version, len(rules))
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VESSEL TYPE\tCOMPONENT\tMETHOD\tBANDS\tCONDITIONS")
		for _, rule := range rules {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n",
				rule.VesselType, rule.Component, rule.ChargingMethod,
				len(rule.Bands), len(rule.Conditions))
		}
		return tw.Flush()
	},
}

// rulesValidateCmd loads the database and reports what survived
var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rule database file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := loadRules()
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d rules loaded for %s (version %s)\n", db.Len(), db.PortName, db.Version)
		return nil
	},
}

func loadRules() (*types.TariffDatabase, error) {
	path := rulesPath
	if path == "" {
		path = config.Get().Rules.Path
	}
	return loader.Load(path)
}

func init() {
	rulesCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "rule database file (.json or .hcl)")
	rulesListCmd.Flags().StringVar(&rulesListVesselType, "type", "", "filter by vessel type")
	rulesListCmd.Flags().StringVar(&rulesListComponent, "component", "", "filter by component")

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
}
