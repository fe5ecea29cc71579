// Package cmd - calculate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"port-tariff/core/engine"
	"port-tariff/core/loader"
	"port-tariff/core/output"
	"port-tariff/core/types"
	"port-tariff/internal/config"
)

var (
	rulesPath    string
	outputFormat string
	paramsFile   string

	flagVesselType string
	flagGT         float64
	flagDWT        float64
	flagVolume     float64
	flagTonnage    float64
	flagLOA        float64
	flagPassengers int
	flagTEU        int
	flagOrigin     string
	flagSludge     float64
	flagCalls      int
	flagESI        float64
	flagOPS        bool
	flagInland     bool
	flagWasteCert  bool
	flagFossilFree float64
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate the tariff for a port call",
	Long: `Calculate the tariff for one port call from vessel parameters.

Parameters can be given as flags or as a YAML file; flags override
file values when both are set.

Examples:
  port-tariff calculate --type tankers --gt 5000 --origin EU
  port-tariff calculate --type cruise_vessels --gt 80000 --passengers 2400 --esi 42
  port-tariff calculate --params call.yaml --format json`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVar(&rulesPath, "rules", "", "rule database file (.json or .hcl)")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	calculateCmd.Flags().StringVarP(&paramsFile, "params", "p", "", "YAML file with vessel parameters")

	calculateCmd.Flags().StringVar(&flagVesselType, "type", "", "vessel type (e.g. tankers, yachts)")
	calculateCmd.Flags().Float64Var(&flagGT, "gt", 0, "gross tonnage")
	calculateCmd.Flags().Float64Var(&flagDWT, "dwt", 0, "deadweight tonnage")
	calculateCmd.Flags().Float64Var(&flagVolume, "volume", 0, "volume in cubic metres")
	calculateCmd.Flags().Float64Var(&flagTonnage, "tonnage", 0, "cargo tonnage")
	calculateCmd.Flags().Float64Var(&flagLOA, "loa", 0, "length overall in metres")
	calculateCmd.Flags().IntVar(&flagPassengers, "passengers", 0, "passenger count")
	calculateCmd.Flags().IntVar(&flagTEU, "teu", 0, "container count in TEU")
	calculateCmd.Flags().StringVar(&flagOrigin, "origin", "", "arrival origin (EU or non-EU)")
	calculateCmd.Flags().Float64Var(&flagSludge, "sludge", 0, "sludge volume in cubic metres")
	calculateCmd.Flags().IntVar(&flagCalls, "calls-per-week", 0, "calls per week on service")
	calculateCmd.Flags().Float64Var(&flagESI, "esi", 0, "Environmental Ship Index score")
	calculateCmd.Flags().BoolVar(&flagOPS, "ops", false, "onshore power supply used")
	calculateCmd.Flags().BoolVar(&flagInland, "inland", false, "inland waterway traffic")
	calculateCmd.Flags().BoolVar(&flagWasteCert, "waste-cert", false, "valid waste discount certificate")
	calculateCmd.Flags().Float64Var(&flagFossilFree, "fossil-free-share", 0, "fossil-free fuel share (0-1)")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	params, err := buildParameters(cmd)
	if err != nil {
		return err
	}
	if params.VesselType == "" {
		return fmt.Errorf("vessel type is required (--type or params file)")
	}
	if !params.VesselType.Valid() {
		return fmt.Errorf("unknown vessel type: %s", params.VesselType)
	}

	path := rulesPath
	if path == "" {
		path = cfg.Rules.Path
	}
	db, err := loader.Load(path)
	if err != nil {
		return err
	}

	calc := engine.New(db, cfg.Engine)
	result := calc.Calculate(params)

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.New(format, cfg.Output.ShowDetails)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}

// buildParameters merges the params file (if any) with explicit flags;
// a flag changed on the command line wins
func buildParameters(cmd *cobra.Command) (*types.VesselParameters, error) {
	params := &types.VesselParameters{}

	if paramsFile != "" {
		data, err := os.ReadFile(paramsFile)
		if err != nil {
			return nil, fmt.Errorf("reading params file: %w", err)
		}
		if err := yaml.Unmarshal(data, params); err != nil {
			return nil, fmt.Errorf("parsing params file: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		params.VesselType = types.VesselType(flagVesselType)
	}
	if flags.Changed("gt") {
		params.GT = flagGT
	}
	if flags.Changed("dwt") {
		params.DWT = flagDWT
	}
	if flags.Changed("volume") {
		params.VolumeM3 = flagVolume
	}
	if flags.Changed("tonnage") {
		params.Tonnage = flagTonnage
	}
	if flags.Changed("loa") {
		params.LOAMetres = flagLOA
	}
	if flags.Changed("passengers") {
		params.PassengerCount = flagPassengers
	}
	if flags.Changed("teu") {
		params.TEU = flagTEU
	}
	if flags.Changed("origin") {
		params.ArrivalOrigin = &flagOrigin
	}
	if flags.Changed("sludge") {
		params.SludgeVolume = &flagSludge
	}
	if flags.Changed("calls-per-week") {
		params.CallsPerWeek = &flagCalls
	}
	if flags.Changed("esi") {
		params.ESIScore = &flagESI
	}
	if flags.Changed("ops") {
		params.UseOPS = &flagOPS
	}
	if flags.Changed("inland") {
		params.IsInlandWaterway = &flagInland
	}
	if flags.Changed("waste-cert") {
		params.WasteCertificate = &flagWasteCert
	}
	if flags.Changed("fossil-free-share") {
		params.FossilFreeFuelShare = &flagFossilFree
	}

	return params, nil
}
