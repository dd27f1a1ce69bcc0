package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/pkg/export"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/qa/scenarios"
)

var (
	scenarioPath string
	outFormat    string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Sequence the stops of a scenario file",
	RunE:  runOptimize,
}

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Pick the best vehicle and driver for a scenario file",
	RunE:  runAssign,
}

func init() {
	for _, c := range []*cobra.Command{optimizeCmd, assignCmd} {
		c.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (YAML)")
		_ = c.MarkFlagRequired("scenario")
		rootCmd.AddCommand(c)
	}
	optimizeCmd.Flags().StringVarP(&outFormat, "format", "f", "json", "output format: json, csv or timeline")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	switch outFormat {
	case "json", "csv", "timeline":
	default:
		return fmt.Errorf("unknown format %q", outFormat)
	}
	out, sc, err := playScenario(cmd)
	if err != nil {
		return err
	}
	if out.Route == nil {
		return fmt.Errorf("scenario %s has no stops", sc.Name)
	}
	w := cmd.OutOrStdout()
	switch outFormat {
	case "csv":
		return export.WriteCSV(w, out.Route.Route)
	case "timeline":
		if out.Route.Route.Compliance == nil {
			return nil
		}
		return export.WriteTimelineCSV(w, out.Route.Route.Compliance.Periods)
	default:
		return export.WriteJSON(w, out.Route)
	}
}

func runAssign(cmd *cobra.Command, args []string) error {
	out, sc, err := playScenario(cmd)
	if err != nil {
		return err
	}
	if !sc.HasAssignment() {
		return fmt.Errorf("scenario %s has no vehicles or drivers", sc.Name)
	}
	if out.Assignment == nil {
		return fmt.Errorf("scenario %s: no compatible vehicle and driver", sc.Name)
	}
	return export.WriteJSON(cmd.OutOrStdout(), out.Assignment)
}

func playScenario(cmd *cobra.Command) (*scenarios.Outcome, *scenarios.Scenario, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	defaults, err := cfg.Routing.Constraints()
	if err != nil {
		return nil, nil, err
	}
	sc, err := scenarios.Load(scenarioPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load scenario: %w", err)
	}
	out, err := scenarios.Run(cmd.Context(), sc, defaults)
	if err != nil {
		return nil, nil, err
	}
	return out, sc, nil
}
