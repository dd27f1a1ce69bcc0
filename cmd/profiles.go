package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/compat"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/speed"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List speed, consumption and capacity per vehicle category",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "CATEGORY\tURBAN\tSUBURBAN\tHIGHWAY\tAVERAGE\tL/100KM\tMAX KG\tMAX M3\tRSE"); err != nil {
			return fmt.Errorf("write profiles: %w", err)
		}
		for _, c := range model.AllCategories() {
			p := speed.ProfileFor(c)
			capa := compat.CapacityFor(c)
			if _, err := fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%.1f\t%.1f\t%.0f\t%.0f\t%t\n",
				c, p.UrbanKmh, p.SuburbanKmh, p.HighwayKmh, speed.AverageSpeed(c),
				p.LitersPer100Km, capa.MaxWeightKg, capa.MaxVolumeM3, c.IsHeavy()); err != nil {
				return fmt.Errorf("write profiles: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("write profiles: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
