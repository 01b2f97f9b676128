package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c9s/semafor/pkg/report"
	"github.com/c9s/semafor/pkg/scanner"
)

func init() {
	addSourceFlags(LevelsCmd.Flags())
	LevelsCmd.Flags().Bool("no-color", false, "disable colored output")
	RootCmd.AddCommand(LevelsCmd)
}

var LevelsCmd = &cobra.Command{
	Use:          "levels",
	Short:        "print the pivot counts of every semafor level",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// levels does not scan triangles, only the source and the periods matter
		cfg.BigLevel, cfg.SmallLevel = 1, 1
		if err := cfg.Validate(); err != nil {
			return err
		}

		noColor, err := cmd.Flags().GetBool("no-color")
		if err != nil {
			return err
		}

		series, err := scanner.LoadSeries(cfg)
		if err != nil {
			return err
		}

		levels, err := scanner.New(scanner.OptionsFromConfig(cfg)).Levels(cmd.Context(), series)
		if err != nil {
			return err
		}

		report.PrintLevels(cmd.OutOrStdout(), levels, !noColor && !color.NoColor)
		return nil
	},
}
