package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c9s/semafor/pkg/report"
	"github.com/c9s/semafor/pkg/style"
)

func init() {
	addSourceFlags(ConfigCmd.Flags())
	ConfigCmd.Flags().Int("big", 7, "anchor level of point 1")
	ConfigCmd.Flags().Int("small", 8, "confirmation level of point 2 and 3")
	ConfigCmd.Flags().Float64("maxdist", 10000, "maximum price distance between point 1 and point 2")
	RootCmd.AddCommand(ConfigCmd)
}

// ConfigCmd prints the resolved settings and their validation result
var ConfigCmd = &cobra.Command{
	Use:          "config",
	Short:        "print the resolved scan config",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report.PrintConfig(cfg, cmd.OutOrStdout(), style.NewPlainTableStyle())
		return cfg.Validate()
	},
}
