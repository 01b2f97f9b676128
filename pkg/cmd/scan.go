package cmd

import (
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/semafor/pkg/chart"
	"github.com/c9s/semafor/pkg/metrics"
	"github.com/c9s/semafor/pkg/report"
	"github.com/c9s/semafor/pkg/scanner"
)

func init() {
	addSourceFlags(ScanCmd.Flags())
	ScanCmd.Flags().Int("big", 7, "anchor level of point 1")
	ScanCmd.Flags().Int("small", 8, "confirmation level of point 2 and 3")
	ScanCmd.Flags().Float64("maxdist", 10000, "maximum price distance between point 1 and point 2")
	ScanCmd.Flags().Bool("plot", false, "render the triangles into a png file")
	ScanCmd.Flags().String("out", "", "png output path, implies --plot")
	ScanCmd.Flags().String("output", string(report.FormatText), "output format: text, table or csv")
	ScanCmd.Flags().Bool("no-color", false, "disable colored output")
	ScanCmd.Flags().String("metrics-textfile", "", "write the prometheus metrics into this file after the scan")
	RootCmd.AddCommand(ScanCmd)
}

// semafor scan --csv data/EURUSD_M15.csv --big 7 --small 8 --plot
var ScanCmd = &cobra.Command{
	Use:          "scan",
	Short:        "scan 1-2-3 triangles between two semafor levels",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

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

		result, err := scanner.New(scanner.OptionsFromConfig(cfg)).Scan(cmd.Context(), series)
		if err != nil {
			return err
		}

		if err := report.PrintTriangles(cmd.OutOrStdout(), result.Triangles, report.Options{
			Format:    report.Format(cfg.Output),
			WithColor: !noColor && !color.NoColor,
			Series:    &result.Series,
		}); err != nil {
			return err
		}

		if metricsFile, _ := cmd.Flags().GetString("metrics-textfile"); metricsFile != "" {
			if err := metrics.WriteTextfile(metricsFile); err != nil {
				return errors.Wrapf(err, "can not write metrics to %s", metricsFile)
			}
		}

		if !cfg.Plot && cfg.OutPath == "" {
			return nil
		}

		outPath := cfg.OutPath
		if outPath == "" {
			outPath = chart.DefaultOutPath
		}

		if err := chart.RenderTrianglesToFile(outPath, result.Series, result.Triangles, chart.Options{
			Title: chart.Title(cfg.Symbol, cfg.Timeframe),
		}); err != nil {
			return err
		}

		log.Infof("chart saved to %s", outPath)
		return nil
	},
}
