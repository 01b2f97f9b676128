package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/semafor/pkg/config"
)

// ExitCodeNotEnoughPeriods is returned when the selected levels have no period configured
const ExitCodeNotEnoughPeriods = 2

var RootCmd = &cobra.Command{
	Use:   "semafor",
	Short: "semafor zigzag levels and 1-2-3 triangle scanner",
	Long:  "compute multi-depth zigzag pivot levels from OHLC bars and scan them for 1-2-3 triangles",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotenv(viper.GetString("dotenv")); err != nil {
			return err
		}

		setupLogging(log.StandardLogger(), GetCurrentEnv(), viper.GetBool("debug"), viper.GetString("log-dir"))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")
	RootCmd.PersistentFlags().String("log-dir", "log", "directory of the rotated json log in production")
}

func loadDotenv(dotenvFile string) error {
	if dotenvFile == "" {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		return nil
	}

	if err := godotenv.Load(dotenvFile); err != nil {
		log.WithError(err).Error("error loading dotenv file")
		return err
	}

	return nil
}

// ExitCode maps the command error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrNotEnoughPeriods):
		return ExitCodeNotEnoughPeriods
	}
	return 1
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix("semafor")

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	log.SetFormatter(NewLogFormatterWithEnv(GetCurrentEnv()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		log.WithError(err).Error("cannot execute command")
		os.Exit(ExitCode(err))
	}
}
