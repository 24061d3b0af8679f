package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableside/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tableside",
	Short: "Restaurant reservations and QR table ordering",
	Long: `tableside serves the restaurant catalog, the reservation wizard and
QR table ordering over HTTP, and prints table QR codes for the seeded restaurants.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (environment variables override it)")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().String("public-base-url", "http://localhost:8080", "base URL encoded into table QR codes")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("public_base_url", rootCmd.PersistentFlags().Lookup("public-base-url"))

	rootCmd.AddCommand(serveCmd, qrcodesCmd)
}

// setup loads configuration and installs the global logger.
func setup() (*config.Config, func(), error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.InitLogger(cfg.LogLevel, cfg.LogMode)
	if err != nil {
		return nil, nil, err
	}
	if cfgFile != "" {
		zap.S().Infow("using config file", "path", cfgFile)
	}
	return cfg, func() { _ = logger.Sync() }, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
