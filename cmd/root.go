package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"shutter/internal/config"
	"shutter/internal/log"
)

var (
	configPath string
	logLevel   string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shutter",
	Short: "shutter 📷 - acquire a photo and hand it back as data or a file",
	Long:  "shutter 📷 picks a photo from a library or a camera, resizes and orients it, and returns it as inline JPEG data or a temporary file.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath, nil)
		if err != nil {
			return err
		}
		if logLevel != "" {
			level, err := config.NormalizeLogLevel(logLevel)
			if err != nil {
				return err
			}
			loaded.Log.Level = level
		}
		cfg = loaded
		log.SetLevel(cfg.Log.Level)
		log.Debugf("config loaded from %s, log level %s", cfg.Source, log.Level())
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
