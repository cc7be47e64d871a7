package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"blueprint/internal/config"
	"blueprint/internal/content"
	"blueprint/internal/logging"
	"blueprint/internal/trace"
	"blueprint/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flags struct {
	configPath    string
	page          string
	reducedMotion bool
	logFile       string
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Browse the studio portfolio in the terminal",
	Long: `blueprint is a terminal rendition of an architecture studio site.

The About, Contact and Dynamite pages are desks of floating windows that
reveal one by one and can be dragged by their title bars. Projects, Awards
and News are lists that open a detail view.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

var printConfigCmd = &cobra.Command{
	Use:   "print-config",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return config.Print(cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $BLUEPRINT_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&opts.page, "page", "", "page to open first (home, about, projects, awards, news, contact, dynamite)")
	rootCmd.PersistentFlags().BoolVar(&opts.reducedMotion, "reduced-motion", false, "pin windows in place and disable dragging")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.AddCommand(printConfigCmd)
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("page") {
		if _, ok := ui.ParseMode(opts.page); !ok {
			return nil, fmt.Errorf("unknown page %q", opts.page)
		}
		cfg.StartPage = opts.page
	}
	if fs.Changed("reduced-motion") {
		cfg.ReducedMotion = opts.reducedMotion
	}
	if fs.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	rec, err := trace.NewRecorder(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		rec = trace.NewNoopRecorder()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	lib, err := content.Load()
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	app := ui.NewAppModel(ui.Options{
		Config:   cfg,
		Library:  lib,
		Logger:   logger,
		Recorder: rec,
	})
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	app.Send = p.Send

	logger.Info("starting", zap.String("page", cfg.StartPage), zap.Bool("reduced_motion", cfg.ReducedMotion))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
