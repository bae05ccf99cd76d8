// Package main provides the calcnerd CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calcnerd/internal/config"
	"calcnerd/internal/locale"
	"calcnerd/internal/logging"
	"calcnerd/internal/session"
)

var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string
	language   string
	theme      string
	logFile    string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive arithmetic calculator",
	Long: `calc repeatedly asks for an operation (1-5), reads two numbers,
prints the result and asks whether to continue.

Operations: 1 addition, 2 subtraction, 3 multiplication, 4 division,
5 exponentiation. Type 'exit' (or 'выход') to leave.

Run without arguments for the line-based loop, or "calc tui" for the
full-screen interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the calc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calc %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .calcnerd/config.yaml, then $HOME)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Message language (ru, en)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Output theme (auto, light, dark, plain)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = config.ResolvePath()
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if language != "" {
		loaded.Language = language
	}
	if theme != "" {
		loaded.Theme = theme
	}
	if logFile != "" {
		loaded.Logging.File = logFile
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	l, err := logging.New(loaded.Logging, verbose)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logging.For(logger, logging.CategoryBoot).Debug("config loaded",
		zap.String("path", configPath),
		zap.String("language", cfg.Language),
		zap.String("theme", cfg.Theme),
		zap.String("command", cmd.Name()),
	)
	return nil
}

// newSession builds a session from the loaded config.
func newSession() (*session.Session, error) {
	msgs, err := locale.LookupFor(locale.Language(cfg.Language), cfg.QuitWords, cfg.ConfirmWords)
	if err != nil {
		return nil, err
	}
	return session.New(msgs,
		session.WithLogger(logging.For(logger, logging.CategorySession)),
		session.WithKeywords(session.Keywords{Quit: cfg.QuitWords, Confirm: cfg.ConfirmWords}),
	), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
