package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calcnerd/cmd/calc/tui"
	"calcnerd/cmd/calc/ui"
	"calcnerd/internal/logging"
	"calcnerd/internal/session"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the calculator in a full-screen terminal UI",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

// runInteractive runs the line-based loop on the command's stdin/stdout.
func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	out := cmd.OutOrStdout()
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme), out)
	err = session.Run(ctx, s, cmd.InOrStdin(), out, styles)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		logging.For(logger, logging.CategoryCLI).Info("session interrupted",
			zap.String("session_id", s.ID()), zap.Int("cycles", s.Cycles()))
		fmt.Fprintln(out)
		return nil
	default:
		logging.For(logger, logging.CategoryCLI).Error("session aborted",
			zap.String("session_id", s.ID()), zap.Error(err))
		return fmt.Errorf("calculator aborted: %w", err)
	}
}

// runTUI runs the same session through bubbletea.
func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	m := tui.New(s, ui.NewStyles(ui.ThemeByName(cfg.Theme), out), logging.For(logger, logging.CategoryTUI))
	if _, err := tui.Run(commandContext(cmd), m, cmd.InOrStdin(), out); err != nil {
		logging.For(logger, logging.CategoryCLI).Error("tui aborted",
			zap.String("session_id", s.ID()), zap.Error(err))
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
