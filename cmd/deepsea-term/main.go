package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"deepsea/internal/app"
	"deepsea/internal/logging"
	"deepsea/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "deepsea-term:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.LogFile = "deepsea-term.log"
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.LoadSettings(flag.CommandLine); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	// The screen owns stdout, so logs always go to a file.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logging.Setup(out, cfg.LogLevel, false)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	session, err := app.NewSession(cfg, log)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.New(screen, session, cfg.TPS, log).Run(ctx)
	logExit(log, err)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func logExit(log zerolog.Logger, err error) {
	if err != nil {
		log.Info().Err(err).Msg("terminal loop stopped")
		return
	}
	log.Info().Msg("bye")
}
