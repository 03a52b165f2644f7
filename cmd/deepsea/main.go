//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mattn/go-isatty"

	"deepsea/internal/app"
	"deepsea/internal/logging"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	boot := logging.Setup(os.Stderr, "info", isatty.IsTerminal(os.Stderr.Fd()))
	if err := cfg.LoadSettings(flag.CommandLine); err != nil {
		boot.Fatal().Err(err).Msg("invalid settings")
	}

	var out io.Writer = os.Stderr
	color := isatty.IsTerminal(os.Stderr.Fd())
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			boot.Fatal().Err(err).Str("path", cfg.LogFile).Msg("open log file")
		}
		defer f.Close()
		out, color = f, false
	}
	log := logging.Setup(out, cfg.LogLevel, color)

	session, err := app.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start session")
	}
	defer session.Close()

	game := app.New(session, cfg, log)

	ebiten.SetWindowTitle("deepsea: " + session.World.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop")
		return
	}
	log.Info().Msg("bye")
}
