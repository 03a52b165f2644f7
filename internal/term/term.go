package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"deepsea/internal/app"
	"deepsea/internal/core"
)

// App runs a dive session on a terminal screen.
type App struct {
	screen   tcell.Screen
	session  *app.Session
	controls *Controls
	view     *View
	clock    *core.Clock
	pacer    *core.FixedStep
	tick     time.Duration
	log      zerolog.Logger
}

// New wires a session to an initialised screen.
func New(screen tcell.Screen, s *app.Session, tps int, log zerolog.Logger) *App {
	if tps <= 0 {
		tps = 60
	}
	return &App{
		screen:   screen,
		session:  s,
		controls: NewControls(tps / 5),
		view:     NewView(screen, s.Panel),
		clock:    core.NewClock(tps),
		pacer:    core.NewFixedStep(tps),
		tick:     time.Second / time.Duration(tps),
		log:      log,
	}
}

// Step advances one frame and repaints.
func (a *App) Step() {
	a.advance()
	a.draw()
}

func (a *App) advance() {
	a.session.World.Step(a.clock.Next(a.controls.Input()))
	a.session.Panel.Update()
}

func (a *App) draw() {
	a.view.Draw(a.session.World, a.controls.Engaged())
	a.screen.Show()
}

// Handle applies one screen event. It returns false when the user quits.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.controls.Handle(ev) {
		case CmdQuit:
			return false
		case CmdReset:
			a.session.Reset()
			a.clock.Reset()
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Run polls events on a goroutine and steps on a ticker until the user quits
// or ctx is cancelled. Late ticks are caught up by the fixed-step pacer.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.log.Info().Dur("tick", a.tick).Msg("terminal loop started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.Handle(ev) {
				a.log.Info().Uint64("tick", a.session.World.Tick()).Msg("quit requested")
				return nil
			}
		case <-ticker.C:
			n := a.pacer.Due()
			for i := 0; i < n; i++ {
				a.advance()
			}
			if n > 0 {
				a.draw()
			}
		}
	}
}
