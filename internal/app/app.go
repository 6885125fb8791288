package app

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/pingpong/internal/audio"
	"github.com/diegok/pingpong/internal/config"
	"github.com/diegok/pingpong/internal/game"
	"github.com/diegok/pingpong/internal/ui"
)

// App wires the terminal, the game state, input and sound together and owns
// all of them for the lifetime of a session.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	logFile  io.Closer
	screen   *ui.Screen
	renderer *ui.Renderer
	sounds   *audio.Player

	state *game.GameState
	input *game.InputTracker
	hold  *ui.Hold
	frame int

	audioArmed bool
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: log.New(io.Discard, "", 0),
	}
}

// Run opens the terminal and plays until the user quits or a signal arrives.
func (a *App) Run() error {
	if err := a.openLog(); err != nil {
		return err
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.closeLog()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.attach(screen)
	defer a.cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := time.Second / time.Duration(a.cfg.FPS)
	driver := NewDriver(interval, a.pollEvents(ctx), a.handleEvent, a.step)

	a.logger.Printf("started: court %.0fx%.0f, %d fps", a.state.Dims.Width, a.state.Dims.Height, a.cfg.FPS)
	return driver.Run(ctx)
}

// attach builds the session around screen
func (a *App) attach(screen *ui.Screen) {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.sounds = audio.NewPlayer(a.logger, a.cfg.Mute)
	a.input = game.NewInputTracker()
	a.hold = ui.NewHold(a.input, a.cfg.HoldFrames)
	a.state = game.NewGameState(ui.ViewportDims(screen), rand.New(rand.NewSource(seed)))
}

// pollEvents forwards screen events until the screen is finalized
func (a *App) pollEvents(ctx context.Context) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// step runs one frame: release stale keys, simulate, play cues, draw.
func (a *App) step() {
	a.frame++
	a.hold.Expire(a.frame)
	a.dispatch(game.Step(a.state, a.input))
	a.renderer.Render(a.state)
}

func (a *App) dispatch(events []game.Event) {
	for _, ev := range events {
		if ev == game.EventScore {
			a.logger.Printf("score: %d-%d", a.state.Score.Player1, a.state.Score.Player2)
		}
		a.sounds.Handle(ev)
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		a.handleResize()
	}
	return false
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if ui.IsQuitKey(key, r) {
		return true
	}

	id, ok := ui.KeyID(key, r)
	if !ok {
		return false
	}
	a.armAudio()

	// The toggle reacts to the press itself, never to the held state
	if fresh := a.hold.Press(id, a.frame); fresh && id == game.KeyToggle {
		prev := a.state.Phase
		a.dispatch(a.state.Toggle())
		a.logger.Printf("phase: %v -> %v", prev, a.state.Phase)
	}
	return false
}

// handleResize refits the court. Resizing always restarts the rally, and
// keys held before it are dropped.
func (a *App) handleResize() {
	dims := ui.ViewportDims(a.screen)
	a.state.Resize(dims)
	a.hold.Release()
	a.logger.Printf("resized: court %.0fx%.0f", dims.Width, dims.Height)
}

// armAudio initializes sound on the first key press. Failure leaves the game
// silent; Init has already logged it.
func (a *App) armAudio() {
	if a.audioArmed {
		return
	}
	a.audioArmed = true
	_ = a.sounds.Init()
}

func (a *App) openLog() error {
	if a.cfg.LogFile == "" {
		return nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	a.logFile = f
	a.logger = log.New(f, "pingpong ", log.LstdFlags|log.Lmicroseconds)
	return nil
}

func (a *App) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.sounds.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	a.logger.Printf("stopped after %d frames, score %d-%d", a.frame, a.state.Score.Player1, a.state.Score.Player2)
	a.closeLog()
}
