package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-breakout/audio"
	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/input"
	"github.com/lixenwraith/vi-breakout/logging"
	"github.com/lixenwraith/vi-breakout/render"
)

var (
	configFlag = flag.String("config", "", "YAML config file (defaults when empty)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/")
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	fpsFlag    = flag.Int("fps", 0, "Override the simulation rate (ticks per second)")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag, *fpsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout: %v\n", err)
		os.Exit(1)
	}

	keys, err := input.LoadKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := func(r any) {
		screen.Fini()
		logger.Error("crash", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
		closeLog()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-BREAKOUT CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	err = run(screen, cfg, keys, logger, *muteFlag, crash)
	screen.Fini()
	if err != nil {
		logger.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "vi-breakout: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the fps override
func loadConfig(path string, fps int) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if fps > 0 {
		cfg.Timing.FPS = fps
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// run wires the game to the terminal and blocks until quit
// crash is called with the recovered value when a goroutine panics
func run(screen tcell.Screen, cfg *config.Config, keys *input.KeyTable, logger *zap.Logger, mute bool, crash func(any)) error {
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbTerminalBg))

	renderer := render.NewTerminalRenderer(screen, cfg.Board.Width, cfg.Board.Height)
	game, err := engine.NewGame(cfg, renderer.Canvas(), renderer)
	if err != nil {
		return err
	}
	game.RegisterEventHandler(engine.NewLogHandler(logger))

	sound := audio.NewSoundManager()
	sound.SetMuted(mute)
	if !mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}
	game.RegisterEventHandler(sound)

	clock := engine.NewMonotonicTimeProvider()
	controller := input.NewController(game.Paddle(), clock, cfg.Paddle.Speed, cfg.Timing.KeyReleaseDelay)
	scheduler := engine.NewClockScheduler(game, clock, cfg.TickInterval())
	scheduler.BeforeTick(controller.Update)

	logger.Info("session started",
		zap.Float64("board_width", cfg.Board.Width),
		zap.Float64("board_height", cfg.Board.Height),
		zap.Int("fps", cfg.Timing.FPS),
		zap.Int("blocks", game.Wall().Len()),
	)

	present := func() {
		renderer.SetStatus(statusText(game, sound.Muted()))
		renderer.RenderFrame()
	}

	game.Init()
	present()

	eventChan := make(chan tcell.Event, 64)
	g, gctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer recoverWith(crash)
		forwardEvents(ctx, screen.PollEvent, eventChan)
		return nil
	})

	g.Go(func() error {
		defer recoverWith(crash)
		defer screen.Fini()
		// Releases the poller when it is parked on a full channel
		defer cancel()

		ticker := time.NewTicker(scheduler.TickInterval())
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev := <-eventChan:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
					renderer.Resize()
					game.Render()
					present()

				case *tcell.EventKey:
					switch controller.Handle(keys.Lookup(ev)) {
					case input.IntentQuit:
						logger.Info("quit", zap.Int("score", game.Score()), zap.Int("lives", game.Lives()))
						return nil
					case input.IntentStart:
						if game.Start() {
							present()
						}
					case input.IntentToggleMute:
						muted := sound.ToggleMute()
						logger.Debug("mute toggled", zap.Bool("muted", muted))
						present()
					}
				}

			case <-ticker.C:
				if scheduler.Advance() > 0 {
					present()
				}
			}
		}
	})

	return g.Wait()
}

// forwardEvents moves polled events onto out until poll returns nil or ctx ends
// Game state stays on the loop goroutine; PollEvent returns nil once the screen is finalized
func forwardEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// recoverWith hands a goroutine panic to crash
func recoverWith(crash func(any)) {
	if r := recover(); r != nil {
		crash(r)
	}
}
