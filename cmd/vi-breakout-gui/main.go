package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-breakout/audio"
	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/input"
	"github.com/lixenwraith/vi-breakout/logging"
	"github.com/lixenwraith/vi-breakout/render/vector"
)

// statusStrip is the height in pixels of the status line below the board
const statusStrip = 20

var (
	configFlag = flag.String("config", "", "YAML config file (defaults when empty)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/")
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	fpsFlag    = flag.Int("fps", 0, "Override the simulation rate (ticks per second)")
)

// Game adapts the simulation to ebiten's Update/Draw loop
// ebiten runs Update at the configured TPS, one simulation tick per Update
type Game struct {
	game       *engine.Game
	surface    *vector.Surface
	controller *input.Controller
	sound      *audio.SoundManager
	logger     *zap.Logger
	width      int
	height     int
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err == nil && *fpsFlag > 0 {
		cfg.Timing.FPS = *fpsFlag
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout-gui: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout-gui: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	g, err := newGame(cfg, logger, *muteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout-gui: %v\n", err)
		os.Exit(1)
	}
	defer g.sound.Cleanup()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("vi-breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Timing.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "vi-breakout-gui: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func newGame(cfg *config.Config, logger *zap.Logger, mute bool) (*Game, error) {
	w, h := int(cfg.Board.Width), int(cfg.Board.Height)
	surface := vector.NewSurface(w, h)

	game, err := engine.NewGame(cfg, surface, nil)
	if err != nil {
		return nil, err
	}
	game.RegisterEventHandler(engine.NewLogHandler(logger))

	sound := audio.NewSoundManager()
	sound.SetMuted(mute)
	if !mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		}
	}
	game.RegisterEventHandler(sound)

	// Real key state: no synthesized release
	controller := input.NewController(game.Paddle(), engine.NewMonotonicTimeProvider(), cfg.Paddle.Speed, 0)

	game.Init()
	return &Game{
		game:       game,
		surface:    surface,
		controller: controller,
		sound:      sound,
		logger:     logger,
		width:      w,
		height:     h + statusStrip,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.Start()
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	switch {
	case left && !right:
		g.controller.Press(-1)
	case right && !left:
		g.controller.Press(1)
	default:
		g.controller.Release()
	}

	g.game.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)

	status := fmt.Sprintf("SCORE %d  LIVES %d  %s", g.game.Score(), g.game.Lives(), g.game.Phase())
	if g.sound.Muted() {
		status += constants.StatusMutedSuffix
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.height-statusStrip+2)
}

// Layout keeps the logical screen at board size plus the status strip; ebiten scales the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
