package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/render"
)

// Display receives score and lives after every change
type Display interface {
	ShowScore(score int)
	ShowLives(lives int)
}

type nopDisplay struct{}

func (nopDisplay) ShowScore(int) {}
func (nopDisplay) ShowLives(int) {}

// Game owns the simulation: score, lives, the wall and the ball of the current round
// The paddle lives for the whole session
// All methods must be called from the game loop goroutine
type Game struct {
	cfg     *config.Config
	surface render.Surface
	display Display

	paddle *components.Paddle
	ball   *components.Ball
	wall   *components.Wall

	phase Phase
	score int
	lives int
	frame uint64

	events *EventQueue
	router *EventRouter
}

// NewGame validates cfg and builds the paddle and the wall
// A nil display discards score and lives updates
func NewGame(cfg *config.Config, surface render.Surface, display Display) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	wall, err := components.NewWall(cfg)
	if err != nil {
		return nil, err
	}

	return newGame(cfg, surface, display, wall), nil
}

// NewGameWithWall uses an explicit wall instead of the configured grid
func NewGameWithWall(cfg *config.Config, surface render.Surface, display Display, wall *components.Wall) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return newGame(cfg, surface, display, wall), nil
}

func newGame(cfg *config.Config, surface render.Surface, display Display, wall *components.Wall) *Game {
	if display == nil {
		display = nopDisplay{}
	}
	events := NewEventQueue()
	return &Game{
		cfg:     cfg,
		surface: surface,
		display: display,
		paddle:  components.NewPaddle(cfg),
		wall:    wall,
		phase:   PhaseIdle,
		lives:   cfg.Rules.Lives,
		events:  events,
		router:  NewEventRouter(events),
	}
}

// RegisterEventHandler adds an event handler to the router
func (g *Game) RegisterEventHandler(h EventHandler) {
	g.router.Register(h)
}

// Init pushes the initial counters to the display and draws the idle frame
func (g *Game) Init() {
	g.display.ShowScore(g.score)
	g.display.ShowLives(g.lives)
	g.Render()
}

// Start serves a fresh ball and resets the score
// Ignored while a round is running; returns whether a round started
// Lives are not checked: restarts remain possible at zero lives
func (g *Game) Start() bool {
	if g.phase == PhaseRunning {
		return false
	}
	if g.phase == PhaseCleared {
		if err := g.wall.Rebuild(); err != nil {
			return false
		}
	}

	g.score = 0
	g.display.ShowScore(g.score)
	g.phase = PhaseRunning
	g.ball = components.NewBall(g.cfg)

	g.push(GameEvent{Type: EventRoundStarted})
	g.router.DispatchAll()
	return true
}

// Tick advances the simulation by one frame; no-op unless running
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	g.frame++

	// Paddle first: the ball's paddle test reads the updated position
	g.paddle.Tick()
	res := g.ball.Tick(g.paddle)
	g.pushBounces(res.Bounces)

	hadBlocks := !g.wall.Empty()
	removed := g.wall.Sweep(g.ball)
	for _, b := range removed {
		g.addScore(g.cfg.Rules.ScorePerBlock)
		g.push(GameEvent{Type: EventBlockDestroyed, Block: b})
	}
	if len(removed) > 0 {
		g.ball.InvertDY()
	}

	if res.Lost {
		g.end()
	} else {
		g.drawFrame(true)
		if hadBlocks && g.wall.Empty() {
			g.phase = PhaseCleared
			g.push(GameEvent{Type: EventWallCleared})
		}
	}

	g.router.DispatchAll()
}

// end closes the round: stop simulating, lose a life, draw the ball-less frame
func (g *Game) end() {
	g.phase = PhaseEnded
	g.lives--
	g.display.ShowLives(g.lives)
	g.drawFrame(false)
	g.push(GameEvent{Type: EventRoundLost})
}

// Render redraws the frame for the current phase without advancing the simulation
// Used after a surface resize and for the initial idle frame
func (g *Game) Render() {
	switch g.phase {
	case PhaseIdle:
		g.drawBoard()
	case PhaseEnded:
		g.drawFrame(false)
	default:
		g.drawFrame(true)
	}
}

// drawBoard clears the surface and draws the remaining blocks
func (g *Game) drawBoard() {
	if g.surface == nil {
		return
	}
	g.surface.ClearRect(0, 0, g.cfg.Board.Width, g.cfg.Board.Height)
	g.wall.Draw(g.surface)
}

// drawFrame draws background, blocks, paddle and optionally the ball, in that order
func (g *Game) drawFrame(withBall bool) {
	if g.surface == nil {
		return
	}
	g.drawBoard()

	prev := g.surface.FillColor()
	g.surface.SetFillColor(render.RgbPaddle)
	g.paddle.Draw(g.surface)
	if withBall && g.ball != nil {
		g.surface.SetFillColor(render.RgbBall)
		g.ball.Draw(g.surface)
	}
	g.surface.SetFillColor(prev)
}

func (g *Game) addScore(points int) {
	g.score += points
	g.display.ShowScore(g.score)
}

func (g *Game) pushBounces(b components.Bounce) {
	if b&(components.BounceSide|components.BounceTop) != 0 {
		g.push(GameEvent{Type: EventWallBounce, Bounce: b & (components.BounceSide | components.BounceTop)})
	}
	if b&components.BouncePaddle != 0 {
		g.push(GameEvent{Type: EventPaddleBounce, Bounce: components.BouncePaddle})
	}
}

// push stamps the event with the current frame and counters
func (g *Game) push(ev GameEvent) {
	ev.Frame = g.frame
	ev.Score = g.score
	ev.Lives = g.lives
	g.events.Push(ev)
}

// Running reports whether the scheduler should keep ticking
func (g *Game) Running() bool {
	return g.phase.Simulating()
}

// Phase returns the current state machine phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current round score
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives; may go negative
func (g *Game) Lives() int {
	return g.lives
}

// GameOver reports whether no lives remain
// Informational only: Start keeps working
func (g *Game) GameOver() bool {
	return g.lives <= 0
}

// Frame returns the number of simulated ticks
func (g *Game) Frame() uint64 {
	return g.frame
}

// Paddle returns the session paddle; input writes its velocity
func (g *Game) Paddle() *components.Paddle {
	return g.paddle
}

// Ball returns the current round's ball, nil before the first start
func (g *Game) Ball() *components.Ball {
	return g.ball
}

// Wall returns the remaining blocks
func (g *Game) Wall() *components.Wall {
	return g.wall
}

// Config returns the session configuration
func (g *Game) Config() *config.Config {
	return g.cfg
}
