package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// InputSource hands over every input event queued since the last call,
// oldest first. It must not block.
type InputSource interface {
	Poll() []types.Event
}

// Clock paces the loop. Wait blocks until the next tick boundary for the
// given rate in ticks per second.
type Clock interface {
	Wait(rate int)
}

type Game struct {
	UUID  string
	Grid  types.Grid
	Steps int

	snake        *entity.Snake
	apple        *entity.Apple
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	rng          *rand.Rand
	logger       *slog.Logger
	quit         bool
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger; the session id is attached to it.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed makes apple placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source used for apple placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		UUID:   uuid.New().String(),
		Grid:   types.DefaultGrid,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	g.logger = g.logger.With(slog.String("session", g.UUID))

	g.collisionMgr = manager.NewCollisionManager(g.Grid)
	g.foodMgr = manager.NewFoodManager(g.Grid, g.collisionMgr, g.rng)
	g.stateMgr = manager.NewStateManager()
	g.snake = entity.NewSnake(g.Grid, types.SnakeColor)
	g.apple = entity.NewApple(types.Point{}, types.AppleColor)
	g.placeApple()

	g.logger.Info("game created",
		slog.Int("width", g.Grid.Width),
		slog.Int("height", g.Grid.Height),
		slog.Any("apple", g.apple.Position))
	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() *entity.Apple {
	return g.apple
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

func (g *Game) Speed() int {
	return g.stateMgr.GetSpeed()
}

// Status is the line shown in the window title: mode, speed and length.
func (g *Game) Status() string {
	return g.stateMgr.Status(g.snake.Size())
}

// Quitting reports whether a quit request has been received.
func (g *Game) Quitting() bool {
	return g.quit
}

// HandleEvent applies one input event. Direction keys only queue the next
// heading; it takes effect on the following Update.
func (g *Game) HandleEvent(ev types.Event) {
	if ev.Type == types.EventQuit {
		g.quit = true
		return
	}

	switch ev.Key {
	case types.KeySpace:
		paused := g.stateMgr.TogglePause()
		g.logger.Info("pause toggled", slog.Bool("paused", paused))
	case types.KeyRestart:
		g.Reset()
	default:
		if dir, ok := ev.Key.Direction(); ok {
			if !g.snake.SetDirection(dir) {
				g.logger.Debug("reverse turn ignored", slog.String("dir", dir.String()))
			}
		}
	}
}

// Update advances the simulation by one tick. It does nothing unless the
// game is running.
func (g *Game) Update() {
	if !g.stateMgr.Running() {
		return
	}

	g.Steps++

	g.snake.UpdateDirection()
	newHead := g.snake.NextHead()

	// Check collisions before the move is committed
	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.stateMgr.SetGameOver()
		g.logger.Info("game over",
			slog.String("collision", collision.String()),
			slog.Int("length", g.snake.Size()),
			slog.Int("speed", g.stateMgr.GetSpeed()),
			slog.Int("steps", g.Steps))
		return
	}

	g.snake.Move(newHead)
	g.snake.RemoveTail()

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.apple.Position) {
		g.snake.Grow()
		g.stateMgr.IncreaseSpeed()
		g.logger.Debug("apple eaten",
			slog.Int("length", g.snake.Length),
			slog.Int("speed", g.stateMgr.GetSpeed()))
		g.placeApple()
	}
}

// Draw renders the board and refreshes the status line.
func (g *Game) Draw(surface types.Surface) {
	surface.Fill(types.BackgroundColor)
	drawables := []types.Drawable{g.snake}
	if g.State() != manager.Won {
		drawables = append(drawables, g.apple)
	}
	for _, d := range drawables {
		d.Draw(surface)
	}
	surface.SetTitle(g.Status())
	surface.Present()
}

// Reset starts a fresh round on the same board.
func (g *Game) Reset() {
	g.snake.Reset()
	g.stateMgr.Reset()
	g.Steps = 0
	g.placeApple()
	g.logger.Info("game reset", slog.Any("apple", g.apple.Position))
}

// Tick runs one loop iteration: drain input, advance, render. It returns
// false once a quit has been requested.
func (g *Game) Tick(input InputSource, surface types.Surface) bool {
	for _, ev := range input.Poll() {
		g.HandleEvent(ev)
	}
	g.Update()
	g.Draw(surface)
	return !g.quit
}

// Run drives the loop until quit input arrives or ctx is done.
func (g *Game) Run(ctx context.Context, surface types.Surface, input InputSource, clock Clock) error {
	g.logger.Info("game loop started", slog.Int("speed", g.stateMgr.GetSpeed()))
	defer g.logger.Info("game loop stopped",
		slog.String("state", g.State().String()),
		slog.Int("length", g.snake.Size()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !g.Tick(input, surface) {
			return nil
		}
		clock.Wait(g.stateMgr.GetSpeed())
	}
}

func (g *Game) placeApple() {
	pos, err := g.foodMgr.GenerateFood(g.snake)
	if errors.Is(err, manager.ErrBoardFull) {
		g.stateMgr.SetWon()
		g.logger.Info("board full", slog.Int("length", g.snake.Size()))
		return
	}
	g.apple.Position = pos
}
