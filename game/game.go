package game

import (
	"log/slog"
	"time"

	"snake-wrap/game/entity"
	"snake-wrap/game/manager"
	"snake-wrap/game/types"

	"github.com/google/uuid"
)

// DefaultSpeed is the delay between two ticks.
const DefaultSpeed = 120 * time.Millisecond

var snakeColor = entity.Color{R: 0, G: 228, B: 48}

// RunState is either Running or GameOver.
type RunState int

const (
	Running RunState = iota
	GameOver
)

func (s RunState) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "GAME_OVER"
}

// Notifier receives the two audio events of a game. Calls are made
// synchronously from the tick, so implementations must not block.
type Notifier interface {
	Eat()
	GameOver()
}

type nopNotifier struct{}

func (nopNotifier) Eat()      {}
func (nopNotifier) GameOver() {}

// EventKind tells what a tick did.
type EventKind int

const (
	EventNone EventKind = iota // tick ignored, game not running
	EventMoved
	EventAte
	EventGameOver
)

// Event is the outcome of one Step.
type Event struct {
	Kind  EventKind
	Head  types.Point
	Score int
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	ID        string
	Grid      types.Grid
	Body      []types.Point
	Food      types.Point
	Score     int
	Best      int
	Running   bool
	Direction types.Direction
	Color     entity.Color
}

type options struct {
	speed      time.Duration
	seed       uint64
	clock      Clock
	notifier   Notifier
	logger     *slog.Logger
	avoidSnake bool
}

type Option func(*options)

// WithSpeed sets the tick interval.
func WithSpeed(d time.Duration) Option {
	return func(o *options) { o.speed = d }
}

// WithSeed seeds the food generator. Zero picks a time-based seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFoodAvoidingSnake keeps new food off the snake body.
func WithFoodAvoidingSnake(avoid bool) Option {
	return func(o *options) { o.avoidSnake = avoid }
}

// Game owns the whole state of a single-player session. It is not safe for
// concurrent use: input, ticks and rendering must run on one goroutine.
type Game struct {
	ID   string
	Grid types.Grid

	snake     *entity.Snake
	food      types.Point
	score     int
	state     RunState
	direction types.Direction // committed by the last tick
	pending   types.Direction // applied by the next tick
	startTime time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	scheduler    *Scheduler
	notifier     Notifier
	clock        Clock
	log          *slog.Logger
}

// NewGame creates a game on grid and starts it.
func NewGame(grid types.Grid, opts ...Option) *Game {
	o := options{
		speed:    DefaultSpeed,
		clock:    time.Now,
		notifier: nopNotifier{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}

	foodMgr := manager.NewFoodManager(grid, o.seed)
	foodMgr.AvoidSnake = o.avoidSnake

	g := &Game{
		Grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
		scheduler:    NewScheduler(o.speed, o.clock),
		notifier:     o.notifier,
		clock:        o.clock,
		log:          o.logger.With("component", "game"),
	}

	g.Restart()
	return g
}

// Restart discards the current state and starts a fresh game: a three cell
// snake centered and heading right, score zero, new food, first tick armed.
func (g *Game) Restart() {
	g.ID = uuid.New().String()

	g.snake = entity.NewSnake(g.Grid.Center(), types.InitialLength, g.Grid.CellSize, snakeColor)
	for i, p := range g.snake.Body {
		g.snake.Body[i] = g.collisionMgr.Wrap(p)
	}

	g.direction = types.Right
	g.pending = types.Right
	g.score = 0
	g.state = Running
	g.food = g.foodMgr.GenerateFood(g.snake)
	g.startTime = g.clock()

	g.scheduler.Arm()

	g.log.Info("game started", "id", g.ID, "food", g.food)
}

// RequestDirection queues dir for the next tick. A request for the reverse
// of the committed direction is ignored, and a later request replaces an
// earlier one that has not been applied yet.
func (g *Game) RequestDirection(dir types.Direction) {
	if !dir.Valid() || dir == g.direction.Opposite() {
		return
	}
	g.pending = dir
}

// Update runs one tick if the scheduler says one is due.
func (g *Game) Update() bool {
	if !g.scheduler.Due() {
		return false
	}
	g.Step()
	return true
}

// Step advances the snake by one cell. It does nothing once the game is over.
func (g *Game) Step() Event {
	if g.state != Running {
		return Event{Kind: EventNone, Score: g.score}
	}

	g.direction = g.pending
	newHead := g.collisionMgr.Next(g.snake.GetHead(), g.direction)

	if g.collisionMgr.IsSelfCollision(newHead, g.snake) {
		g.gameOver(newHead)
		return Event{Kind: EventGameOver, Head: newHead, Score: g.score}
	}

	g.snake.Move(newHead)

	kind := EventMoved
	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		kind = EventAte
		g.notifier.Eat()
		g.food = g.foodMgr.GenerateFood(g.snake)
		g.log.Debug("food eaten", "id", g.ID, "score", g.score, "food", g.food)
	} else {
		g.snake.RemoveTail()
	}

	g.scheduler.Arm()
	return Event{Kind: kind, Head: newHead, Score: g.score}
}

func (g *Game) gameOver(crash types.Point) {
	g.state = GameOver
	g.scheduler.Cancel()
	g.notifier.GameOver()

	record := manager.GameRecord{
		ID:        g.ID,
		StartTime: g.startTime,
		EndTime:   g.clock(),
		Score:     g.score,
		Length:    g.snake.Len(),
	}
	g.stateMgr.AddToHistory(record)

	g.log.Info("game over",
		"id", g.ID,
		"score", g.score,
		"length", record.Length,
		"crash", crash,
		"duration", record.Duration())
}

func (g *Game) State() RunState {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:        g.ID,
		Grid:      g.Grid,
		Body:      g.snake.Cells(),
		Food:      g.food,
		Score:     g.score,
		Best:      max(g.stateMgr.GetHighScore(), g.score),
		Running:   g.state == Running,
		Direction: g.direction,
		Color:     g.snake.Color,
	}
}
