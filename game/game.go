package game

import (
	"errors"
	"fmt"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrSessionOver is returned when a finished session is ticked again.
var ErrSessionOver = errors.New("game session is over")

type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is what a single tick produced.
type Event int

const (
	Continued Event = iota
	AteFood
	Collided
)

func (e Event) String() string {
	switch e {
	case Continued:
		return "CONTINUED"
	case AteFood:
		return "ATE_FOOD"
	case Collided:
		return "COLLIDED"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

type TickResult struct {
	Event   Event
	Outcome entity.MoveOutcome
}

// Snapshot is the read side handed to the presentation layer once per tick.
type Snapshot struct {
	SessionID string
	Grid      types.Grid
	Body      []types.Point // head first
	Food      types.Point
	Facing    types.Direction
	State     State
	Reason    types.CollisionType
	Length    int
	Ticks     int
}

// Game is one round. It owns its snake and food and is not safe for
// concurrent use; a finished Game is discarded and replaced to play again.
type Game struct {
	id        string
	grid      types.Grid
	snake     *entity.Snake
	food      entity.Food
	foods     *manager.FoodManager
	state     State
	reason    types.CollisionType
	ticks     int
	startTime time.Time
	endTime   time.Time
	logger    zerolog.Logger
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	snake, err := entity.NewSnake(cfg.InitialBody, manager.NewCollisionManager(grid))
	if err != nil {
		return nil, fmt.Errorf("create snake: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	id := uuid.New().String()
	g := &Game{
		id:        id,
		grid:      grid,
		snake:     snake,
		foods:     manager.NewFoodManager(grid, seed),
		state:     Running,
		startTime: time.Now(),
		logger:    log.With().Str("session", id).Logger(),
	}
	g.food = g.foods.Spawn()

	g.logger.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Msg("Starting a new game")
	return g, nil
}

// Tick advances the round by one step. dir is types.None when there was no
// input this tick.
func (g *Game) Tick(dir types.Direction) (TickResult, error) {
	if g.state == GameOver {
		return TickResult{}, ErrSessionOver
	}

	var (
		outcome entity.MoveOutcome
		err     error
	)
	if dir == types.None {
		outcome, err = g.snake.ContinueMoving()
	} else {
		g.logger.Info().Stringer("input", dir).Msg("Input received")
		outcome, err = g.snake.Move(dir)
	}
	if err != nil {
		return TickResult{}, err
	}
	g.ticks++

	switch o := outcome.(type) {
	case entity.Blocked:
		g.state = GameOver
		g.reason = o.Reason
		g.endTime = time.Now()
		g.logger.Info().
			Stringer("reason", o.Reason).
			Int("length", g.snake.TargetLength()).
			Msg("GAME OVER")
		return TickResult{Event: Collided, Outcome: o}, nil
	case entity.Moved:
		if g.snake.Head() != g.food.Position() {
			return TickResult{Event: Continued, Outcome: o}, nil
		}
		g.snake.Grow()
		g.food = g.foods.Spawn()
		g.logger.Info().
			Int("length", g.snake.TargetLength()).
			Msg("Snake ate the food")
		return TickResult{Event: AteFood, Outcome: o}, nil
	default:
		return TickResult{}, fmt.Errorf("unexpected move outcome %T", outcome)
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() State {
	return g.state
}

// Over reports whether the round has ended.
func (g *Game) Over() bool {
	return g.state == GameOver
}

// Reason is the collision that ended the round, or NoCollision while running.
func (g *Game) Reason() types.CollisionType {
	return g.reason
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID: g.id,
		Grid:      g.grid,
		Body:      g.snake.Positions(),
		Food:      g.food.Position(),
		Facing:    g.snake.Facing(),
		State:     g.state,
		Reason:    g.reason,
		Length:    g.snake.TargetLength(),
		Ticks:     g.ticks,
	}
}

// Record summarises a finished round for the stats manager.
func (g *Game) Record() manager.RoundRecord {
	end := g.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return manager.RoundRecord{
		SessionID: g.id,
		StartTime: g.startTime,
		EndTime:   end,
		Length:    g.snake.TargetLength(),
		Reason:    g.reason,
	}
}
