package entity_test

import (
	"errors"
	"os"
	"testing"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func newSnake(t *testing.T, grid types.Grid, body ...types.Point) *entity.Snake {
	t.Helper()
	s, err := entity.NewSnake(body, manager.NewCollisionManager(grid))
	if err != nil {
		t.Fatalf("NewSnake: %v", err)
	}
	return s
}

func samePoints(a, b []types.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustMove(t *testing.T, s *entity.Snake, dir types.Direction) entity.MoveOutcome {
	t.Helper()
	var (
		outcome entity.MoveOutcome
		err     error
	)
	if dir == types.None {
		outcome, err = s.ContinueMoving()
	} else {
		outcome, err = s.Move(dir)
	}
	if err != nil {
		t.Fatalf("move %v: %v", dir, err)
	}
	return outcome
}

var grid10 = types.Grid{Width: 10, Height: 10}

func TestNewSnakeDefaults(t *testing.T) {
	s := newSnake(t, grid10, types.DefaultBody()...)

	if s.Facing() != types.Right {
		t.Errorf("facing = %v, want RIGHT", s.Facing())
	}
	if s.Head() != (types.Point{X: 1, Y: 1}) {
		t.Errorf("head = %v, want (1, 1)", s.Head())
	}
	if s.TargetLength() != 2 || s.Len() != 2 {
		t.Errorf("length = %d/%d, want 2/2", s.Len(), s.TargetLength())
	}
}

func TestNewSnakeEmptyBody(t *testing.T) {
	_, err := entity.NewSnake(nil, manager.NewCollisionManager(grid10))
	if !errors.Is(err, entity.ErrEmptyBody) {
		t.Fatalf("err = %v, want ErrEmptyBody", err)
	}
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}}
	s := newSnake(t, grid10, body...)
	body[0] = types.Point{X: 7, Y: 7}

	if s.Head() != (types.Point{X: 3, Y: 3}) {
		t.Fatalf("snake shares the caller's slice: head = %v", s.Head())
	}

	positions := s.Positions()
	positions[0] = types.Point{X: 8, Y: 8}
	if s.Head() != (types.Point{X: 3, Y: 3}) {
		t.Fatalf("Positions exposes internal state: head = %v", s.Head())
	}
}

func TestOppositeMoveActsLikeContinue(t *testing.T) {
	// Turns that leave a fresh (right-facing) snake facing the given way.
	setup := map[types.Direction][]types.Direction{
		types.Up:    {types.Up},
		types.Down:  {types.Down},
		types.Left:  {types.Up, types.Left},
		types.Right: nil,
	}
	for facing, turns := range setup {
		body := []types.Point{{X: 5, Y: 5}}

		a := newSnake(t, grid10, body...)
		b := newSnake(t, grid10, body...)
		for _, d := range turns {
			mustMove(t, a, d)
			mustMove(t, b, d)
		}

		got := mustMove(t, a, facing.Opposite())
		want := mustMove(t, b, types.None)

		if got != want {
			t.Errorf("facing %v: Move(%v) = %v, ContinueMoving() = %v", facing, facing.Opposite(), got, want)
		}
		if a.Facing() != facing {
			t.Errorf("facing changed to %v, want %v", a.Facing(), facing)
		}
		if !samePoints(a.Positions(), b.Positions()) {
			t.Errorf("bodies differ: %v vs %v", a.Positions(), b.Positions())
		}
	}
}

func TestTurnUpdatesFacingBeforeMoving(t *testing.T) {
	s := newSnake(t, grid10, types.DefaultBody()...)

	got := mustMove(t, s, types.Down)
	want := entity.Moved{Direction: types.Down, Head: types.Point{X: 1, Y: 2}}
	if got != want {
		t.Fatalf("Move(DOWN) = %v, want %v", got, want)
	}
	if s.Facing() != types.Down {
		t.Fatalf("facing = %v, want DOWN", s.Facing())
	}
}

func TestContinueMovingWithoutInput(t *testing.T) {
	s := newSnake(t, types.Grid{Width: 5, Height: 5}, types.DefaultBody()...)

	wantBodies := [][]types.Point{
		{{X: 2, Y: 1}, {X: 1, Y: 1}},
		{{X: 3, Y: 1}, {X: 2, Y: 1}},
		{{X: 4, Y: 1}, {X: 3, Y: 1}},
	}
	for i, want := range wantBodies {
		outcome := mustMove(t, s, types.None)
		if _, ok := outcome.(entity.Moved); !ok {
			t.Fatalf("tick %d: outcome = %v, want Moved", i+1, outcome)
		}
		if got := s.Positions(); !samePoints(got, want) {
			t.Fatalf("tick %d: body = %v, want %v", i+1, got, want)
		}
	}
}

func TestReverseInputIsIgnored(t *testing.T) {
	s := newSnake(t, grid10, types.Point{X: 0, Y: 5})

	got := mustMove(t, s, types.Left)
	want := entity.Moved{Direction: types.Right, Head: types.Point{X: 1, Y: 5}}
	if got != want {
		t.Fatalf("Move(LEFT) = %v, want %v", got, want)
	}
}

func TestGrowthIsConservative(t *testing.T) {
	grid := types.Grid{Width: 100, Height: 100}
	s := newSnake(t, grid, types.Point{X: 0, Y: 0})

	const grows = 5
	for i := 0; i < grows; i++ {
		s.Grow()
	}
	if s.Len() != 1 {
		t.Fatalf("Grow changed the body immediately: len = %d", s.Len())
	}

	for tick := 1; tick <= 20; tick++ {
		mustMove(t, s, types.None)
		want := tick + 1
		if want > 1+grows {
			want = 1 + grows
		}
		if s.Len() != want {
			t.Fatalf("tick %d: len = %d, want %d", tick, s.Len(), want)
		}
	}
}

func TestWallCollisionAtBoundary(t *testing.T) {
	tests := []struct {
		name  string
		start types.Point
		moves []types.Direction // the last move is the one expected to hit
	}{
		{"left edge", types.Point{X: 0, Y: 5}, []types.Direction{types.Up, types.Left}},
		{"right edge", types.Point{X: 9, Y: 5}, []types.Direction{types.Right}},
		{"top edge", types.Point{X: 3, Y: 0}, []types.Direction{types.Up}},
		{"bottom edge", types.Point{X: 3, Y: 9}, []types.Direction{types.Down}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSnake(t, grid10, tt.start)
			for _, d := range tt.moves[:len(tt.moves)-1] {
				mustMove(t, s, d)
			}
			before := s.Positions()

			got := mustMove(t, s, tt.moves[len(tt.moves)-1])
			want := entity.Blocked{Reason: types.WallCollision}
			if got != want {
				t.Fatalf("outcome = %v, want %v", got, want)
			}
			if !samePoints(s.Positions(), before) {
				t.Fatalf("body changed on collision: %v -> %v", before, s.Positions())
			}
		})
	}
}

func TestMovingOntoTailIsBlocked(t *testing.T) {
	s := newSnake(t, grid10, types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1})
	s.Grow()
	s.Grow()

	mustMove(t, s, types.Down) // (1,2) (1,1) (0,1)
	mustMove(t, s, types.Left) // (0,2) (1,2) (1,1) (0,1)
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
	before := s.Positions()

	// (0,1) is the tail and would be vacated this tick, but still blocks.
	got := mustMove(t, s, types.Up)
	want := entity.Blocked{Reason: types.SelfCollision}
	if got != want {
		t.Fatalf("outcome = %v, want %v", got, want)
	}
	if !samePoints(s.Positions(), before) {
		t.Fatalf("body changed on collision: %v -> %v", before, s.Positions())
	}
}

func TestMovingIntoSecondSegmentIsBlocked(t *testing.T) {
	// A coiled body whose neck sits above the head while facing right.
	body := []types.Point{
		{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6},
	}
	s := newSnake(t, grid10, body...)

	got := mustMove(t, s, types.Up)
	if got != (entity.Blocked{Reason: types.SelfCollision}) {
		t.Fatalf("outcome = %v, want Blocked(SNAKE_HIT)", got)
	}
	if !samePoints(s.Positions(), body) {
		t.Fatalf("body changed on collision: %v", s.Positions())
	}
}

func TestInvalidDirectionFailsFast(t *testing.T) {
	for _, d := range []types.Direction{types.None, types.Direction(42)} {
		s := newSnake(t, grid10, types.DefaultBody()...)

		outcome, err := s.Move(d)
		if !errors.Is(err, types.ErrInvalidDirection) {
			t.Fatalf("Move(%v) err = %v, want ErrInvalidDirection", d, err)
		}
		if outcome != nil {
			t.Fatalf("Move(%v) outcome = %v, want nil", d, outcome)
		}
		if !samePoints(s.Positions(), types.DefaultBody()) || s.Facing() != types.Right {
			t.Fatalf("snake changed after invalid move: %v facing %v", s.Positions(), s.Facing())
		}
	}
}
