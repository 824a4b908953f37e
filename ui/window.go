package ui

import (
	"errors"
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

const (
	cellSize       = 10
	borderWidth    = 5
	scoreBarHeight = 30
	targetFPS      = 60
)

// Window is the raylib presentation context. It owns the OS window for its
// whole lifetime and must be released with Close.
type Window struct {
	grid         types.Grid
	screenWidth  int32
	screenHeight int32
	gridWidth    int32 // pixels, border included
	gridHeight   int32
}

func NewWindow(grid types.Grid) (*Window, error) {
	w := &Window{grid: grid}
	w.gridWidth = int32(grid.Width*cellSize + 2*borderWidth)
	w.gridHeight = int32(grid.Height*cellSize + 2*borderWidth)
	w.screenWidth = w.gridWidth
	w.screenHeight = w.gridHeight + scoreBarHeight

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w.screenWidth, w.screenHeight, "Snake Game")
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window failed to initialize")
	}
	rl.SetTargetFPS(targetFPS)

	log.Info().
		Int32("width", w.screenWidth).
		Int32("height", w.screenHeight).
		Msg("Game window opened")
	return w, nil
}

// PollDirection drains the key queue and returns the first arrow key found,
// or types.None.
func (w *Window) PollDirection() types.Direction {
	dir := types.None
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir == types.None {
			dir = keyDirection(key)
		}
	}
	return dir
}

func keyDirection(key int32) types.Direction {
	switch key {
	case rl.KeyUp:
		return types.Up
	case rl.KeyDown:
		return types.Down
	case rl.KeyLeft:
		return types.Left
	case rl.KeyRight:
		return types.Right
	default:
		return types.None
	}
}

func (w *Window) AnyKeyPressed() bool {
	pressed := false
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		pressed = true
	}
	return pressed
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) DrawFrame(snap game.Snapshot, summary manager.Summary) {
	rl.BeginDrawing()
	w.drawBoard(snap, summary)
	rl.EndDrawing()
}

func (w *Window) DrawGameOver(snap game.Snapshot, summary manager.Summary) {
	rl.BeginDrawing()
	w.drawBoard(snap, summary)

	centerX := w.gridWidth / 2
	centerY := w.gridHeight / 2
	w.drawCentered("GAME OVER", centerX, centerY-40, 40, rl.Red)
	w.drawCentered(reasonText(snap.Reason), centerX, centerY+10, 20, rl.White)
	w.drawCentered("Press any key to retry", centerX, centerY+40, 20, rl.White)
	rl.EndDrawing()
}

func (w *Window) drawBoard(snap game.Snapshot, summary manager.Summary) {
	rl.ClearBackground(rl.Black)

	for i, p := range snap.Body {
		x, y := w.cellOrigin(p)
		rl.DrawRectangle(x, y, cellSize, cellSize, rl.Pink)
		if i == 0 {
			drawHeadMarker(x, y, snap.Facing)
		}
	}

	fx, fy := w.cellOrigin(snap.Food)
	rl.DrawRectangle(fx, fy, cellSize, cellSize, rl.Green)

	rl.DrawRectangleLinesEx(
		rl.NewRectangle(0, 0, float32(w.gridWidth), float32(w.gridHeight)),
		borderWidth,
		rl.Green)

	score := fmt.Sprintf("Score: %d   Best: %d   Rounds: %d", snap.Length, summary.Best, summary.Rounds)
	rl.DrawText(score, 10, w.gridHeight+8, 16, rl.Green)
}

func (w *Window) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X*cellSize + borderWidth), int32(p.Y*cellSize + borderWidth)
}

// drawHeadMarker draws a small triangle pointing where the snake faces.
func drawHeadMarker(x, y int32, facing types.Direction) {
	const half = cellSize / 2
	fx, fy := float32(x), float32(y)
	switch facing {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: fx + cellSize, Y: fy + half},
			rl.Vector2{X: fx + half, Y: fy},
			rl.Vector2{X: fx + half, Y: fy + cellSize},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: fx, Y: fy + half},
			rl.Vector2{X: fx + half, Y: fy + cellSize},
			rl.Vector2{X: fx + half, Y: fy},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: fx + half, Y: fy + cellSize},
			rl.Vector2{X: fx + cellSize, Y: fy + half},
			rl.Vector2{X: fx, Y: fy + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: fx + half, Y: fy},
			rl.Vector2{X: fx, Y: fy + half},
			rl.Vector2{X: fx + cellSize, Y: fy + half},
			rl.Yellow)
	}
}

func (w *Window) drawCentered(text string, centerX, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, centerX-width/2, y, fontSize, color)
}

func (w *Window) Close() error {
	rl.CloseWindow()
	log.Info().Msg("Game window closed")
	return nil
}

func reasonText(reason types.CollisionType) string {
	switch reason {
	case types.WallCollision:
		return "The snake hit the wall"
	case types.SelfCollision:
		return "The snake hit itself"
	default:
		return ""
	}
}
