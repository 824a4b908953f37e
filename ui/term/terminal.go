// Package term draws the game in a terminal with tcell.
package term

import (
	"fmt"
	"sync"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const eventBuffer = 16

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorPink)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Terminal is the tcell presentation context. Key events are read by a
// goroutine and queued until the game loop polls them.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	keys   chan *tcell.EventKey
	done   chan struct{}
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewTerminal opens the default terminal screen.
func NewTerminal(grid types.Grid) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalWithScreen(s, grid)
}

// NewTerminalWithScreen takes ownership of s and initializes it.
func NewTerminalWithScreen(s tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		grid:   grid,
		keys:   make(chan *tcell.EventKey, eventBuffer),
		done:   make(chan struct{}),
	}
	t.wg.Add(1)
	go t.readEvents()

	log.Info().Int("width", grid.Width).Int("height", grid.Height).Msg("Terminal screen opened")
	return t, nil
}

func (t *Terminal) readEvents() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				t.markClosed()
				continue
			}
			select {
			case t.keys <- ev:
			case <-t.done:
				return
			default:
				// queue full, drop the key
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (t *Terminal) markClosed() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}

// PollDirection drains queued keys and returns the first arrow key, or
// types.None.
func (t *Terminal) PollDirection() types.Direction {
	dir := types.None
	for {
		select {
		case ev := <-t.keys:
			if dir == types.None {
				dir = keyDirection(ev)
			}
		default:
			return dir
		}
	}
}

func keyDirection(ev *tcell.EventKey) types.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up
	case tcell.KeyDown:
		return types.Down
	case tcell.KeyLeft:
		return types.Left
	case tcell.KeyRight:
		return types.Right
	default:
		return types.None
	}
}

func (t *Terminal) AnyKeyPressed() bool {
	pressed := false
	for {
		select {
		case <-t.keys:
			pressed = true
		default:
			return pressed
		}
	}
}

func (t *Terminal) ShouldClose() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

func (t *Terminal) DrawFrame(snap game.Snapshot, summary manager.Summary) {
	t.drawBoard(snap, summary)
	t.screen.Show()
}

func (t *Terminal) DrawGameOver(snap game.Snapshot, summary manager.Summary) {
	t.drawBoard(snap, summary)

	centerX := t.grid.Width/2 + 1
	centerY := t.grid.Height/2 + 1
	drawCentered(t.screen, centerX, centerY-1, alertStyle, "GAME OVER")
	drawCentered(t.screen, centerX, centerY, textStyle, reasonText(snap.Reason))
	drawCentered(t.screen, centerX, centerY+1, textStyle, "Press any key to retry")
	t.screen.Show()
}

func (t *Terminal) drawBoard(snap game.Snapshot, summary manager.Summary) {
	t.screen.Clear()

	// The border occupies row/column 0 and Width+1/Height+1; cell (x, y)
	// lands on screen position (x+1, y+1).
	drawBox(t.screen, 0, 0, t.grid.Width+1, t.grid.Height+1, borderStyle)

	t.screen.SetContent(snap.Food.X+1, snap.Food.Y+1, '*', nil, foodStyle)
	for i, p := range snap.Body {
		r := tcell.RuneBlock
		if i == 0 {
			r = headRune(snap.Facing)
		}
		t.screen.SetContent(p.X+1, p.Y+1, r, nil, snakeStyle)
	}

	score := fmt.Sprintf("Score: %d  Best: %d  Rounds: %d", snap.Length, summary.Best, summary.Rounds)
	drawText(t.screen, 1, t.grid.Height+2, textStyle, score)
}

func headRune(facing types.Direction) rune {
	switch facing {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	default:
		return '>'
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCentered(s tcell.Screen, centerX, y int, style tcell.Style, text string) {
	drawText(s, centerX-len([]rune(text))/2, y, style, text)
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// Close restores the terminal and stops the event reader.
func (t *Terminal) Close() error {
	close(t.done)
	t.screen.Fini()
	t.wg.Wait()

	log.Info().Msg("Terminal screen closed")
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
