package term

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/game/types"
)

// MockScreen records SetContent calls.
type MockScreen struct {
	tcell.Screen
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
	shown  int
	synced int
}

func newMockScreen() *MockScreen {
	return &MockScreen{cells: make(map[[2]int]rune), styles: make(map[[2]int]tcell.Style)}
}

func (m *MockScreen) Clear() {
	m.cells = make(map[[2]int]rune)
	m.styles = make(map[[2]int]tcell.Style)
}
func (m *MockScreen) Show() { m.shown++ }
func (m *MockScreen) Sync() { m.synced++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
	m.styles[[2]int{x, y}] = style
}

func (m *MockScreen) line(y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, ok := m.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		act  action
		want types.Direction
	}{
		{tcell.KeyUp, 0, actionMove, types.Up},
		{tcell.KeyDown, 0, actionMove, types.Down},
		{tcell.KeyLeft, 0, actionMove, types.Left},
		{tcell.KeyRight, 0, actionMove, types.Right},
		{tcell.KeyRune, 'w', actionMove, types.Up},
		{tcell.KeyRune, 'S', actionMove, types.Down},
		{tcell.KeyRune, 'a', actionMove, types.Left},
		{tcell.KeyRune, 'd', actionMove, types.Right},
		{tcell.KeyRune, 'r', actionRestart, types.None},
		{tcell.KeyRune, 'q', actionQuit, types.None},
		{tcell.KeyEscape, 0, actionQuit, types.None},
		{tcell.KeyCtrlC, 0, actionQuit, types.None},
		{tcell.KeyRune, 'x', actionNone, types.None},
		{tcell.KeyEnter, 0, actionNone, types.None},
	}
	for _, tt := range tests {
		act, d := keyAction(tt.key, tt.r)
		if act != tt.act || d != tt.want {
			t.Errorf("keyAction(%v, %q) = %v, %v; want %v, %v", tt.key, tt.r, act, d, tt.act, tt.want)
		}
	}
}

func TestDraw(t *testing.T) {
	mock := newMockScreen()
	s := New(mock)

	cells := make([]types.Cell, 4)
	cells[0] = types.Snake
	cells[3] = types.Food
	s.OnReset(2, game.Snapshot{Size: 2, Cells: cells, Body: []types.Point{{X: 0, Y: 0}}})
	if !s.needsDraw() {
		t.Fatal("reset should mark the screen dirty")
	}
	s.Draw()
	if s.needsDraw() {
		t.Fatal("draw should clear the dirty flag")
	}

	if got := mock.line(0, 7); got != "size: 1" {
		t.Fatalf("status line = %q", got)
	}
	if mock.styles[[2]int{0, 1}] != palette[types.Snake] || mock.styles[[2]int{1, 1}] != palette[types.Snake] {
		t.Fatal("snake cell not drawn with snake style")
	}
	if mock.styles[[2]int{2, 2}] != palette[types.Food] {
		t.Fatal("food cell not drawn with food style")
	}
	if mock.styles[[2]int{2, 1}] != palette[types.Empty] {
		t.Fatal("empty cell not drawn with empty style")
	}

	s.OnGameOver()
	s.Draw()
	if got := mock.line(0, 18); got != "size: 1  GAME OVER" {
		t.Fatalf("status line = %q", got)
	}
	if mock.shown != 2 {
		t.Fatalf("Show called %d times, want 2", mock.shown)
	}
}

func TestHandleEvent(t *testing.T) {
	mock := newMockScreen()
	s := New(mock)
	var got []types.Direction
	s.Bind(func(d types.Direction) { got = append(got, d) })

	restarts := 0
	restart := func() error {
		restarts++
		return nil
	}

	if ok, err := s.handleEvent(tcell.NewEventResize(80, 24), restart); !ok || err != nil {
		t.Fatalf("resize: %v %v", ok, err)
	}
	if mock.synced != 1 || !s.needsDraw() {
		t.Fatal("resize should sync and mark dirty")
	}

	boom := errors.New("boom")
	if ok, err := s.handleEvent(tcell.NewEventResize(80, 24), func() error { return boom }); !ok || err != nil {
		t.Fatal("resize must not call restart")
	}
	if len(got) != 0 || restarts != 0 {
		t.Fatal("no input expected yet")
	}
}
