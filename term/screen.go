// Package term plays the game in a terminal through tcell.
package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/game/types"
)

const redrawInterval = 16 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionMove
	actionRestart
	actionQuit
)

var palette = map[types.Cell]tcell.Style{
	types.Empty: tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0)),
	types.Snake: tcell.StyleDefault.Foreground(tcell.NewRGBColor(243, 135, 47)),
	types.Food:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(21, 178, 211)),
}

// Screen is a render sink and input source backed by a tcell screen.
type Screen struct {
	screen tcell.Screen

	mu      sync.Mutex
	snap    game.Snapshot
	size    int
	over    bool
	onInput func(types.Direction)
	dirty   bool
}

func New(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

func (s *Screen) Bind(onInput func(types.Direction)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInput = onInput
}

func (s *Screen) OnReset(size int, snap game.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.size = len(snap.Body)
	s.over = false
	s.dirty = true
}

func (s *Screen) OnUpdate(snap game.Snapshot, size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.size = size
	s.dirty = true
}

func (s *Screen) OnGameOver() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.over = true
	s.dirty = true
}

// Draw paints the latest snapshot. Each cell is two columns wide.
func (s *Screen) Draw() {
	s.mu.Lock()
	snap, size, over := s.snap, s.size, s.over
	s.dirty = false
	s.mu.Unlock()

	s.screen.Clear()

	status := fmt.Sprintf("size: %d", size)
	if over {
		status += "  GAME OVER - r to restart, q to quit"
	}
	drawText(s.screen, 0, 0, status, tcell.StyleDefault.Bold(true))

	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			style := palette[snap.At(types.Point{X: x, Y: y})]
			s.screen.SetContent(2*x, y+1, '█', nil, style)
			s.screen.SetContent(2*x+1, y+1, '█', nil, style)
		}
	}
	s.screen.Show()
}

func (s *Screen) needsDraw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// keyAction maps a key press to what the host should do.
func keyAction(key tcell.Key, r rune) (action, types.Direction) {
	switch key {
	case tcell.KeyUp:
		return actionMove, types.Up
	case tcell.KeyDown:
		return actionMove, types.Down
	case tcell.KeyLeft:
		return actionMove, types.Left
	case tcell.KeyRight:
		return actionMove, types.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, types.None
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return actionMove, types.Up
		case 's', 'S':
			return actionMove, types.Down
		case 'a', 'A':
			return actionMove, types.Left
		case 'd', 'D':
			return actionMove, types.Right
		case 'r', 'R':
			return actionRestart, types.None
		case 'q', 'Q':
			return actionQuit, types.None
		}
	}
	return actionNone, types.None
}

// handleEvent applies one tcell event. It returns false when the user quits.
func (s *Screen) handleEvent(ev tcell.Event, restart func() error) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, d := keyAction(ev.Key(), ev.Rune())
		switch act {
		case actionMove:
			s.mu.Lock()
			onInput := s.onInput
			s.mu.Unlock()
			if onInput != nil {
				onInput(d)
			}
		case actionRestart:
			if err := restart(); err != nil {
				return false, err
			}
		case actionQuit:
			return false, nil
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
	return true, nil
}

// Run polls keys and redraws until the user quits. restart is called on 'r'.
func (s *Screen) Run(restart func() error) error {
	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			keepGoing, err := s.handleEvent(ev, restart)
			if err != nil || !keepGoing {
				return err
			}
		case <-ticker.C:
			if s.needsDraw() {
				s.Draw()
			}
		}
	}
}
