package ui

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/stats"
)

const borderPadding = 10

// palette maps cell semantics to display colours.
var palette = map[types.Cell]rl.Color{
	types.Empty: {R: 255, G: 215, B: 0, A: 255},
	types.Snake: {R: 243, G: 135, B: 47, A: 255},
	types.Food:  {R: 21, G: 178, B: 211, A: 255},
}

// keyMap maps arrow keys and WASD to directions.
var keyMap = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// Renderer draws the latest snapshot in a raylib window and reads the
// keyboard. Sink callbacks may arrive from any goroutine; Draw and PollInput
// must run on the window thread.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32

	stats *stats.Recorder

	mu      sync.Mutex
	snap    game.Snapshot
	size    int
	over    bool
	onInput func(types.Direction)
}

func NewRenderer(recorder *stats.Recorder) *Renderer {
	return &Renderer{stats: recorder}
}

func (r *Renderer) Bind(onInput func(types.Direction)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onInput = onInput
}

func (r *Renderer) OnReset(size int, snap game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap
	r.size = len(snap.Body)
	r.over = false
}

func (r *Renderer) OnUpdate(snap game.Snapshot, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap
	r.size = size
}

func (r *Renderer) OnGameOver() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.over = true
}

// PollInput forwards direction keys and reports whether restart or quit was pressed.
func (r *Renderer) PollInput() (restart, quit bool) {
	r.mu.Lock()
	onInput := r.onInput
	r.mu.Unlock()

	for key, d := range keyMap {
		if rl.IsKeyPressed(key) && onInput != nil {
			onInput(d)
		}
	}
	return rl.IsKeyPressed(rl.KeyR), rl.IsKeyPressed(rl.KeyQ)
}

func (r *Renderer) updateDimensions(gridSize int) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = r.screenWidth / 5

	availableWidth := r.screenWidth - r.statsPanel - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth, availableHeight) / int32(max(gridSize, 1))

	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.cellSize*int32(gridSize)) / 2
}

func (r *Renderer) Draw() {
	r.mu.Lock()
	snap, size, over := r.snap, r.size, r.over
	r.mu.Unlock()

	r.updateDimensions(snap.Size)
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	total := r.cellSize * int32(snap.Size)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, total+2, total+2, rl.DarkGray)

	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			rl.DrawRectangle(
				r.offsetX+int32(x)*r.cellSize+1,
				r.offsetY+int32(y)*r.cellSize+1,
				r.cellSize-2, r.cellSize-2,
				palette[snap.At(types.Point{X: x, Y: y})])
		}
	}
	if len(snap.Body) > 0 {
		r.drawHeadIndicator(snap.Head(), snap.Direction)
	}

	r.drawStatsPanel(size, over)
	rl.EndDrawing()
}

func (r *Renderer) drawHeadIndicator(head types.Point, dir types.Direction) {
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: headX + cell, Y: headY + half}, rl.Vector2{X: headX + half, Y: headY}, rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a, b, c = rl.Vector2{X: headX, Y: headY + half}, rl.Vector2{X: headX + half, Y: headY + cell}, rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a, b, c = rl.Vector2{X: headX + half, Y: headY + cell}, rl.Vector2{X: headX + cell, Y: headY + half}, rl.Vector2{X: headX, Y: headY + half}
	default:
		a, b, c = rl.Vector2{X: headX + half, Y: headY}, rl.Vector2{X: headX, Y: headY + half}, rl.Vector2{X: headX + cell, Y: headY + half}
	}
	rl.DrawTriangle(a, b, c, rl.Maroon)
}

func (r *Renderer) drawStatsPanel(size int, over bool) {
	fontSize := max(r.screenHeight/40, 10)
	lineHeight := fontSize + 6
	x := r.screenWidth - r.statsPanel + borderPadding
	y := int32(borderPadding)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, fontSize, color)
		y += lineHeight
	}

	line(fmt.Sprintf("Size: %d", size), rl.White)
	if over {
		line("GAME OVER", rl.Red)
		line("R to restart", rl.LightGray)
	}
	y += lineHeight

	if r.stats == nil {
		return
	}
	line(fmt.Sprintf("Games: %d", r.stats.GetGamesPlayed()), rl.White)
	line(fmt.Sprintf("Best: %d", r.stats.GetMaxSize()), rl.Green)
	line(fmt.Sprintf("Avg: %.1f", r.stats.GetAverageSize()), rl.Green)
	line(fmt.Sprintf("Median: %.1f", r.stats.GetMedianSize()), rl.Green)
	line(fmt.Sprintf("Avg time: %.1fs", r.stats.GetAverageDuration()), rl.Purple)
	line(fmt.Sprintf("Longest: %.1fs", r.stats.GetMaxDuration()), rl.Purple)
}
