package ui

import (
	"testing"

	"torus-snake/game"
	"torus-snake/game/types"
)

func TestRendererTracksSink(t *testing.T) {
	r := NewRenderer(nil)
	r.OnReset(3, game.Snapshot{Size: 3, Body: []types.Point{{X: 0, Y: 0}}})
	if r.size != 1 || r.over {
		t.Fatalf("after reset size=%d over=%v", r.size, r.over)
	}
	r.OnUpdate(game.Snapshot{Size: 3}, 2)
	r.OnGameOver()
	if r.size != 2 || !r.over {
		t.Fatalf("after game over size=%d over=%v", r.size, r.over)
	}
	r.OnReset(3, game.Snapshot{Size: 3, Body: []types.Point{{X: 0, Y: 0}}})
	if r.over {
		t.Fatal("reset should clear game over")
	}
}

func TestKeyMapCoversDirections(t *testing.T) {
	seen := make(map[types.Direction]int)
	for _, d := range keyMap {
		seen[d]++
	}
	for _, d := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		if seen[d] != 2 {
			t.Errorf("%v bound to %d keys, want arrow + WASD", d, seen[d])
		}
	}
	for _, c := range []types.Cell{types.Empty, types.Snake, types.Food} {
		if _, ok := palette[c]; !ok {
			t.Errorf("no colour for %v", c)
		}
	}
}
