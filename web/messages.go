package web

import (
	"strings"

	"torus-snake/game"
)

const (
	TypeReset    = "reset"
	TypeUpdate   = "update"
	TypeGameOver = "gameover"
	TypeInput    = "input"
	TypeRestart  = "restart"
)

// ServerMessage is pushed to every browser. Cells is the grid, row-major,
// one of '.', 'S', 'F' per cell. Over marks the final board of a game.
type ServerMessage struct {
	Type    string `json:"type"`
	Session string `json:"session,omitempty"`
	Grid    int    `json:"grid,omitempty"`
	Size    int    `json:"size,omitempty"`
	Cells   string `json:"cells,omitempty"`
	Over    bool   `json:"over,omitempty"`
}

// ClientMessage is sent by a browser: a direction or a restart request.
type ClientMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
}

func snapshotMessage(kind string, snap game.Snapshot, size int) ServerMessage {
	var cells strings.Builder
	cells.Grow(snap.Size * snap.Size)
	for y := 0; y < snap.Size; y++ {
		cells.WriteString(snap.Row(y))
	}
	return ServerMessage{
		Type:    kind,
		Session: snap.Session,
		Grid:    snap.Size,
		Size:    size,
		Cells:   cells.String(),
	}
}
