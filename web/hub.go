// Package web streams the game to browsers over websockets and takes their
// key presses back as input.
package web

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"torus-snake/game"
	"torus-snake/game/types"
)

//go:embed static
var static embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub is a render sink and input source shared by every connected browser.
type Hub struct {
	mu        sync.Mutex
	clients   map[*Connection]bool
	last      []byte
	frame     ServerMessage
	onInput   func(types.Direction)
	onRestart func()
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Connection]bool),
	}
}

func (h *Hub) Bind(onInput func(types.Direction)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onInput = onInput
}

// OnRestart sets the callback run when a browser asks for a new game.
func (h *Hub) OnRestart(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRestart = fn
}

func (h *Hub) OnReset(size int, snap game.Snapshot) {
	h.broadcast(snapshotMessage(TypeReset, snap, len(snap.Body)))
}

func (h *Hub) OnUpdate(snap game.Snapshot, size int) {
	h.broadcast(snapshotMessage(TypeUpdate, snap, size))
}

// OnGameOver repeats the final board with Over set, so late joiners see it too.
func (h *Hub) OnGameOver() {
	h.mu.Lock()
	msg := h.frame
	h.mu.Unlock()
	msg.Type = TypeGameOver
	msg.Over = true
	h.broadcast(msg)
}

// Clients returns the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast sends msg to every browser and keeps it for those joining later.
func (h *Hub) broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("web: marshal %s: %v", msg.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	h.frame = msg
	for c := range h.clients {
		if !c.enqueue(data) {
			// Too slow to keep up; the browser reconnects and resyncs.
			h.removeLocked(c)
		}
	}
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
	if h.last != nil {
		c.enqueue(h.last)
	}
}

func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Connection) {
	if h.clients[c] {
		delete(h.clients, c)
		c.close()
	}
}

// Close disconnects every browser.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) handleMessage(c *Connection, data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("web: bad message: %v", err)
		return
	}

	h.mu.Lock()
	onInput, onRestart := h.onInput, h.onRestart
	h.mu.Unlock()

	switch msg.Type {
	case TypeInput:
		d, err := types.ParseDirection(msg.Direction)
		if err != nil {
			log.Printf("web: %v", err)
			return
		}
		if onInput != nil {
			onInput(d)
		}
	case TypeRestart:
		if onRestart != nil {
			onRestart()
		}
	default:
		log.Printf("web: unknown message type %q", msg.Type)
	}
}

// ServeWS upgrades the request and serves one browser until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: upgrade: %v", err)
		return
	}

	c := NewConnection(ws)
	h.register(c)
	go c.WritePump()
	c.ReadPump(h.handleMessage)
	h.unregister(c)
}

// Handler serves the page at / and the socket at /ws.
func (h *Hub) Handler() http.Handler {
	page, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.Handle("/", http.FileServer(http.FS(page)))
	return mux
}
