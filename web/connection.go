package web

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Connection wraps one browser's websocket with an outgoing queue.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
	once sync.Once
}

func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 64),
	}
}

// ReadPump passes every incoming message to handle until the socket closes.
func (c *Connection) ReadPump(handle func(*Connection, []byte)) {
	defer c.ws.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("web: read error: %v", err)
			}
			return
		}
		handle(c, message)
	}
}

// WritePump drains the send queue onto the socket.
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// enqueue queues a message without blocking. It reports false when the
// queue is full.
func (c *Connection) enqueue(message []byte) bool {
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

func (c *Connection) close() {
	c.once.Do(func() {
		close(c.send)
	})
}
