// Package wsnotify fans contact change events out to websocket clients.
package wsnotify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"contacts-api/internal/utils"
)

const (
	writeWait = 5 * time.Second
	// sendBuffer is how many events may queue for one client before it is
	// dropped as too slow.
	sendBuffer = 16
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// writePump is the only writer of c.conn data frames.
func (c *client) writePump(m *WebSocketManager) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			utils.LogDebug("Dropping websocket client %s: %v", c.conn.RemoteAddr(), err)
			m.RemoveClient(c.conn)
			return
		}
	}
}

type WebSocketManager struct {
	clients  map[*websocket.Conn]*client
	lock     sync.Mutex
	upgrader websocket.Upgrader
}

// NewManager accepts upgrades from requests for which checkOrigin returns
// true. A nil checkOrigin keeps the gorilla same-host check.
func NewManager(checkOrigin func(r *http.Request) bool) *WebSocketManager {
	return &WebSocketManager{
		clients: make(map[*websocket.Conn]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

func (m *WebSocketManager) Upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return m.upgrader.Upgrade(w, r, nil)
}

// AddClient registers conn and starts its writer.
func (m *WebSocketManager) AddClient(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.clients[conn]; ok {
		return
	}
	m.clients[conn] = c
	go c.writePump(m)
}

// RemoveClient unregisters conn. Its writer closes the connection once the
// queued events are flushed.
func (m *WebSocketManager) RemoveClient(conn *websocket.Conn) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.removeLocked(conn)
}

func (m *WebSocketManager) removeLocked(conn *websocket.Conn) {
	if c, ok := m.clients[conn]; ok {
		delete(m.clients, conn)
		close(c.send)
	}
}

func (m *WebSocketManager) ClientCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.clients)
}

// Broadcast queues event for every client without waiting on the network.
// A client whose queue is full is dropped.
func (m *WebSocketManager) Broadcast(event interface{}) {
	msg, err := json.Marshal(event)
	if err != nil {
		utils.LogError("Error encoding websocket event: %v", err)
		return
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	for conn, c := range m.clients {
		select {
		case c.send <- msg:
		default:
			utils.LogDebug("Dropping slow websocket client %s", conn.RemoteAddr())
			m.removeLocked(conn)
		}
	}
}

func (m *WebSocketManager) Publish(eventType string, payload interface{}) {
	m.Broadcast(Event{Type: eventType, Payload: payload})
}

// CloseAll disconnects every client.
func (m *WebSocketManager) CloseAll() {
	m.lock.Lock()
	defer m.lock.Unlock()
	for conn := range m.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		m.removeLocked(conn)
	}
}
