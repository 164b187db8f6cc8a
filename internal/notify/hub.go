package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans notifications out to the websocket connections of each
// session. A session may hold several tabs, so connections are tracked
// per session id.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*connection]struct{}
}

type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewHub creates an empty notification hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*connection]struct{})}
}

// Push implements Notifier. Connections with a full send buffer are
// dropped rather than blocked on.
func (h *Hub) Push(sessionID string, n Notification) {
	if n.Duration == 0 {
		n.Duration = DefaultDurationMS
	}
	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("notify: marshal failed: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns[sessionID] {
		select {
		case conn.send <- payload:
		default:
			go h.detach(sessionID, conn)
		}
	}
}

// Serve upgrades the request and attaches the connection to the session.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sessionID string) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("notify: upgrade failed: %v", err)
		return
	}

	conn := &connection{ws: ws, send: make(chan []byte, 16)}

	h.mu.Lock()
	if h.conns[sessionID] == nil {
		h.conns[sessionID] = make(map[*connection]struct{})
	}
	h.conns[sessionID][conn] = struct{}{}
	h.mu.Unlock()

	go h.writePump(sessionID, conn)
	go h.readPump(sessionID, conn)
}

func (h *Hub) detach(sessionID string, conn *connection) {
	h.mu.Lock()
	if set, ok := h.conns[sessionID]; ok {
		if _, ok := set[conn]; ok {
			delete(set, conn)
			close(conn.send)
			if len(set) == 0 {
				delete(h.conns, sessionID)
			}
		}
	}
	h.mu.Unlock()
}

// readPump discards inbound frames; the stream is one-way. Its job is to
// notice the close handshake and keep the pong deadline fresh.
func (h *Hub) readPump(sessionID string, conn *connection) {
	defer func() {
		h.detach(sessionID, conn)
		conn.ws.Close()
	}()

	conn.ws.SetReadLimit(512)
	conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		conn.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("notify: websocket error: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(sessionID string, conn *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.ws.Close()
	}()

	for {
		select {
		case payload, ok := <-conn.send:
			conn.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
