package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"LashMap/internal/state"

	"github.com/gorilla/websocket"
)

// MirrorPath is where a host serves its live mirror.
const MirrorPath = "/mirror"

const writeWait = 5 * time.Second

// Hub fans every saved snapshot out to connected viewers. A viewer that
// connects late is sent the latest snapshot first.
type Hub struct {
	mu       sync.Mutex
	peers    map[*websocket.Conn]bool
	latest   []byte
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		peers: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Viewers are native clients on the LAN, not browsers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[conn] = true
	log.Printf("[MIRROR] Viewer connected: %s", conn.RemoteAddr())
	if h.latest != nil {
		if err := write(conn, h.latest); err != nil {
			log.Printf("[MIRROR] Replay to %s failed: %v", conn.RemoteAddr(), err)
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.peers[conn] {
		delete(h.peers, conn)
		conn.Close()
		log.Printf("[MIRROR] Viewer disconnected: %s", conn.RemoteAddr())
	}
}

// Count reports the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

// Publish sends s to every viewer. It has the shape of state.SaveFunc so it
// can sit directly behind an editor.
func (h *Hub) Publish(s state.Snapshot) {
	data, err := state.EncodeSnapshot(s)
	if err != nil {
		log.Printf("[MIRROR] %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for conn := range h.peers {
		if err := write(conn, data); err != nil {
			log.Printf("[MIRROR] Error sending to %s: %v", conn.RemoteAddr(), err)
			delete(h.peers, conn)
			conn.Close()
		}
	}
}

func write(conn *websocket.Conn, data []byte) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// ServeHTTP upgrades a viewer and holds the connection until it goes away.
// Viewers are read-only; anything they send is discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[MIRROR] Upgrade failed: %v", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Close drops every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.peers {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "host closed"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(h.peers, conn)
	}
}

// Serve listens on port until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle(MirrorPath, h)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		<-ctx.Done()
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[MIRROR] Host listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mirror server: %w", err)
	}
	return nil
}

// Subscribe connects to the host at addr and calls apply with every snapshot
// it sends, until ctx is cancelled or the host goes away.
func Subscribe(ctx context.Context, addr string, apply func(state.Snapshot)) error {
	url := "ws://" + addr + MirrorPath
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer conn.Close()
	log.Printf("[MIRROR] Following host %s", addr)

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read from %s: %w", addr, err)
		}
		s, err := state.DecodeSnapshot(data)
		if err != nil {
			log.Printf("[MIRROR] Dropping bad message: %v", err)
			continue
		}
		apply(s)
	}
}
