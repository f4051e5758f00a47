// Package inspect serves a live view of an attached control set over HTTP:
// a JSON snapshot endpoint for one-shot queries and a websocket endpoint
// streaming the snapshot the host publishes each tick. Snapshots are
// captured on the UI goroutine and handed off as immutable values, so the
// server never reads live controls.
package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/go-fader/fader/pkg/surface"
)

// RectState is the JSON form of a control rectangle.
type RectState struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// ControlState is one control's entry in a snapshot.
type ControlState struct {
	Type   string    `json:"type"`
	Tag    int       `json:"tag"`
	Group  string    `json:"group,omitempty"`
	Bounds RectState `json:"bounds"`
	Values []float64 `json:"values"`
	Params []int     `json:"params"`
	Dirty  bool      `json:"dirty"`
	Hidden bool      `json:"hidden"`
	Grayed bool      `json:"grayed"`
}

// Snapshot is the full state of a surface at one instant.
type Snapshot struct {
	Timestamp int64          `json:"timestamp"`
	Controls  []ControlState `json:"controls"`
}

// Capture reads a surface into a snapshot. Call it from the UI goroutine,
// typically right before the redraw pass.
func Capture(s *surface.Surface) Snapshot {
	snap := Snapshot{
		Timestamp: time.Now().UnixMilli(),
		Controls:  make([]ControlState, 0, s.NumControls()),
	}
	for i := 0; i < s.NumControls(); i++ {
		c := s.ControlAt(i)
		b := c.Bounds()
		st := ControlState{
			Type:   reflect.TypeOf(c.Self()).String(),
			Tag:    c.Tag(),
			Group:  c.Group(),
			Bounds: RectState{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom},
			Values: make([]float64, c.NumValues()),
			Params: make([]int, c.NumValues()),
			Dirty:  c.Dirty(),
			Hidden: c.Hidden(),
			Grayed: c.Grayed(),
		}
		for v := 0; v < c.NumValues(); v++ {
			st.Values[v] = c.Value(v)
			st.Params[v] = c.ParamIdx(v)
		}
		snap.Controls = append(snap.Controls, st)
	}
	return snap
}

const writeTimeout = 2 * time.Second

// Server publishes snapshots over HTTP and websocket.
type Server struct {
	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	latest   []byte
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewServer returns a server with no listener; call Start.
func NewServer() *Server {
	return &Server{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Local tooling connects from file:// pages and editors.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start binds the listener and begins serving. Pass port 0 for an
// ephemeral port; the bound port is returned either way.
func (s *Server) Start(port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return s.listener.Addr().(*net.TCPAddr).Port, nil
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("inspect server listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/controls", s.handleControls)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{Handler: mux}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Stop shuts the server down and closes every websocket client.
func (s *Server) Stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
	s.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// Publish stores the snapshot for the /controls endpoint and streams it to
// every connected websocket client. Clients that fail a write are dropped.
func (s *Server) Publish(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("inspect snapshot encode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data

	for conn := range s.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
	return nil
}

func (s *Server) handleControls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	data := s.latest
	s.mu.Unlock()

	if data == nil {
		http.Error(w, "no snapshot published", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	// Register and send the latest snapshot under the same lock Publish
	// writes under; the connection must never have two concurrent writers.
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	if s.latest != nil {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, s.latest); err != nil {
			conn.Close()
			delete(s.clients, conn)
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	// Drain incoming frames so pings and close frames are processed; the
	// stream is one-way.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				if _, ok := s.clients[conn]; ok {
					conn.Close()
					delete(s.clients, conn)
				}
				s.mu.Unlock()
				return
			}
		}
	}()
}
