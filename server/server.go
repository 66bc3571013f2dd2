// Package server streams generated meshes to browser clients over a
// websocket and regenerates them on request.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"islandgen/config"
	"islandgen/core"
	"islandgen/mesh"
	"islandgen/scene"
)

const (
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	settings *config.Settings
	builder  *mesh.Builder
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex

	// genMu serialises regeneration and guards current. Broadcasts and
	// the first frame sent to a new client happen under it, so clients see
	// meshes in the order current changes.
	genMu   sync.RWMutex
	current core.MeshData
}

// New builds the initial scene and returns a server ready to accept
// clients. settings is copied.
func New(settings *config.Settings, builder *mesh.Builder) (*Server, error) {
	if builder == nil {
		builder = mesh.NewBuilder(nil)
	}
	s := &Server{
		settings: new(config.Settings),
		builder:  builder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for development
			},
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
	*s.settings = *settings

	res, err := scene.Build(context.Background(), s.settings, s.builder, scene.Request{Kind: scene.KindRadial, Normals: true, Colors: true})
	if err != nil {
		return nil, err
	}
	s.current = res.Data()
	log.Printf("Initial %s mesh: %d vertices, %d triangles", res.Kind, len(res.Meshes.Vertices), res.Meshes.TriangleCount())
	return s, nil
}

// Handler serves the websocket on /ws and a health probe on /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// and disconnects every client.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if rerr := <-errc; rerr != nil && !errors.Is(rerr, http.ErrServerClosed) {
		return rerr
	}
	return err
}

// Close disconnects every client.
func (s *Server) Close() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Current returns the last mesh broadcast to clients.
func (s *Server) Current() core.MeshData {
	s.genMu.RLock()
	defer s.genMu.RUnlock()
	return s.current
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.Clients(),
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()
	log.Printf("Client connected: %s", conn.RemoteAddr())

	if err := s.join(conn, connMutex); err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("WebSocket read error:", err)
			}
			break
		}

		var req scene.Request
		reqErr := json.Unmarshal(payload, &req)
		if reqErr != nil {
			reqErr = fmt.Errorf("malformed request: %w", reqErr)
		} else {
			reqErr = s.regenerate(r.Context(), req)
		}
		if reqErr == nil {
			continue
		}
		if err := s.send(conn, connMutex, core.ErrorData{Type: "error", Error: reqErr.Error()}); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
	log.Printf("Client disconnected: %s", conn.RemoteAddr())
}

// join registers conn and sends it the current mesh. Holding genMu keeps
// a concurrent broadcast from reaching conn ahead of an older mesh.
func (s *Server) join(conn *websocket.Conn, mu *sync.Mutex) error {
	s.genMu.RLock()
	defer s.genMu.RUnlock()

	s.clientsMu.Lock()
	s.clients[conn] = mu
	s.clientsMu.Unlock()
	return s.send(conn, mu, s.current)
}

// regenerate builds the requested scene, makes it current and broadcasts
// it. On error nothing is broadcast.
func (s *Server) regenerate(ctx context.Context, req scene.Request) error {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	start := time.Now()
	res, err := scene.Build(ctx, s.settings, s.builder, req)
	if err != nil {
		return err
	}
	data := res.Data()
	s.current = data

	log.Printf("Generated %s seed %d: %d vertices, %d triangles in %v",
		res.Kind, res.Seed, len(res.Meshes.Vertices), res.Meshes.TriangleCount(), time.Since(start))
	s.broadcast(data)
	return nil
}

func (s *Server) send(conn *websocket.Conn, mu *sync.Mutex, v any) error {
	mu.Lock()
	defer mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(v)
}

func (s *Server) broadcast(v any) {
	s.clientsMu.RLock()
	clientsToRemove := []*websocket.Conn{}
	for client, mutex := range s.clients {
		if err := s.send(client, mutex, v); err != nil {
			log.Println("WebSocket write error:", err)
			client.Close()
			clientsToRemove = append(clientsToRemove, client)
		}
	}
	s.clientsMu.RUnlock()

	// Remove failed clients
	if len(clientsToRemove) > 0 {
		s.clientsMu.Lock()
		for _, client := range clientsToRemove {
			delete(s.clients, client)
		}
		s.clientsMu.Unlock()
	}
}
