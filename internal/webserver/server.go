// Package webserver serves the framed transport: a websocket endpoint
// where every text message is one logical line, UTF-8 in both
// directions with no legacy-codec translation.
package webserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/azcoigreach/station-64/internal/menu"
	"github.com/azcoigreach/station-64/internal/types"
)

// Config holds web server configuration.
type Config struct {
	Host string
	Port int
}

// Server exposes the BBS over websocket at /ws plus a /health probe.
type Server struct {
	config Config
	engine *menu.Engine

	httpServer *http.Server
	upgrader   websocket.Upgrader
}

// NewServer creates the framed-transport server over the shared engine.
func NewServer(cfg Config, engine *menu.Engine) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("menu engine is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}

	s := &Server{
		config: cfg,
		engine: engine,
		upgrader: websocket.Upgrader{
			// Browser terminal clients connect cross-origin in practice.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)
	mux.HandleFunc("/health", s.handleHealth)
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: mux,
	}
	return s, nil
}

// ListenAndServe starts the HTTP server and blocks until shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }
	log.Printf("INFO: Web server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// Close shuts the HTTP server down, closing active websockets.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "station-64-bbs",
	})
}

// handleWebsocket owns one framed session from upgrade to teardown.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WARN: Websocket upgrade failed from %s: %v", r.RemoteAddr, err)
		return
	}

	remoteAddr := conn.RemoteAddr().String()
	log.Printf("INFO: Websocket connection from %s", remoteAddr)

	sess := s.engine.CreateSession(types.ConnFramed, remoteAddr)

	var closeOnce sync.Once
	closeConn := func() { closeOnce.Do(func() { conn.Close() }) }

	defer func() {
		s.engine.CloseSession(sess)
		closeConn()
		log.Printf("INFO: Websocket connection closed from %s", remoteAddr)
	}()

	// A blocked ReadMessage only returns when the connection closes, so
	// shutdown closes the socket out from under it.
	ctx := r.Context()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			closeConn()
		case <-done:
		}
	}()

	if err := s.sendText(conn, s.engine.GetScreen(sess)); err != nil {
		return
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				log.Printf("WARN: Websocket read error from %s: %v", remoteAddr, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		// Each message is already one logical line.
		line := strings.TrimRight(string(data), "\r\n")
		trimmed := strings.TrimSpace(line)

		if trimmed != "" {
			if err := s.sendText(conn, "\n"+line+"\n"); err != nil {
				return
			}
		}

		response, showMenu := s.engine.ProcessInput(sess, trimmed)
		if response != "" {
			if err := s.sendText(conn, response); err != nil {
				return
			}
		}
		if !sess.Alive {
			return
		}
		if showMenu {
			if err := s.sendText(conn, s.engine.GetScreen(sess)); err != nil {
				return
			}
		}
	}
}

func (s *Server) sendText(conn *websocket.Conn, text string) error {
	if err := conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		return fmt.Errorf("websocket write failed: %w", err)
	}
	return nil
}
