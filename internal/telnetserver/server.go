package telnetserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"time"

	"github.com/azcoigreach/station-64/internal/menu"
	"github.com/azcoigreach/station-64/internal/petscii"
	"github.com/azcoigreach/station-64/internal/session"
	"github.com/azcoigreach/station-64/internal/types"
)

// defaultPollInterval bounds how long a connection goroutine blocks in
// a read before re-checking for shutdown. A timed-out read is not an
// error; the loop simply polls again.
const defaultPollInterval = 200 * time.Millisecond

// Config holds telnet server configuration. The historical telnet port
// (23) needs elevated privilege, so the default stays on 2323.
type Config struct {
	Host         string
	Port         int
	PollInterval time.Duration
}

// Server accepts raw TCP connections from legacy terminal hardware and
// runs each one through the menu engine.
type Server struct {
	config Config
	engine *menu.Engine

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a telnet server over the shared menu engine.
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
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Server{config: cfg, engine: engine}, nil
}

// ListenAndServe starts accepting connections and blocks until Close
// is called or the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	log.Printf("INFO: Telnet server listening on %s", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.listener == nil
			s.mu.Unlock()
			if closed || ctx.Err() != nil {
				return nil // clean shutdown
			}
			log.Printf("ERROR: Telnet accept error: %v", err)
			continue
		}
		go s.handleConnection(ctx, conn)
	}
}

// Close shuts down the listener. In-flight connections notice on their
// next poll tick.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		err := s.listener.Close()
		s.listener = nil
		return err
	}
	return nil
}

// handleConnection owns one legacy session from accept to teardown.
// All failure handling is local: losing this connection never affects
// another session.
func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	log.Printf("INFO: Telnet connection from %s", remoteAddr)

	sess := s.engine.CreateSession(types.ConnLegacy, remoteAddr)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: Telnet panic handling %s: %v", remoteAddr, r)
		}
		s.engine.CloseSession(sess)
		conn.Close()
		log.Printf("INFO: Telnet connection closed from %s", remoteAddr)
	}()

	if err := s.send(conn, s.engine.GetScreen(sess)); err != nil {
		return
	}

	framer := NewFramer()
	buf := make([]byte, 1024)

	for {
		if ctx.Err() != nil {
			return
		}

		conn.SetReadDeadline(time.Now().Add(s.config.PollInterval))
		n, err := conn.Read(buf)
		if n > 0 {
			for _, line := range framer.Push(buf[:n]) {
				if !s.handleLine(conn, sess, line) {
					return
				}
			}
		}
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue // poll interval elapsed with no data
			}
			if !errors.Is(err, io.EOF) {
				log.Printf("WARN: Telnet read error from %s: %v", remoteAddr, err)
			}
			return
		}
	}
}

// handleLine echoes, processes, and answers one command line. Returns
// false when the session is over.
func (s *Server) handleLine(conn net.Conn, sess *session.Session, line string) bool {
	// Host-side echo: legacy terminals expect the host to reflect input.
	if line != "" {
		if err := s.send(conn, line+"\r\n"); err != nil {
			return false
		}
	}

	response, showMenu := s.engine.ProcessInput(sess, line)
	if response != "" {
		if err := s.send(conn, response); err != nil {
			return false
		}
	}
	if !sess.Alive {
		return false
	}
	if showMenu {
		if err := s.send(conn, s.engine.GetScreen(sess)); err != nil {
			return false
		}
	}
	return true
}

// send PETSCII-encodes text and writes it out.
func (s *Server) send(conn net.Conn, text string) error {
	if _, err := conn.Write(petscii.Encode(text)); err != nil {
		return fmt.Errorf("telnet write failed: %w", err)
	}
	return nil
}
