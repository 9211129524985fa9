// Package sshserver serves the BBS over SSH. SSH clients speak UTF-8
// and ANSI, so their sessions are handled as framed-kind sessions: one
// terminal line in, one rendered response out.
package sshserver

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/term"

	"github.com/azcoigreach/station-64/internal/menu"
	"github.com/azcoigreach/station-64/internal/types"
)

// Config holds SSH server configuration.
type Config struct {
	Host        string
	Port        int
	HostKeyPath string
}

// Server is the SSH front end over the shared menu engine.
type Server struct {
	config Config
	engine *menu.Engine
	ssh    *ssh.Server
}

// NewServer creates the SSH server, loading the host key from
// HostKeyPath or generating and persisting an ed25519 key when absent.
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

	signer, err := loadOrCreateHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare SSH host key: %w", err)
	}

	s := &Server{config: cfg, engine: engine}
	s.ssh = &ssh.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: s.handleSession,
	}
	s.ssh.AddHostKey(signer)
	return s, nil
}

// ListenAndServe starts accepting SSH connections and blocks until
// Close is called.
func (s *Server) ListenAndServe(ctx context.Context) error {
	log.Printf("INFO: SSH server listening on %s", s.ssh.Addr)
	if err := s.ssh.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
		return fmt.Errorf("ssh server failed: %w", err)
	}
	return nil
}

// Close shuts down the SSH server and its active sessions.
func (s *Server) Close() error {
	return s.ssh.Close()
}

// handleSession owns one SSH session from channel open to teardown.
func (s *Server) handleSession(sshSess ssh.Session) {
	remoteAddr := sshSess.RemoteAddr().String()
	log.Printf("INFO: SSH connection from %s (user %q)", remoteAddr, sshSess.User())

	sess := s.engine.CreateSession(types.ConnFramed, remoteAddr)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: SSH panic handling %s: %v", remoteAddr, r)
		}
		s.engine.CloseSession(sess)
		sshSess.Close()
		log.Printf("INFO: SSH connection closed from %s", remoteAddr)
	}()

	if err := writeText(sshSess, s.engine.GetScreen(sess)); err != nil {
		return
	}

	// term.Terminal handles raw-mode line editing and echoes keystrokes
	// itself, so no host-side echo is added here.
	t := term.NewTerminal(sshSess, "")

	for {
		line, err := t.ReadLine()
		if err != nil {
			return // peer closed or I/O failure: abort this session only
		}

		response, showMenu := s.engine.ProcessInput(sess, strings.TrimSpace(line))
		if response != "" {
			if err := writeText(sshSess, response); err != nil {
				return
			}
		}
		if !sess.Alive {
			return
		}
		if showMenu {
			if err := writeText(sshSess, s.engine.GetScreen(sess)); err != nil {
				return
			}
		}
	}
}

// writeText writes UTF-8 text to the SSH channel with CRLF line endings.
func writeText(sess ssh.Session, text string) error {
	if _, err := sess.Write([]byte(strings.ReplaceAll(text, "\n", "\r\n"))); err != nil {
		return fmt.Errorf("ssh write failed: %w", err)
	}
	return nil
}

// loadOrCreateHostKey returns a signer for the key at path, generating
// and saving a new ed25519 key when the file does not exist.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if path == "" {
		path = "ssh_host_key"
	}

	if data, err := os.ReadFile(path); err == nil {
		signer, err := gossh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse host key %s: %w", path, err)
		}
		return signer, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read host key %s: %w", path, err)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate host key: %w", err)
	}

	block, err := gossh.MarshalPrivateKey(priv, "station-64 host key")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("failed to save host key %s: %w", path, err)
	}
	log.Printf("INFO: Generated new SSH host key at %s", path)

	return gossh.NewSignerFromKey(priv)
}
