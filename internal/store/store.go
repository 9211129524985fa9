// Package store holds the persistence collaborators. The session/menu
// core never reads or writes stored data; collaborators here only
// observe the registry's create/remove events.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/azcoigreach/station-64/internal/session"
)

// NopSink is the default persistence collaborator: it does nothing.
// Account and session durability are reserved for a future auth
// integration.
type NopSink struct{}

func (NopSink) SessionCreated(*session.Session) {}
func (NopSink) SessionRemoved(*session.Session) {}

// sessionRecord is one JSONL line in the session log.
type sessionRecord struct {
	Event       string    `json:"event"`
	SessionID   string    `json:"session_id"`
	Kind        string    `json:"kind"`
	RemoteAddr  string    `json:"remote_addr"`
	DisplayName string    `json:"display_name,omitempty"`
	At          time.Time `json:"at"`
}

// SessionLog appends session create/remove events to a JSONL file.
// Write failures are logged and swallowed: persistence is advisory and
// must never affect a connection.
type SessionLog struct {
	mu   sync.Mutex
	file *os.File
}

// NewSessionLog opens (or creates) the log file for appending.
func NewSessionLog(path string) (*SessionLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log %s: %w", path, err)
	}
	return &SessionLog{file: f}, nil
}

// SessionCreated implements session.EventSink.
func (l *SessionLog) SessionCreated(s *session.Session) {
	l.append("created", s)
}

// SessionRemoved implements session.EventSink.
func (l *SessionLog) SessionRemoved(s *session.Session) {
	l.append("removed", s)
}

// Close flushes and closes the log file.
func (l *SessionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *SessionLog) append(event string, s *session.Session) {
	rec := sessionRecord{
		Event:       event,
		SessionID:   s.ID,
		Kind:        s.Kind.String(),
		RemoteAddr:  s.RemoteAddr,
		DisplayName: s.DisplayName,
		At:          time.Now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("WARN: Session log marshal failed: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.file.Write(append(data, '\n')); err != nil {
		log.Printf("WARN: Session log write failed: %v", err)
	}
}
