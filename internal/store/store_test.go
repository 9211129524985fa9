package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/azcoigreach/station-64/internal/session"
	"github.com/azcoigreach/station-64/internal/types"
)

func TestSessionLogAppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")
	sessionLog, err := NewSessionLog(path)
	if err != nil {
		t.Fatalf("NewSessionLog: %v", err)
	}

	registry := session.NewRegistry()
	registry.SetEventSink(sessionLog)

	s := registry.Create(types.ConnLegacy, "10.0.0.1:4000", "ENTRY")
	s.DisplayName = "GUEST"
	registry.Remove(s.ID)
	if err := sessionLog.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var records []sessionRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec sessionRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("bad JSONL line %q: %v", scanner.Text(), err)
		}
		records = append(records, rec)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Event != "created" || records[1].Event != "removed" {
		t.Errorf("events = %q, %q", records[0].Event, records[1].Event)
	}
	if records[0].SessionID != s.ID {
		t.Errorf("session ID = %q, want %q", records[0].SessionID, s.ID)
	}
	if records[0].Kind != "legacy" {
		t.Errorf("kind = %q, want legacy", records[0].Kind)
	}
	if records[1].DisplayName != "GUEST" {
		t.Errorf("removed record name = %q", records[1].DisplayName)
	}
}

func TestSessionLogReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")

	for i := 0; i < 2; i++ {
		sessionLog, err := NewSessionLog(path)
		if err != nil {
			t.Fatalf("NewSessionLog: %v", err)
		}
		sessionLog.SessionCreated(&session.Session{ID: "x", Kind: types.ConnFramed})
		sessionLog.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("lines = %d, want 2 (append across reopen)", lines)
	}
}

func TestNopSink(t *testing.T) {
	var sink session.EventSink = NopSink{}
	sink.SessionCreated(nil)
	sink.SessionRemoved(nil)
}
