package session

import (
	"sync"
	"testing"
	"time"

	"github.com/azcoigreach/station-64/internal/types"
)

func TestCreateAndGet(t *testing.T) {
	r := NewRegistry()
	s := r.Create(types.ConnLegacy, "10.0.0.1:4000", "ENTRY")

	if s.ID == "" {
		t.Fatal("session ID is empty")
	}
	if s.Kind != types.ConnLegacy {
		t.Errorf("Kind = %v, want legacy", s.Kind)
	}
	if s.CurrentMenu != "ENTRY" {
		t.Errorf("CurrentMenu = %q, want ENTRY", s.CurrentMenu)
	}
	if !s.Alive {
		t.Error("new session not alive")
	}
	if got := r.Get(s.ID); got != s {
		t.Error("Get did not return the created session")
	}
}

func TestGetMissing(t *testing.T) {
	r := NewRegistry()
	if got := r.Get("no-such-id"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestUniqueIDs(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := r.Create(types.ConnFramed, "", "ENTRY")
		if seen[s.ID] {
			t.Fatalf("duplicate session ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestRemoveIdempotent(t *testing.T) {
	r := NewRegistry()
	s := r.Create(types.ConnLegacy, "", "ENTRY")

	r.Remove(s.ID)
	if got := r.Get(s.ID); got != nil {
		t.Error("session still present after Remove")
	}
	r.Remove(s.ID) // second remove must not panic or re-notify
}

func TestListActiveOrdering(t *testing.T) {
	r := NewRegistry()
	first := r.Create(types.ConnLegacy, "", "ENTRY")
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	second := r.Create(types.ConnFramed, "", "ENTRY")

	list := r.ListActive()
	if len(list) != 2 {
		t.Fatalf("ListActive = %d sessions, want 2", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Error("ListActive not ordered oldest first")
	}
}

func TestListActiveReturnsSnapshots(t *testing.T) {
	r := NewRegistry()
	s := r.Create(types.ConnLegacy, "10.0.0.1:4000", "ENTRY")
	r.SetDisplayName(s.ID, "GUEST")

	list := r.ListActive()
	if len(list) != 1 {
		t.Fatalf("ListActive = %d sessions, want 1", len(list))
	}
	info := list[0]
	if info.DisplayName != "GUEST" {
		t.Errorf("DisplayName = %q, want GUEST", info.DisplayName)
	}
	if info.RemoteAddr != "10.0.0.1:4000" {
		t.Errorf("RemoteAddr = %q", info.RemoteAddr)
	}

	// Mutating the snapshot must not touch the live session.
	list[0].DisplayName = "changed"
	if s.DisplayName != "GUEST" {
		t.Errorf("snapshot mutation leaked into session: %q", s.DisplayName)
	}
}

func TestSetDisplayName(t *testing.T) {
	r := NewRegistry()
	s := r.Create(types.ConnFramed, "", "ENTRY")

	r.SetDisplayName(s.ID, "GUEST")
	if s.DisplayName != "GUEST" {
		t.Errorf("DisplayName = %q, want GUEST", s.DisplayName)
	}

	r.SetDisplayName("no-such-id", "X") // must not panic
}

func TestSetDisplayNameConcurrentWithListActive(t *testing.T) {
	r := NewRegistry()
	s := r.Create(types.ConnFramed, "", "ENTRY")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			r.SetDisplayName(s.ID, "GUEST")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			for _, info := range r.ListActive() {
				_ = info.DisplayName
			}
		}
	}()
	wg.Wait()
}

func TestCount(t *testing.T) {
	r := NewRegistry()
	r.Create(types.ConnLegacy, "", "ENTRY")
	r.Create(types.ConnLegacy, "", "ENTRY")
	r.Create(types.ConnFramed, "", "ENTRY")

	legacy, framed := r.Count()
	if legacy != 2 || framed != 1 {
		t.Errorf("Count = (%d, %d), want (2, 1)", legacy, framed)
	}
}

type countingSink struct {
	mu      sync.Mutex
	created int
	removed int
}

func (c *countingSink) SessionCreated(*Session) {
	c.mu.Lock()
	c.created++
	c.mu.Unlock()
}

func (c *countingSink) SessionRemoved(*Session) {
	c.mu.Lock()
	c.removed++
	c.mu.Unlock()
}

func TestEventSinkNotifications(t *testing.T) {
	r := NewRegistry()
	sink := &countingSink{}
	r.SetEventSink(sink)

	s := r.Create(types.ConnLegacy, "", "ENTRY")
	r.Remove(s.ID)
	r.Remove(s.ID)

	if sink.created != 1 {
		t.Errorf("created notifications = %d, want 1", sink.created)
	}
	if sink.removed != 1 {
		t.Errorf("removed notifications = %d, want 1 (idempotent remove)", sink.removed)
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := r.Create(types.ConnFramed, "", "ENTRY")
			r.Get(s.ID)
			r.ListActive()
			r.Count()
			r.Remove(s.ID)
		}()
	}
	wg.Wait()

	if len(r.ListActive()) != 0 {
		t.Error("sessions leaked after concurrent create/remove")
	}
}

func TestTouch(t *testing.T) {
	r := NewRegistry()
	s := r.Create(types.ConnLegacy, "", "ENTRY")
	before := s.LastActivity
	time.Sleep(time.Millisecond)
	s.Touch()
	if !s.LastActivity.After(before) {
		t.Error("Touch did not advance LastActivity")
	}
}
