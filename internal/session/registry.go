package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/azcoigreach/station-64/internal/types"
)

// EventSink receives registry insert/delete notifications. This is the
// integration point for persistence collaborators; the core itself
// never reads or writes stored session data.
type EventSink interface {
	SessionCreated(s *Session)
	SessionRemoved(s *Session)
}

// Registry tracks all active sessions across both transports. It is
// the only structure in the core that is mutated from more than one
// goroutine.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	sink     EventSink
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// SetEventSink installs a collaborator that is notified on session
// create and remove. Call before serving; not synchronized against
// in-flight Create/Remove.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// Create allocates a new session, registers it, and returns it.
func (r *Registry) Create(kind types.ConnKind, remoteAddr, initialMenu string) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:           uuid.NewString(),
		Kind:         kind,
		RemoteAddr:   remoteAddr,
		CreatedAt:    now,
		LastActivity: now,
		CurrentMenu:  initialMenu,
		Alive:        true,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	if r.sink != nil {
		r.sink.SessionCreated(s)
	}
	return s
}

// Get returns the session with the given ID, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Remove deregisters a session. Safe to call more than once.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if ok && r.sink != nil {
		r.sink.SessionRemoved(s)
	}
}

// SetDisplayName publishes a session's display name under the registry
// lock. Session data is otherwise owned by its connection goroutine;
// routing the name through here is what lets ListActive read it from
// other goroutines.
func (r *Registry) SetDisplayName(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.DisplayName = name
	}
}

// Info is a value snapshot of one session, safe to hold and read
// outside the registry lock.
type Info struct {
	ID          string
	Kind        types.ConnKind
	RemoteAddr  string
	CreatedAt   time.Time
	DisplayName string
}

// ListActive returns value snapshots of all registered sessions,
// oldest first. Snapshots are taken under the lock, never live
// pointers: session structs belong to their connection goroutines.
func (r *Registry) ListActive() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		result = append(result, Info{
			ID:          s.ID,
			Kind:        s.Kind,
			RemoteAddr:  s.RemoteAddr,
			CreatedAt:   s.CreatedAt,
			DisplayName: s.DisplayName,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Count returns the number of registered sessions per connection kind.
func (r *Registry) Count() (legacy, framed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.Kind == types.ConnLegacy {
			legacy++
		} else {
			framed++
		}
	}
	return legacy, framed
}
