package session

import (
	"time"

	"github.com/azcoigreach/station-64/internal/types"
)

// PageCursor tracks a session's position within a paginated document.
// Either the whole cursor is present or the session is not paginating;
// a live cursor always has 0 <= Index < len(Pages).
type PageCursor struct {
	Pages    []string
	Index    int
	PageSize int
}

// Session is the per-connection state record. It is exclusively owned
// by the goroutine handling its connection; only the registry mapping
// is shared across connections. DisplayName is the one exception:
// other goroutines read it via registry snapshots, so writes go
// through Registry.SetDisplayName rather than the field.
type Session struct {
	ID            string
	Kind          types.ConnKind
	RemoteAddr    string
	CreatedAt     time.Time
	LastActivity  time.Time
	Authenticated bool
	DisplayName   string
	CurrentMenu   string
	WaitingForAck bool
	Pager         *PageCursor
	Alive         bool
}

// Touch updates the last-activity timestamp.
func (s *Session) Touch() {
	s.LastActivity = time.Now().UTC()
}
