package loop

import (
	"sync"
	"time"
)

// EventType identifies a lobby-wide event.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is sent from the lobby to every joined session.
type Event struct {
	Type EventType
}

// Lobby tracks live sessions so the host can notify them and wait for them
// to leave. Each session plays its own independent round.
type Lobby struct {
	mu       sync.RWMutex
	sessions map[int]chan Event
	nextID   int
}

// NewLobby creates an empty lobby.
func NewLobby() *Lobby {
	return &Lobby{
		sessions: make(map[int]chan Event),
		nextID:   1,
	}
}

// Join registers a session and returns its id and event channel.
func (l *Lobby) Join() (int, <-chan Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	ch := make(chan Event, 4)
	l.sessions[id] = ch
	return id, ch
}

// Leave unregisters a session. Unknown ids are ignored.
func (l *Lobby) Leave(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, id)
}

// Count returns the number of live sessions.
func (l *Lobby) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sessions)
}

// Shutdown notifies every session and waits until all have left or the
// timeout elapses. Returns the number of sessions still connected.
func (l *Lobby) Shutdown(timeout time.Duration) int {
	l.mu.RLock()
	for _, ch := range l.sessions {
		select {
		case ch <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	l.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if remaining := l.Count(); remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			return l.Count()
		case <-ticker.C:
		}
	}
}
