package game

import (
	"errors"
	"sync"

	"github.com/cardroom/blackjack/events"
)

// Lobby tracks the live blackjack sessions and the players watching them
type Lobby struct {
	sessions map[string]*Session
	mutex    sync.RWMutex

	store         events.EventStore
	eventHandlers []events.EventHandler
}

// NewLobby creates an empty lobby backed by the given event store
func NewLobby(store events.EventStore) *Lobby {
	return &Lobby{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// AddEventHandler registers a handler for every current and future
// session's events
func (l *Lobby) AddEventHandler(handler events.EventHandler) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.eventHandlers = append(l.eventHandlers, handler)
	for _, session := range l.sessions {
		session.AddEventHandler(handler)
	}
}

// CreateSession opens a new session with the given rules
func (l *Lobby) CreateSession(rules Rules) (*Session, error) {
	if rules.NumDecks <= 0 {
		return nil, errors.New("sessions need at least one deck")
	}
	if rules.NumSpots <= 0 {
		return nil, errors.New("sessions need at least one spot")
	}

	session := NewSession(rules, l.store)

	l.mutex.Lock()
	defer l.mutex.Unlock()
	for _, handler := range l.eventHandlers {
		session.AddEventHandler(handler)
	}
	l.sessions[session.ID] = session
	return session, nil
}

// GetSession looks up a session by table ID
func (l *Lobby) GetSession(tableID string) (*Session, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	session, ok := l.sessions[tableID]
	return session, ok
}

// Sessions returns all live sessions
func (l *Lobby) Sessions() []*Session {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	out := make([]*Session, 0, len(l.sessions))
	for _, session := range l.sessions {
		out = append(out, session)
	}
	return out
}

// CloseSession removes a session from the lobby
func (l *Lobby) CloseSession(tableID string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if _, ok := l.sessions[tableID]; !ok {
		return errors.New("session not found")
	}
	delete(l.sessions, tableID)
	return nil
}
