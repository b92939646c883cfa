package websocket

import (
	"log/slog"
	"sync"
)

// Registry tracks, per user id, the set of currently-open connections for
// fan-out. A user may hold several connections at once (multiple tabs or
// devices). The state is process-local and rebuilt from nothing on restart.
type Registry struct {
	mu     sync.RWMutex
	conns  map[int64]map[*Client]struct{}
	logger *slog.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		conns:  make(map[int64]map[*Client]struct{}),
		logger: slog.Default(),
	}
}

// Register adds a connection to the user's set, creating the set if absent.
// Registering an already-present connection has no additional effect.
func (r *Registry) Register(userID int64, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.conns[userID]
	if !ok {
		set = make(map[*Client]struct{})
		r.conns[userID] = set
	}
	set[client] = struct{}{}
	r.logger.Info("connection_registered",
		"user_id", userID,
		"connection_id", client.ID,
		"connections", len(set),
	)
}

// Unregister removes a connection from the user's set. Removing a connection
// that was never registered is a no-op, not an error.
func (r *Registry) Unregister(userID int64, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.conns[userID]
	if !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(r.conns, userID)
	}
	r.logger.Info("connection_unregistered",
		"user_id", userID,
		"connection_id", client.ID,
	)
}

// Connections returns a snapshot of the user's live connections; an empty
// slice is the normal answer for a user with nothing connected. The snapshot
// may go stale immediately, callers must tolerate sends to closing peers.
func (r *Registry) Connections(userID int64) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.conns[userID]
	clients := make([]*Client, 0, len(set))
	for client := range set {
		clients = append(clients, client)
	}
	return clients
}
