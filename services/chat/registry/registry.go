package registry

import "sync"

// Registry tracks which connections belong to which rooms. A connection may
// join any number of rooms; a room holds any number of connections. All
// state is in-process and discarded on restart.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[string]struct{} // roomID -> connIDs
	conns map[string]map[string]struct{} // connID -> roomIDs
}

// NewRegistry creates an empty room registry
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[string]struct{}),
		conns: make(map[string]map[string]struct{}),
	}
}

// Join adds the connection to the room. Joining a room already joined is a
// no-op.
func (r *Registry) Join(connID, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[roomID] == nil {
		r.rooms[roomID] = make(map[string]struct{})
	}
	r.rooms[roomID][connID] = struct{}{}

	if r.conns[connID] == nil {
		r.conns[connID] = make(map[string]struct{})
	}
	r.conns[connID][roomID] = struct{}{}
}

// LeaveAll removes every membership for the connection. Both explicit leave
// and disconnect are full teardown.
func (r *Registry) LeaveAll(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomID := range r.conns[connID] {
		delete(r.rooms[roomID], connID)
		if len(r.rooms[roomID]) == 0 {
			delete(r.rooms, roomID)
		}
	}
	delete(r.conns, connID)
}

// Members returns a snapshot of the connections currently in the room. The
// snapshot is taken under one lock so a single send sees a consistent
// membership.
func (r *Registry) Members(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]string, 0, len(r.rooms[roomID]))
	for connID := range r.rooms[roomID] {
		members = append(members, connID)
	}
	return members
}

// Rooms returns a snapshot of the rooms the connection has joined
func (r *Registry) Rooms(connID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]string, 0, len(r.conns[connID]))
	for roomID := range r.conns[connID] {
		rooms = append(rooms, roomID)
	}
	return rooms
}
