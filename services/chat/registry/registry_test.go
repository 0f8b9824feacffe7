package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_JoinAndMembers(t *testing.T) {
	r := NewRegistry()

	r.Join("conn-1", "room-a")
	r.Join("conn-2", "room-a")
	r.Join("conn-2", "room-b")

	assert.ElementsMatch(t, []string{"conn-1", "conn-2"}, r.Members("room-a"))
	assert.ElementsMatch(t, []string{"conn-2"}, r.Members("room-b"))
	assert.ElementsMatch(t, []string{"room-a", "room-b"}, r.Rooms("conn-2"))
}

func TestRegistry_JoinIsIdempotent(t *testing.T) {
	r := NewRegistry()

	r.Join("conn-1", "room-a")
	r.Join("conn-1", "room-a")

	assert.Len(t, r.Members("room-a"), 1)
}

func TestRegistry_LeaveAll(t *testing.T) {
	r := NewRegistry()

	r.Join("conn-1", "room-a")
	r.Join("conn-1", "room-b")
	r.Join("conn-2", "room-a")

	r.LeaveAll("conn-1")

	assert.ElementsMatch(t, []string{"conn-2"}, r.Members("room-a"))
	assert.Empty(t, r.Members("room-b"))
	assert.Empty(t, r.Rooms("conn-1"))
}

func TestRegistry_LeaveAllUnknownConn(t *testing.T) {
	r := NewRegistry()

	// Must not panic on a connection that never joined
	r.LeaveAll("ghost")
	assert.Empty(t, r.Members("room-a"))
}

func TestRegistry_EmptyRoom(t *testing.T) {
	r := NewRegistry()

	assert.Empty(t, r.Members("nobody-here"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			connID := fmt.Sprintf("conn-%d", n)
			r.Join(connID, "room-a")
			r.Members("room-a")
			if n%2 == 0 {
				r.LeaveAll(connID)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Members("room-a"), 16)
}
