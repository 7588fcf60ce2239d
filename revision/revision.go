// Package revision keeps a bounded history of rendered document states and
// supports single-step undo.
//
// The store is an append-only-with-cap list of opaque byte captures, ordered
// oldest to newest. One snapshot is taken after every successful mutating
// operation; once the cap is exceeded the oldest snapshot is evicted first.
// Undo discards the newest snapshot and exposes the one now at the end of
// history. Snapshotting whole documents is O(document size) per capture;
// bounded history keeps the total predictable.
package revision

import "errors"

// ErrNothingToUndo is returned when undo is requested with fewer than two
// snapshots in history.
var ErrNothingToUndo = errors.New("undo requires at least two snapshots")

// DefaultCapacity is the default history bound.
const DefaultCapacity = 50

// Store is a capacity-bounded FIFO of document snapshots. The zero value is
// not usable; construct with NewStore.
type Store struct {
	snapshots [][]byte
	capacity  int
}

// NewStore creates a store bounded at DefaultCapacity.
func NewStore() *Store {
	return NewStoreWithCapacity(DefaultCapacity)
}

// NewStoreWithCapacity creates a store bounded at the given cap. Capacities
// below one fall back to DefaultCapacity.
func NewStoreWithCapacity(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Len returns the number of snapshots currently held.
func (s *Store) Len() int {
	return len(s.snapshots)
}

// Push appends a snapshot, evicting the oldest if the store is full. The
// store takes its own copy of data.
func (s *Store) Push(data []byte) {
	snapshot := make([]byte, len(data))
	copy(snapshot, data)

	if len(s.snapshots) >= s.capacity {
		s.snapshots = s.snapshots[1:]
	}
	s.snapshots = append(s.snapshots, snapshot)
}

// Latest returns the newest snapshot, or nil if the store is empty.
func (s *Store) Latest() []byte {
	if len(s.snapshots) == 0 {
		return nil
	}
	return s.snapshots[len(s.snapshots)-1]
}

// Undo discards the newest snapshot and returns the one now at the end of
// history. With fewer than two snapshots it returns ErrNothingToUndo and
// leaves history unchanged.
func (s *Store) Undo() ([]byte, error) {
	if len(s.snapshots) < 2 {
		return nil, ErrNothingToUndo
	}
	s.snapshots = s.snapshots[:len(s.snapshots)-1]
	return s.snapshots[len(s.snapshots)-1], nil
}
