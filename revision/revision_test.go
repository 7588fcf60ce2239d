package revision

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestUndo_RestoresPrevious(t *testing.T) {
	s := NewStore()
	s.Push([]byte("S1"))
	s.Push([]byte("S2"))
	s.Push([]byte("S3"))

	got, err := s.Undo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte("S2")) {
		t.Errorf("expected restore to S2, got %q", got)
	}
	if s.Len() != 2 {
		t.Errorf("expected exactly 2 snapshots after undo, got %d", s.Len())
	}
}

func TestUndo_SingleSnapshotFails(t *testing.T) {
	s := NewStore()
	s.Push([]byte("S1"))

	if _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected history unchanged, got %d snapshots", s.Len())
	}
}

func TestUndo_EmptyFails(t *testing.T) {
	s := NewStore()

	if _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestPush_EvictsOldestAtCapacity(t *testing.T) {
	s := NewStoreWithCapacity(3)
	for i := 1; i <= 5; i++ {
		s.Push([]byte(fmt.Sprintf("S%d", i)))
	}

	if s.Len() != 3 {
		t.Fatalf("expected history capped at 3, got %d", s.Len())
	}
	if !bytes.Equal(s.Latest(), []byte("S5")) {
		t.Errorf("expected newest S5, got %q", s.Latest())
	}

	// Undo twice walks back to the oldest retained snapshot, S3.
	s.Undo()
	got, err := s.Undo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte("S3")) {
		t.Errorf("expected oldest retained snapshot S3, got %q", got)
	}
}

func TestPush_CopiesData(t *testing.T) {
	s := NewStore()
	data := []byte("original")
	s.Push(data)
	data[0] = 'X'

	if !bytes.Equal(s.Latest(), []byte("original")) {
		t.Error("expected store to hold its own copy of the snapshot")
	}
}

func TestLatest_Empty(t *testing.T) {
	if got := NewStore().Latest(); got != nil {
		t.Errorf("expected nil for empty store, got %q", got)
	}
}
