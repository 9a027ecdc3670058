package api

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultStoreCapacity is the number of selections a store keeps when no
// capacity is given.
const DefaultStoreCapacity = 4096

// SelectionStore keeps the most recent selections the server has answered
// so clients can fetch them again by ID. Once full, each Put evicts the
// oldest entry.
type SelectionStore struct {
	mu         sync.Mutex
	capacity   int
	selections map[string]Selection
	order      []string
}

// NewSelectionStore returns a store holding at most capacity selections.
// A non-positive capacity selects DefaultStoreCapacity.
func NewSelectionStore(capacity int) *SelectionStore {
	if capacity <= 0 {
		capacity = DefaultStoreCapacity
	}
	return &SelectionStore{
		capacity:   capacity,
		selections: make(map[string]Selection),
	}
}

// Put assigns sel a fresh ID, stores it and returns the stored copy.
func (s *SelectionStore) Put(sel Selection) Selection {
	sel.ID = newSelectionID()
	sel.Object = "gemm.selection"

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.selections, oldest)
	}
	s.selections[sel.ID] = sel
	s.order = append(s.order, sel.ID)

	return sel
}

func (s *SelectionStore) Get(id string) (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[id]
	return sel, ok
}

func (s *SelectionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selections)
}

func (s *SelectionStore) Cap() int {
	return s.capacity
}

func newSelectionID() string {
	return "sel_" + uuid.NewString()
}
