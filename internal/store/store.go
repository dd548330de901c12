package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/povarna/dlist/internal/dlist"
	"github.com/rs/zerolog"
)

var ErrListNotFound = errors.New("list not found")

// Sequence is the integer list surface the executor drives.
type Sequence interface {
	AddFront(value int)
	AddBack(value int)
	RemoveFront() (int, error)
	DeleteByValue(value int) error
	DeleteAt(index int) error
	SortedInsert(value int)
	Reverse()
	RemoveDuplicates()
	Clone() *dlist.List[int]
	Contains(value int) bool
	Head() (int, bool)
	Tail() (int, bool)
	Len() int
	String() string
}

type Store interface {
	Get(name string) (Sequence, bool)
	Create(name string) Sequence
	Put(name string, list *dlist.List[int])
	Delete(name string) bool
	Names() []string
}

// MemoryStore keeps named lists in process memory. The lock guards the map
// only; callers serialise access to the lists themselves.
type MemoryStore struct {
	mu     sync.RWMutex
	lists  map[string]*dlist.List[int]
	logger *zerolog.Logger
}

func NewMemoryStore(logger *zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		lists:  make(map[string]*dlist.List[int]),
		logger: logger,
	}
}

func (s *MemoryStore) Get(name string) (Sequence, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[name]
	if !ok {
		return nil, false
	}
	return list, true
}

// Create returns the list stored under name, creating an empty one if needed.
func (s *MemoryStore) Create(name string) Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.lists[name]; ok {
		return list
	}

	list := dlist.New[int]()
	s.lists[name] = list
	s.logger.Debug().Str("list", name).Msg("list created")
	return list
}

func (s *MemoryStore) Put(name string, list *dlist.List[int]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[name] = list
}

func (s *MemoryStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[name]; !ok {
		return false
	}
	delete(s.lists, name)
	s.logger.Debug().Str("list", name).Msg("list dropped")
	return true
}

func (s *MemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.lists))
	for name := range s.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
