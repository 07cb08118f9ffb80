// Package history keeps recent analysis results in memory. Nothing is
// written to disk; entries fall off the end once the store is full.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dna_analyzer_go/analysis"
)

// Sources used by the built in collaborators.
const (
	SourceManual = "Manual Input"
	watchPrefix  = "watch:"
)

// WatchSource labels an entry that came from a watched directory.
func WatchSource(name string) string { return watchPrefix + name }

// Entry is one stored analysis.
type Entry struct {
	ID        string           `json:"id" msgpack:"id"`
	Source    string           `json:"source" msgpack:"source"`
	CreatedAt time.Time        `json:"created_at" msgpack:"created_at"`
	Result    *analysis.Result `json:"result" msgpack:"result"`
}

// Store is a bounded, concurrency safe ring of entries.
type Store struct {
	mu      sync.RWMutex
	entries []Entry // oldest first
	max     int
	subs    map[int]chan Entry
	nextSub int
	now     func() time.Time
}

// NewStore returns a store holding at most max entries.
func NewStore(max int) *Store {
	if max <= 0 {
		max = 1
	}
	return &Store{
		entries: make([]Entry, 0, max),
		max:     max,
		subs:    make(map[int]chan Entry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Add records a result and notifies subscribers.
func (s *Store) Add(source string, result *analysis.Result) Entry {
	e := Entry{
		ID:        uuid.New().String(),
		Source:    source,
		CreatedAt: s.now(),
		Result:    result,
	}

	s.mu.Lock()
	if len(s.entries) == s.max {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, e)
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default: // slow subscriber, drop
		}
	}
	s.mu.Unlock()

	return e
}

// Recent returns up to n entries, newest first. n <= 0 returns all.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Get looks an entry up by ID.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subscribe returns a channel receiving every entry added from now on and
// a cancel func that closes it. buffer is the channel capacity.
func (s *Store) Subscribe(buffer int) (<-chan Entry, func()) {
	ch := make(chan Entry, buffer)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}
