// Package selection holds the session-wide "which message is open" cell
// shared by the message list and the message detail view.
package selection

// Listener is invoked with the new selection after every change. ok is
// false when the selection was cleared.
type Listener func(id string, ok bool)

// Store is a single-writer observable cell holding the selected message
// ID. It is owned by the Bubble Tea update loop and takes no locks.
type Store struct {
	id        string
	ok        bool
	listeners map[int]Listener
	nextID    int
}

// New returns an empty store with nothing selected.
func New() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Select marks id as the selected message. IDs are not validated; an
// unknown ID simply resolves to no message downstream.
func (s *Store) Select(id string) {
	if s.ok && s.id == id {
		return
	}
	s.id, s.ok = id, true
	s.notify()
}

// Clear removes the selection.
func (s *Store) Clear() {
	if !s.ok {
		return
	}
	s.id, s.ok = "", false
	s.notify()
}

// Current returns the selected ID, with ok false when nothing is selected.
func (s *Store) Current() (string, bool) {
	return s.id, s.ok
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.id, s.ok)
	}
}
