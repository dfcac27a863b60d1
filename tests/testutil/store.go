package testutil

import (
	"testing"

	"github.com/nhle/avon/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Write is one recorded Gateway write.
type Write struct {
	Key   string
	Value string
}

// Gateway is an in-memory store.Gateway that records every write in order.
type Gateway struct {
	Values map[string]string
	Writes []Write
}

// NewGateway returns an empty recording gateway.
func NewGateway() *Gateway {
	return &Gateway{Values: make(map[string]string)}
}

// Read implements store.Gateway.
func (g *Gateway) Read(key string) (string, bool) {
	v, ok := g.Values[key]
	return v, ok
}

// Write implements store.Gateway.
func (g *Gateway) Write(key, value string) {
	g.Values[key] = value
	g.Writes = append(g.Writes, Write{Key: key, Value: value})
}

// WritesTo returns the values written to key, oldest first.
func (g *Gateway) WritesTo(key string) []string {
	var out []string
	for _, w := range g.Writes {
		if w.Key == key {
			out = append(out, w.Value)
		}
	}
	return out
}
