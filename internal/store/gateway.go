package store

import (
	"context"
	"log/slog"
)

// PreferenceGateway adapts a Store to the infallible Gateway contract.
// Storage errors are logged and otherwise ignored: a lost layout write
// only means the next session starts from an older layout.
type PreferenceGateway struct {
	store  Store
	logger *slog.Logger
}

// NewGateway wraps s. A nil logger discards log output.
func NewGateway(s Store, logger *slog.Logger) *PreferenceGateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PreferenceGateway{store: s, logger: logger}
}

// Read implements Gateway.
func (g *PreferenceGateway) Read(key string) (string, bool) {
	value, ok, err := g.store.GetPreference(context.Background(), key)
	if err != nil {
		g.logger.Warn("reading preference", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

// Write implements Gateway.
func (g *PreferenceGateway) Write(key, value string) {
	if err := g.store.SetPreference(context.Background(), key, value); err != nil {
		g.logger.Warn("writing preference", "key", key, "error", err)
		return
	}
	g.logger.Debug("preference written", "key", key, "value", value)
}

// MemoryGateway keeps preferences in a map for the lifetime of the
// process. It backs sessions started without a preferences database.
type MemoryGateway map[string]string

// Read implements Gateway.
func (g MemoryGateway) Read(key string) (string, bool) {
	v, ok := g[key]
	return v, ok
}

// Write implements Gateway.
func (g MemoryGateway) Write(key, value string) {
	g[key] = value
}
