// Package fixtures provides the seed mailbox: a built-in sample set, or
// messages parsed from a directory of .eml files.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nhle/avon/internal/model"
)

//go:embed sample.json
var sampleJSON []byte

// Sample returns the built-in sample mailbox.
func Sample() ([]model.Message, error) {
	var msgs []model.Message
	if err := json.Unmarshal(sampleJSON, &msgs); err != nil {
		return nil, fmt.Errorf("decoding sample messages: %w", err)
	}
	return msgs, nil
}

// Load returns the messages in dir, or the built-in sample when dir is
// empty.
func Load(dir string, logger *slog.Logger) ([]model.Message, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dir == "" {
		msgs, err := Sample()
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded sample mailbox", "messages", len(msgs))
		return msgs, nil
	}

	msgs, err := LoadDir(dir, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded mailbox", "dir", dir, "messages", len(msgs))
	return msgs, nil
}
