package store

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/nhle/avon/internal/model"
)

// LoadPreferences reads the persisted layout once. Absent or malformed
// values are replaced by the matching field of fallback without error.
func LoadPreferences(
	g Gateway,
	fallback model.LayoutPreferences,
	logger *slog.Logger,
) model.LayoutPreferences {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	prefs := model.LayoutPreferences{
		PaneSizes:    append([]float64(nil), fallback.PaneSizes...),
		NavCollapsed: fallback.NavCollapsed,
	}

	if raw, ok := g.Read(LayoutKey); ok {
		if sizes, ok := DecodePaneSizes(raw); ok {
			prefs.PaneSizes = sizes
		} else {
			logger.Debug("ignoring malformed layout preference", "value", raw)
		}
	}

	if raw, ok := g.Read(CollapsedKey); ok {
		if collapsed, ok := DecodeCollapsed(raw); ok {
			prefs.NavCollapsed = collapsed
		} else {
			logger.Debug("ignoring malformed collapsed preference", "value", raw)
		}
	}

	return prefs
}

// DecodePaneSizes parses a JSON size triple. ok is false unless raw is a
// JSON array of exactly three finite numbers. A null element is rejected
// rather than read as zero.
func DecodePaneSizes(raw string) ([]float64, bool) {
	var decoded []*float64
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, false
	}
	if len(decoded) != model.PaneCount {
		return nil, false
	}
	sizes := make([]float64, len(decoded))
	for i, v := range decoded {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil, false
		}
		sizes[i] = *v
	}
	return sizes, true
}

// EncodePaneSizes renders sizes as a compact JSON array.
func EncodePaneSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, v := range sizes {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// DecodeCollapsed parses a JSON boolean.
func DecodeCollapsed(raw string) (bool, bool) {
	var collapsed *bool
	if err := json.Unmarshal([]byte(raw), &collapsed); err != nil || collapsed == nil {
		return false, false
	}
	return *collapsed, true
}

// EncodeCollapsed renders the flag as JSON.
func EncodeCollapsed(collapsed bool) string {
	return strconv.FormatBool(collapsed)
}

// SavePaneSizes writes sizes verbatim under LayoutKey.
func SavePaneSizes(g Gateway, sizes []float64) {
	g.Write(LayoutKey, EncodePaneSizes(sizes))
}

// SaveCollapsed writes the collapse flag under CollapsedKey.
func SaveCollapsed(g Gateway, collapsed bool) {
	g.Write(CollapsedKey, EncodeCollapsed(collapsed))
}
