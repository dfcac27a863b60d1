package store

import "context"

// Keys under which the mailbox layout is persisted. Both values are JSON.
const (
	// LayoutKey holds the nav/list/detail size triple, e.g. [20,32,48].
	LayoutKey = "panels:layout:mail"

	// CollapsedKey holds the nav collapse flag, true or false.
	CollapsedKey = "panels:collapsed"
)

// Gateway is the synchronous key-value medium the layout controller
// writes through. Reads report ok=false for absent keys; writes cannot
// fail from the caller's point of view.
type Gateway interface {
	Read(key string) (string, bool)
	Write(key, value string)
}

// Preference is one persisted key-value pair.
type Preference struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

// Store defines the persistence interface for client-side preferences.
type Store interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
	DeletePreference(ctx context.Context, key string) error
	GetPreferences(ctx context.Context) ([]Preference, error)
}
