package storage

import "github.com/gcosta/fightlog/internal/models"

// Provider persists the whole state graph. Load is fail-safe: a missing or
// unreadable store yields the default state, never a hard failure the caller
// has to branch on. The last-check-in date is a separate scalar slot, kept
// apart from the main record — the rollover check reads it before the main
// state is consulted.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.State, error)
	Close() error

	// State
	Save(models.State) error
	Reset() error

	// Last check-in scalar
	LastCheckIn() (string, error)
	SetLastCheckIn(date string) error

	// Utils
	GetConfigPath() string
}
