package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gcosta/fightlog/internal/logger"
	"github.com/gcosta/fightlog/internal/models"
)

// lastCheckInFileName is the sidecar slot for the last-check-in date. It is
// deliberately a separate file from the main document, mirroring the
// separate storage key the rollover check depends on.
const lastCheckInFileName = "last_checkin"

// JSONStore persists the state graph as a single JSON document.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultState(""))
}

// Load reads the document and falls back to defaults when the file is
// missing or does not parse. Corrupt data is treated the same as absent
// data; it is logged, never surfaced.
func (s *JSONStore) Load() (models.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read storage, using defaults", "path", s.path, "error", err)
		}
		return models.DefaultState(""), nil
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("Stored data is unreadable, using defaults", "path", s.path, "error", err)
		return models.DefaultState(""), nil
	}

	state.Normalize()
	return state, nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Save(state models.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// Reset removes the document and the last-check-in sidecar.
func (s *JSONStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove storage: %w", err)
	}
	if err := os.Remove(s.lastCheckInPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove last check-in slot: %w", err)
	}
	return nil
}

func (s *JSONStore) lastCheckInPath() string {
	return filepath.Join(filepath.Dir(s.path), lastCheckInFileName)
}

// LastCheckIn returns the stored date string, or "" when never checked in.
func (s *JSONStore) LastCheckIn() (string, error) {
	data, err := os.ReadFile(s.lastCheckInPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read last check-in slot: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *JSONStore) SetLastCheckIn(date string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.lastCheckInPath(), []byte(date+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write last check-in slot: %w", err)
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
