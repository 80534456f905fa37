// Package backup creates and rotates point-in-time copies of the storage
// file next to it on disk.
package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gcosta/fightlog/internal/constants"
	"github.com/gcosta/fightlog/internal/logger"
)

const timestampFormat = "20060102-150405"

// Manager backs up the storage file at configPath into a backups directory
// alongside it, keeping the most recent constants.MaxBackups copies.
type Manager struct {
	configPath string
	backupDir  string
}

func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		backupDir:  filepath.Join(filepath.Dir(configPath), constants.BackupDirName),
	}
}

func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Info describes one backup on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// CreateBackup snapshots the storage file and rotates old copies. SQLite
// files are copied through VACUUM INTO so a live database is snapshotted
// consistently; anything else is a plain file copy.
func (m *Manager) CreateBackup() (string, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return "", fmt.Errorf("nothing to back up: %s does not exist", m.configPath)
	}

	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := constants.BackupFilePrefix + time.Now().Format(timestampFormat) + filepath.Ext(m.configPath)
	dest := filepath.Join(m.backupDir, name)

	var err error
	if strings.EqualFold(filepath.Ext(m.configPath), ".db") {
		err = m.vacuumInto(dest)
	} else {
		err = copyFile(m.configPath, dest)
	}
	if err != nil {
		return "", err
	}

	if err := m.rotate(); err != nil {
		logger.Warn("Backup rotation failed", "error", err)
	}

	return dest, nil
}

func (m *Manager) vacuumInto(dest string) error {
	db, err := sql.Open("sqlite", m.configPath)
	if err != nil {
		return fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		// Older SQLite builds lack VACUUM INTO; fall back to a raw copy.
		logger.Warn("VACUUM INTO failed, falling back to file copy", "error", err)
		return copyFile(m.configPath, dest)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy backup data: %w", err)
	}
	return out.Sync()
}

// ListBackups returns the backups newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) {
			continue
		}
		ts, ok := parseTimestamp(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func parseTimestamp(name string) (time.Time, bool) {
	trimmed := strings.TrimPrefix(name, constants.BackupFilePrefix)
	if ext := filepath.Ext(trimmed); ext != "" {
		trimmed = strings.TrimSuffix(trimmed, ext)
	}
	ts, err := time.ParseInLocation(timestampFormat, trimmed, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// rotate removes the oldest backups beyond the retention count.
func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), constants.MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the storage file with the given backup, backing up
// the current file first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not accessible: %w", err)
	}

	if _, err := os.Stat(m.configPath); err == nil {
		if _, err := m.CreateBackup(); err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.configPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}
