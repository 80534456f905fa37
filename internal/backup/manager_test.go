package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gcosta/fightlog/internal/constants"
)

func writeStorageFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fightlog.json")
	if err := os.WriteFile(path, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatalf("failed to write storage file: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	t.Run("copies the storage file", func(t *testing.T) {
		dir := t.TempDir()
		mgr := NewManager(writeStorageFile(t, dir))

		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() returned unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read backup: %v", err)
		}
		if string(data) != `{"version":1}` {
			t.Errorf("backup content = %q, want the storage content", data)
		}
		if filepath.Dir(path) != mgr.GetBackupDir() {
			t.Errorf("backup written to %s, want %s", filepath.Dir(path), mgr.GetBackupDir())
		}
	})

	t.Run("missing storage file fails", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "fightlog.json"))
		if _, err := mgr.CreateBackup(); err == nil {
			t.Error("CreateBackup() = nil error, want failure with nothing to back up")
		}
	})
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(writeStorageFile(t, dir))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("len(backups) = %d, want 0 before any backup", len(backups))
	}

	backupDir := mgr.GetBackupDir()
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		name := constants.BackupFilePrefix + base.Add(time.Duration(i)*time.Minute).Format(timestampFormat) + ".json"
		if err := os.WriteFile(filepath.Join(backupDir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}
	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to seed stray file: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("len(backups) = %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("ListBackups() not sorted newest first")
		}
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(writeStorageFile(t, dir))

	backupDir := mgr.GetBackupDir()
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < constants.MaxBackups+5; i++ {
		name := constants.BackupFilePrefix + base.Add(time.Duration(i)*time.Hour).Format(timestampFormat) + ".json"
		if err := os.WriteFile(filepath.Join(backupDir, name), []byte(fmt.Sprint(i)), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("len(backups) = %d, want %d after rotation", len(backups), constants.MaxBackups)
	}
	for _, b := range backups {
		if b.Timestamp.Before(base.Add(5 * time.Hour)) {
			t.Errorf("rotation kept an old backup from %v", b.Timestamp)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	storagePath := writeStorageFile(t, dir)
	mgr := NewManager(storagePath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	name := constants.BackupFilePrefix + time.Date(2025, 3, 9, 8, 0, 0, 0, time.Local).Format(timestampFormat) + ".json"
	backupPath := filepath.Join(mgr.GetBackupDir(), name)
	if err := os.WriteFile(backupPath, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatalf("failed to seed backup: %v", err)
	}

	if err := os.WriteFile(storagePath, []byte(`{"version":1,"changed":true}`), 0600); err != nil {
		t.Fatalf("failed to modify storage: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(storagePath)
	if err != nil {
		t.Fatalf("failed to read restored storage: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("restored content = %q, want the backup content", data)
	}
}
