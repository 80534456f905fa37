package cli

import (
	"fmt"
	"strings"

	"github.com/gcosta/fightlog/internal/backup"
	"github.com/gcosta/fightlog/internal/logger"
	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/storage"
	"github.com/gcosta/fightlog/internal/store"
)

type Context struct {
	Store    *store.Store
	Provider storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Provider.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatRate renders a completion rate as a percentage string.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

// ParseCategory resolves a user-supplied category name, accepting a few
// aliases for the awkwardly-cased canonical keys.
func ParseCategory(s string) (models.Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jiujitsu", "jiu-jitsu", "bjj", "gi":
		return models.CategoryJiuJitsu, nil
	case "nogi", "no-gi":
		return models.CategoryNoGi, nil
	case "mma":
		return models.CategoryMMA, nil
	case "muaythai", "muay-thai", "thai":
		return models.CategoryMuayThai, nil
	}
	return "", fmt.Errorf("unknown category %q (expected jiujitsu|nogi|mma|muaythai)", s)
}

// CategoryLabel renders a category for display.
func CategoryLabel(c models.Category) string {
	switch c {
	case models.CategoryJiuJitsu:
		return "Jiu-Jitsu"
	case models.CategoryNoGi:
		return "No-Gi"
	case models.CategoryMMA:
		return "MMA"
	case models.CategoryMuayThai:
		return "Muay Thai"
	}
	return string(c)
}
