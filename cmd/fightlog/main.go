package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gcosta/fightlog/internal/cli"
	"github.com/gcosta/fightlog/internal/cli/backups"
	"github.com/gcosta/fightlog/internal/cli/secrets"
	"github.com/gcosta/fightlog/internal/cli/system"
	"github.com/gcosta/fightlog/internal/constants"
	errs "github.com/gcosta/fightlog/internal/errors"
	"github.com/gcosta/fightlog/internal/logger"
	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/storage"
	"github.com/gcosta/fightlog/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json suffix selects the JSON backend; anything else uses SQLite." type:"string" default:"~/.config/fightlog/fightlog.db"`
	Routine string `help:"Path to a custom weekly schedule JSON file (weekday names to activity lists)." type:"string"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd     `cmd:"" help:"Initialize fightlog storage."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Checkin  cli.CheckinCmd     `cmd:"" help:"Run the morning check-in wizard."`
	Today    cli.TodayCmd       `cmd:"" help:"Show today's schedule and completion."`
	Done     cli.DoneCmd        `cmd:"" help:"Toggle an activity done/undone."`
	Wrap     cli.WrapCmd        `cmd:"" help:"Archive today into history and apply the streak rule."`
	Insights cli.InsightsCmd    `cmd:"" help:"Show the rule-based advice panel."`
	Stats    cli.StatsCmd       `cmd:"" help:"Show streaks and recent history."`
	Profile  cli.ProfileCmd     `cmd:"" help:"Show or edit the athlete profile."`
	Schedule cli.ScheduleCmd    `cmd:"" help:"Show the weekly training schedule."`
	Settings system.SettingsCmd `cmd:"" help:"Show or change application settings."`
	Reset    system.ResetCmd    `cmd:"" help:"Wipe everything back to defaults."`
	Secret   struct {
		Add    secrets.SecretAddCmd    `cmd:"" help:"Add a technique note."`
		List   secrets.SecretListCmd   `cmd:"" help:"List technique notes." default:"1"`
		Edit   secrets.SecretEditCmd   `cmd:"" help:"Edit a technique note."`
		Delete secrets.SecretDeleteCmd `cmd:"" help:"Delete a technique note."`
		Fav    secrets.SecretFavCmd    `cmd:"" help:"Toggle a note's favorite flag."`
	} `cmd:"" help:"Manage the secrets notebook."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Combat athlete daily tracker: check-ins, streaks, and fight intelligence"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not set up logging: %v\n", err)
	}

	// A .json suffix selects the single-document JSON backend; everything
	// else goes to SQLite.
	var provider storage.Provider
	if strings.EqualFold(filepath.Ext(configPath), ".json") {
		provider = storage.NewJSONStore(configPath)
	} else {
		provider = storage.NewSQLiteStore(configPath)
	}

	var opts []store.Option
	if CLI.Routine != "" {
		schedule, err := models.LoadWeeklySchedule(expandHome(CLI.Routine))
		if err != nil {
			errs.Fatal(err)
		}
		opts = append(opts, store.WithSchedule(schedule))
	}

	s, err := store.New(provider, opts...)
	if err != nil {
		errs.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:    s,
		Provider: provider,
	}

	// Day rollover runs once per activation, before the command. Lifecycle
	// commands manage storage themselves and skip it.
	if sel := ctx.Selected(); sel != nil {
		switch rootCommand(sel) {
		case "init", "reset", "backup":
		default:
			s.CheckIfNewDay()
		}
	}

	err = ctx.Run(appCtx)
	provider.Close()
	if err != nil {
		errs.Fatal(err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func rootCommand(node *kong.Node) string {
	for node.Parent != nil && node.Parent.Parent != nil {
		node = node.Parent
	}
	return node.Name
}
