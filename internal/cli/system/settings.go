package system

import (
	"fmt"

	"github.com/gcosta/fightlog/internal/cli"
)

type SettingsCmd struct {
	Timezone          string `help:"IANA timezone for day-boundary detection (or 'Local')."`
	ArchiveOnRollover string `help:"Automatically archive the outgoing day at rollover (true|false)."`
}

func (c *SettingsCmd) Validate() error {
	switch c.ArchiveOnRollover {
	case "", "true", "false":
		return nil
	}
	return fmt.Errorf("--archive-on-rollover must be true or false")
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.Timezone != "" {
		if err := ctx.Store.SetTimezone(c.Timezone); err != nil {
			return err
		}
		fmt.Printf("Timezone set to %s.\n", c.Timezone)
	}
	if c.ArchiveOnRollover != "" {
		enabled := c.ArchiveOnRollover == "true"
		ctx.Store.SetArchiveOnRollover(enabled)
		fmt.Printf("Archive on rollover: %v.\n", enabled)
	}

	settings := ctx.Store.Settings()
	fmt.Printf("\nTimezone:            %s\n", settings.Timezone)
	fmt.Printf("Archive on rollover: %v\n", settings.ArchiveOnRollover)
	fmt.Printf("Storage:             %s\n", ctx.Provider.GetConfigPath())
	return nil
}
