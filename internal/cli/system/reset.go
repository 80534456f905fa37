package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gcosta/fightlog/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("⚠️  WARNING: This wipes the profile, history, and all secrets.")
		fmt.Println("A backup of the current storage will be created first.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if _, err := os.Stat(ctx.Provider.GetConfigPath()); err == nil {
		ctx.PerformAutomaticBackup()
	}

	if err := ctx.Store.Reset(); err != nil {
		return err
	}
	fmt.Println("✓ Everything reset to defaults.")
	return nil
}
