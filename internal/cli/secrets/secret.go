package secrets

import (
	"fmt"

	"github.com/gcosta/fightlog/internal/cli"
	"github.com/gcosta/fightlog/internal/models"
)

type SecretAddCmd struct {
	Category  string `arg:"" help:"Discipline category (jiujitsu|nogi|mma|muaythai)."`
	Title     string `arg:"" help:"Short name for the note."`
	Technique string `short:"t" required:"" help:"The technique the note is about."`
	Situation string `short:"s" help:"When to use it."`
	Details   string `short:"d" help:"Execution details."`
	Reminder  string `short:"r" help:"One-line cue to remember mid-roll."`
	Favorite  bool   `short:"f" help:"Mark as a favorite."`
}

func (c *SecretAddCmd) Run(ctx *cli.Context) error {
	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	secret, err := ctx.Store.AddSecret(category, models.SecretInput{
		Title:     c.Title,
		Technique: c.Technique,
		Situation: c.Situation,
		Details:   c.Details,
		Reminder:  c.Reminder,
		Favorite:  c.Favorite,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Secret added to %s: %s (%s)\n", cli.CategoryLabel(category), secret.Title, secret.ID)
	return nil
}

type SecretListCmd struct {
	Category  string `arg:"" optional:"" help:"Show a single category instead of all four."`
	Favorites bool   `short:"f" help:"Only show favorites."`
}

func (c *SecretListCmd) Run(ctx *cli.Context) error {
	categories := models.Categories()
	if c.Category != "" {
		category, err := cli.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		categories = []models.Category{category}
	}

	empty := true
	for _, category := range categories {
		secrets, err := ctx.Store.SecretsFor(category)
		if err != nil {
			return err
		}

		var shown []models.Secret
		for _, s := range secrets {
			if c.Favorites && !s.Favorite {
				continue
			}
			shown = append(shown, s)
		}
		if len(shown) == 0 {
			continue
		}
		empty = false

		fmt.Printf("%s (%d)\n", cli.CategoryLabel(category), len(shown))
		for _, s := range shown {
			mark := " "
			if s.Favorite {
				mark = "★"
			}
			fmt.Printf("  %s %s — %s  [%s]\n", mark, s.Title, s.Technique, s.ID)
			if s.Situation != "" {
				fmt.Printf("      when: %s\n", s.Situation)
			}
			if s.Reminder != "" {
				fmt.Printf("      cue:  %s\n", s.Reminder)
			}
		}
	}

	if empty {
		fmt.Println("No secrets yet. Add one with: fightlog secret add")
	}
	return nil
}

type SecretEditCmd struct {
	Category  string `arg:"" help:"Discipline category (jiujitsu|nogi|mma|muaythai)."`
	ID        string `arg:"" help:"Secret id (see: fightlog secret list)."`
	Title     string `help:"New title."`
	Technique string `short:"t" help:"New technique."`
	Situation string `short:"s" help:"New situation."`
	Details   string `short:"d" help:"New details."`
	Reminder  string `short:"r" help:"New reminder cue."`
}

func (c *SecretEditCmd) Run(ctx *cli.Context) error {
	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	patch := models.SecretPatch{}
	if c.Title != "" {
		patch.Title = &c.Title
	}
	if c.Technique != "" {
		patch.Technique = &c.Technique
	}
	if c.Situation != "" {
		patch.Situation = &c.Situation
	}
	if c.Details != "" {
		patch.Details = &c.Details
	}
	if c.Reminder != "" {
		patch.Reminder = &c.Reminder
	}

	secret, err := ctx.Store.UpdateSecret(category, c.ID, patch)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Secret updated: %s\n", secret.Title)
	return nil
}

type SecretDeleteCmd struct {
	Category string `arg:"" help:"Discipline category (jiujitsu|nogi|mma|muaythai)."`
	ID       string `arg:"" help:"Secret id (see: fightlog secret list)."`
}

func (c *SecretDeleteCmd) Run(ctx *cli.Context) error {
	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteSecret(category, c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Secret deleted.")
	return nil
}

type SecretFavCmd struct {
	Category string `arg:"" help:"Discipline category (jiujitsu|nogi|mma|muaythai)."`
	ID       string `arg:"" help:"Secret id (see: fightlog secret list)."`
}

func (c *SecretFavCmd) Run(ctx *cli.Context) error {
	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	fav, err := ctx.Store.ToggleSecretFavorite(category, c.ID)
	if err != nil {
		return err
	}
	if fav {
		fmt.Println("★ Marked as favorite.")
	} else {
		fmt.Println("Removed from favorites.")
	}
	return nil
}
