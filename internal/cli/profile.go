package cli

import (
	"fmt"
	"strings"

	"github.com/gcosta/fightlog/internal/models"
)

type ProfileCmd struct {
	Name     string `help:"Set the athlete name."`
	Age      int    `help:"Set the athlete age." default:"-1"`
	Category string `help:"Set the category label (e.g. 'MMA Fighter')."`
	Level    string `help:"Set the level label (e.g. 'PROFESSIONAL')."`
	Wins     int    `help:"Set the win count." default:"-1"`
	Losses   int    `help:"Set the loss count." default:"-1"`
	Draws    int    `help:"Set the draw count." default:"-1"`
	AddPhoto string `help:"Append a photo reference to the profile."`
}

func (c *ProfileCmd) Validate() error {
	if c.Age == 0 || c.Age < -1 {
		return fmt.Errorf("age must be a positive number")
	}
	for name, v := range map[string]int{"wins": c.Wins, "losses": c.Losses, "draws": c.Draws} {
		if v < -1 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	return nil
}

func (c *ProfileCmd) Run(ctx *Context) error {
	patch := models.AthletePatch{}
	edited := false

	if c.Name != "" {
		patch.Name = &c.Name
		edited = true
	}
	if c.Age > 0 {
		patch.Age = &c.Age
		edited = true
	}
	if c.Category != "" {
		patch.Category = &c.Category
		edited = true
	}
	if c.Level != "" {
		patch.Level = &c.Level
		edited = true
	}
	if c.Wins >= 0 {
		patch.Wins = &c.Wins
		edited = true
	}
	if c.Losses >= 0 {
		patch.Losses = &c.Losses
		edited = true
	}
	if c.Draws >= 0 {
		patch.Draws = &c.Draws
		edited = true
	}
	if c.AddPhoto != "" {
		photos := append(ctx.Store.Athlete().Photos, c.AddPhoto)
		patch.Photos = &photos
		edited = true
	}

	if edited {
		ctx.Store.UpdateAthlete(patch)
		fmt.Println("Profile updated.")
	}

	athlete := ctx.Store.Athlete()
	fmt.Printf("%s, %d — %s (%s)\n", athlete.Name, athlete.Age, athlete.Category, athlete.Level)
	fmt.Printf("Record: %dW-%dL-%dD\n", athlete.Wins, athlete.Losses, athlete.Draws)
	fmt.Printf("Streak: %d days (best %d) | Total training days: %d\n",
		athlete.CurrentStreak, athlete.BestStreak, athlete.TotalTrainingDays)
	if len(athlete.Photos) > 0 {
		fmt.Printf("Photos: %s\n", strings.Join(athlete.Photos, ", "))
	}
	return nil
}
