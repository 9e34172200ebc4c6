package cli

import (
	"fmt"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/keyring"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Name              *string `help:"Set your display name."`
	SobrietyDate      *string `help:"Set your sobriety start date (YYYY-MM-DD)."`
	ClearSobrietyDate bool    `help:"Remove the explicit start date."`
	Personalization   *bool   `help:"Enable or disable AI personalization."`
	APIKey            *string `help:"Store the assist API key in the OS keyring."`
	ClearAPIKey       bool    `help:"Remove the assist API key from the OS keyring."`
	AddGoal           *string `help:"Add a custom goal."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Name:             %s\n", ctx.Profile.Name())
		if start, ok := ctx.Profile.SobrietyDate(); ok {
			fmt.Printf("  Sobriety Date:    %s\n", start.Format(constants.DateFormat))
		} else {
			fmt.Printf("  Sobriety Date:    (not set)\n")
		}
		fmt.Printf("  Personalization:  %v\n", ctx.Assist.Personalization())
		configured := "no"
		if _, err := keyring.GetAPIKey(); err == nil {
			configured = "yes"
		}
		fmt.Printf("  API Key Stored:   %s\n", configured)
		if goals := ctx.Profile.CustomGoals(); len(goals) > 0 {
			fmt.Println("  Custom Goals:")
			for _, g := range goals {
				fmt.Printf("    - %s\n", g)
			}
		}
		return nil
	}

	updated := false
	if c.Name != nil {
		ctx.Profile.SetName(*c.Name)
		updated = true
	}
	if c.SobrietyDate != nil {
		d, err := time.ParseInLocation(constants.DateFormat, *c.SobrietyDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", *c.SobrietyDate, err)
		}
		if err := ctx.Profile.SetSobrietyDate(d); err != nil {
			return err
		}
		updated = true
	}
	if c.ClearSobrietyDate {
		ctx.Profile.ClearSobrietyDate()
		updated = true
	}
	if c.Personalization != nil {
		ctx.Assist.SetPersonalization(*c.Personalization)
		updated = true
	}
	if c.APIKey != nil {
		if err := keyring.SetAPIKey(*c.APIKey); err != nil {
			return err
		}
		updated = true
	}
	if c.ClearAPIKey {
		if err := keyring.DeleteAPIKey(); err != nil && err != keyring.ErrNotFound {
			return err
		}
		updated = true
	}
	if c.AddGoal != nil {
		ctx.Profile.AddCustomGoal(*c.AddGoal)
		updated = true
	}

	if !updated {
		fmt.Println("Nothing to update. See 'clearday settings --help'.")
		return nil
	}
	fmt.Println("Settings updated.")
	return nil
}
