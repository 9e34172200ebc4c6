package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"clearday.dev/clearday/internal/constants"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	var (
		name            string
		startDate       string
		personalization = true
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&name),
			huh.NewInput().
				Title("Sobriety start date (YYYY-MM-DD, optional)").
				Value(&startDate),
			huh.NewConfirm().
				Title("Enable personalized AI features?").
				Value(&personalization),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if name != "" {
		ctx.Profile.SetName(name)
	}
	if startDate != "" {
		d, err := time.ParseInLocation(constants.DateFormat, startDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", startDate, err)
		}
		if err := ctx.Profile.SetSobrietyDate(d); err != nil {
			return err
		}
	}
	ctx.Assist.SetPersonalization(personalization)

	fmt.Println("Welcome to clearday. Run 'clearday status' any time to see your progress.")
	return nil
}
