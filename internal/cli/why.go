package cli

import (
	"fmt"

	"clearday.dev/clearday/internal/content"
)

type WhyCmd struct {
	ID string `arg:"" optional:"" help:"Reason card to open (health, clarity, financial)."`
}

func (c *WhyCmd) Run(ctx *Context) error {
	days := ctx.Profile.SobrietyDays()

	if c.ID == "" {
		for _, r := range content.Reasons() {
			fmt.Printf("%-10s %s %s\n", r.ID, r.Title, subtleStyle.Render(fmt.Sprintf("%.0f%%", r.Progress(days))))
		}
		fmt.Println(subtleStyle.Render("Open one with 'clearday why <id>'."))
		return nil
	}

	reason, ok := content.ReasonByID(c.ID)
	if !ok {
		return fmt.Errorf("unknown reason %q", c.ID)
	}

	// Opening a card counts as a positive choice.
	ctx.Profile.RecordPositiveChoice()

	fmt.Println(titleStyle.Render(reason.Title))
	fmt.Println(reason.Content)
	fmt.Println()
	fmt.Println(highlightStyle.Render("Try this instead: ") + reason.Alternative)
	fmt.Println(subtleStyle.Render(fmt.Sprintf("Progress: %.0f%%", reason.Progress(days))))
	return nil
}
