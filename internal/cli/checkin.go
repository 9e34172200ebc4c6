package cli

import "fmt"

type CheckinCmd struct{}

func (c *CheckinCmd) Run(ctx *Context) error {
	streak := ctx.Profile.Streak()
	if ctx.Milestone != nil {
		fmt.Println(highlightStyle.Render(fmt.Sprintf("%s %s", ctx.Milestone.Badge, ctx.Milestone.Message)))
	}
	fmt.Printf("Checked in. Current streak: %d %s.\n", streak, pluralDays(streak))
	return nil
}
