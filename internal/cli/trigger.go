package cli

import (
	"fmt"

	"clearday.dev/clearday/internal/constants"
)

type TriggerCmd struct {
	Add  TriggerAddCmd  `cmd:"" help:"Record a new trigger."`
	List TriggerListCmd `cmd:"" help:"Show identified triggers."`
}

type TriggerAddCmd struct {
	Name      string `arg:"" help:"What sets off the urge."`
	Intensity int    `help:"How strong it is, 1-9." default:"5"`
}

func (c *TriggerAddCmd) Run(ctx *Context) error {
	if c.Intensity < constants.MinTriggerIntensity || c.Intensity > constants.MaxTriggerIntensity {
		return fmt.Errorf("intensity must be between %d and %d", constants.MinTriggerIntensity, constants.MaxTriggerIntensity)
	}
	trigger, err := ctx.Triggers.Add(c.Name, c.Intensity)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded trigger %q (%s intensity)\n", trigger.Name, trigger.IntensityBand())
	return nil
}

type TriggerListCmd struct{}

func (c *TriggerListCmd) Run(ctx *Context) error {
	all := ctx.Triggers.All()
	if len(all) == 0 {
		fmt.Println("No triggers identified yet. Knowing them is half the battle: 'clearday trigger add'.")
		return nil
	}
	for _, t := range all {
		fmt.Printf("%-24s %s (%d/9) %s\n", t.Name, t.IntensityBand(), t.Intensity, subtleStyle.Render(t.DateAdded.Format("Jan 2, 2006")))
	}
	return nil
}
