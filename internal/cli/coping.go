package cli

import (
	"fmt"

	"clearday.dev/clearday/internal/content"
)

type CopingCmd struct {
	ID string `arg:"" optional:"" help:"Strategy to show in detail."`
}

func (c *CopingCmd) Run(ctx *Context) error {
	if c.ID == "" {
		for _, s := range content.CopingStrategies() {
			fmt.Printf("%-22s %s\n", s.ID, s.Title)
		}
		fmt.Println(subtleStyle.Render("Show the steps with 'clearday coping <id>'."))
		return nil
	}

	strategy, ok := content.CopingStrategyByID(c.ID)
	if !ok {
		return fmt.Errorf("unknown strategy %q", c.ID)
	}

	fmt.Println(titleStyle.Render(strategy.Title))
	fmt.Println(strategy.Description)
	fmt.Println()
	for i, step := range strategy.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	return nil
}
