package cli

import (
	"fmt"

	"clearday.dev/clearday/internal/content"
)

type CommunityCmd struct {
	Local bool `help:"Show local meeting finders instead of online communities."`
}

func (c *CommunityCmd) Run(ctx *Context) error {
	resources := content.CommunityResources()
	heading := "Online communities"
	if c.Local {
		resources = content.LocalSupportOptions()
		heading = "Local support"
	}

	fmt.Println(titleStyle.Render(heading))
	for _, r := range resources {
		fmt.Printf("%s\n  %s\n  %s\n", highlightStyle.Render(r.Name), r.Description, subtleStyle.Render(r.URL))
	}
	return nil
}
