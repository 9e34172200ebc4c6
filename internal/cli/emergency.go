package cli

import (
	"fmt"

	"clearday.dev/clearday/internal/content"
)

type EmergencyCmd struct{}

func (c *EmergencyCmd) Run(ctx *Context) error {
	fmt.Println(alertStyle.Render("24/7 Support Available"))
	for _, contact := range content.EmergencyContacts() {
		fmt.Printf("  %s: %s\n", contact.Name, highlightStyle.Render(contact.Number))
	}
	fmt.Println()
	fmt.Println(alertStyle.Render(content.EmergencyFooter))
	return nil
}
