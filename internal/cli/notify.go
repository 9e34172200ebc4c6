package cli

import (
	"fmt"

	"clearday.dev/clearday/internal/constants"
)

// NotifyCmd sends a test notification through the tray companion. Hidden;
// exists for troubleshooting the notification pipeline.
type NotifyCmd struct {
	Title string `arg:"" optional:"" default:"clearday"`
	Body  string `arg:"" optional:"" default:"Test notification"`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	if ctx.Notifier.Permission() != constants.PermissionGranted {
		state := ctx.Notifier.Request()
		if state != constants.PermissionGranted {
			fmt.Println("Notifications unavailable: is clearday-tray running?")
			return nil
		}
	}
	if err := ctx.Notifier.Notify(c.Title, c.Body); err != nil {
		return err
	}
	fmt.Println("Notification sent.")
	return nil
}
