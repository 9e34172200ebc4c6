package cli

import (
	"fmt"
	"strings"
	"time"

	"clearday.dev/clearday/internal/content"
	"clearday.dev/clearday/internal/profile"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	now := time.Now()
	name := ctx.Profile.Name()
	if name == "" {
		name = "friend"
	}
	days := ctx.Profile.SobrietyDays()

	fmt.Println(titleStyle.Render(fmt.Sprintf("Hello, %s", name)))
	fmt.Println(subtleStyle.Render(content.Greeting(now.Hour())))
	fmt.Println()

	fmt.Printf("%s %s\n", highlightStyle.Render(fmt.Sprintf("%d", days)), pluralDays(days))
	if start, ok := ctx.Profile.SobrietyDate(); ok {
		fmt.Println(subtleStyle.Render("since " + start.Format("January 2, 2006")))
	}

	if badges := ctx.Profile.Achievements(); len(badges) > 0 {
		fmt.Printf("Achievements: %s\n", badgeStyle.Render(strings.Join(badges, " ")))
	}
	if next, ok := profile.NextMilestone(days); ok {
		fmt.Println(subtleStyle.Render(fmt.Sprintf("Next milestone: %s at day %d", next.Badge, next.Days)))
	}

	if ctx.Milestone != nil {
		fmt.Println()
		fmt.Println(highlightStyle.Render(fmt.Sprintf("%s %s", ctx.Milestone.Badge, ctx.Milestone.Message)))
	}

	if choices := ctx.Profile.PositiveChoices(); choices > 0 {
		fmt.Printf("Positive choices made: %d\n", choices)
	}

	if entries := ctx.Journal.Entries(); len(entries) > 0 {
		latest := entries[0]
		fmt.Println()
		fmt.Println(subtleStyle.Render(fmt.Sprintf("Last journal entry (%s %s):", latest.Mood.Emoji(), latest.Date.Format("Jan 2"))))
		fmt.Println("  " + truncate(latest.Content, 80))
	}

	if msgs := ctx.Assist.Messages(); len(msgs) > 0 {
		fmt.Println()
		fmt.Println(subtleStyle.Render("Latest message for you:"))
		fmt.Println("  " + msgs[len(msgs)-1].Text)
	}

	return nil
}

func pluralDays(n int) string {
	if n == 1 {
		return "day sober"
	}
	return "days sober"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
