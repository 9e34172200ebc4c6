package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"clearday.dev/clearday/internal/assist"
	"clearday.dev/clearday/internal/models"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a new journal entry."`
	List   JournalListCmd   `cmd:"" help:"Show past entries."`
	Prompt JournalPromptCmd `cmd:"" help:"Generate a reflection prompt."`
}

type JournalAddCmd struct {
	Content string `arg:"" optional:"" help:"Entry text. Prompts interactively when omitted."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	content := c.Content
	mood := ctx.Journal.Mood()

	if content == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[models.Mood]().
					Title("How are you feeling?").
					Options(moodOptions()...).
					Value(&mood),
				huh.NewText().
					Title("What's on your mind?").
					Value(&content),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	ctx.Journal.SetMood(mood)
	entry, err := ctx.Journal.Add(content)
	if err != nil {
		return err
	}

	fmt.Printf("Saved entry %s %s\n", entry.Mood.Emoji(), subtleStyle.Render(entry.Date.Format("Jan 2 15:04")))
	return nil
}

func moodOptions() []huh.Option[models.Mood] {
	var opts []huh.Option[models.Mood]
	for _, m := range models.Moods() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", m.Emoji(), m), m))
	}
	return opts
}

type JournalListCmd struct {
	Limit int `help:"Maximum entries to show." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries := ctx.Journal.Entries()
	if len(entries) == 0 {
		fmt.Println("No journal entries yet. Try 'clearday journal add'.")
		return nil
	}
	for i, e := range entries {
		if i >= c.Limit {
			break
		}
		fmt.Printf("%s %s %s\n", e.Mood.Emoji(), subtleStyle.Render(e.Date.Format("Jan 2, 2006 15:04")), e.Content)
	}
	return nil
}

type JournalPromptCmd struct{}

func (c *JournalPromptCmd) Run(ctx *Context) error {
	prompt, err := ctx.Assist.GenerateJournalPrompt(context.Background(), ctx.BuildUserContext())
	if err != nil {
		if errors.Is(err, assist.ErrDisabled) {
			fmt.Println("AI features are off. Configure an API key with 'clearday settings --api-key'.")
			return nil
		}
		return err
	}
	fmt.Println(titleStyle.Render("Reflection prompt"))
	fmt.Println(prompt)
	return nil
}
