package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"clearday.dev/clearday/internal/assist"
)

type AssistCmd struct {
	Message AssistMessageCmd `cmd:"" help:"Generate a personalized motivational message."`
	Prompt  JournalPromptCmd `cmd:"" help:"Generate a reflection prompt."`
	Urge    AssistUrgeCmd    `cmd:"" help:"Talk through an urge with immediate support."`
}

type AssistMessageCmd struct{}

func (c *AssistMessageCmd) Run(ctx *Context) error {
	text, err := ctx.Assist.GenerateMessage(context.Background(), ctx.BuildUserContext())
	if err != nil {
		var cooldown *assist.CooldownError
		switch {
		case errors.As(err, &cooldown):
			fmt.Printf("Please wait %d seconds before generating another message.\n", cooldown.Seconds)
			return nil
		case errors.Is(err, assist.ErrDisabled):
			fmt.Println("AI features are off. Configure an API key with 'clearday settings --api-key'.")
			return nil
		default:
			return err
		}
	}
	fmt.Println(highlightStyle.Render(text))
	return nil
}

type AssistUrgeCmd struct {
	Message string `arg:"" optional:"" help:"One-shot message. Omit for a conversation."`
}

func (c *AssistUrgeCmd) Run(ctx *Context) error {
	uc := ctx.BuildUserContext()

	if c.Message != "" {
		reply, err := c.turn(ctx, c.Message, nil, uc)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	fmt.Println(titleStyle.Render("Urge support"))
	fmt.Println(subtleStyle.Render("I'm here with you. Submit an empty message to finish."))

	var history []assist.ChatTurn
	for {
		var msg string
		input := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("You").Value(&msg),
		))
		if err := input.Run(); err != nil {
			return err
		}
		if msg == "" {
			fmt.Println(subtleStyle.Render("You've got this. Reach out any time."))
			return nil
		}

		reply, err := c.turn(ctx, msg, history, uc)
		if err != nil {
			if errors.Is(err, assist.ErrDisabled) {
				fmt.Println("AI features are off. Configure an API key with 'clearday settings --api-key'.")
				return nil
			}
			return err
		}

		fmt.Println(highlightStyle.Render(reply))
		history = append(history,
			assist.ChatTurn{Role: assist.RoleUser, Content: msg},
			assist.ChatTurn{Role: assist.RoleAssistant, Content: reply},
		)
	}
}

// turn sends one conversation message. Each turn counts as an interaction,
// so a long urge conversation keeps rearming the inactivity reminder.
func (c *AssistUrgeCmd) turn(ctx *Context, msg string, history []assist.ChatTurn, uc assist.UserContext) (string, error) {
	ctx.Tracker.Touch(time.Now())
	return ctx.Assist.UrgeSupport(context.Background(), msg, history, uc)
}
