package assist

import (
	"fmt"
	"strings"

	"clearday.dev/clearday/internal/models"
)

// UserContext carries the profile state woven into generated prompts.
type UserContext struct {
	Name         string
	SobrietyDays int
	TimeOfDay    string
	Mood         models.Mood
	DominantMood models.Mood
	Journal      []models.JournalEntry
	Triggers     []models.Trigger
}

const messageSystemPrompt = `You are a compassionate AI assistant for a sobriety support app. Your role is to provide
encouraging, motivational messages that are personalized to the user's recovery journey.
Keep messages concise (1-2 sentences), warm, and specific to their situation.
Don't mention alcohol or substances directly. Focus on strength, growth, and resilience.`

const journalSystemPrompt = `You are an insightful AI assistant for a sobriety support app. Your role is to provide thought-provoking journal prompts
that help users reflect on their recovery journey in a meaningful way. Create prompts that encourage users to explore their emotions,
identify patterns, celebrate progress, and develop self-awareness.`

const urgeSystemPrompt = `You are a compassionate AI assistant for a sobriety support app, specifically helping users through moments of urges or cravings.
Provide supportive, non-judgmental responses that help the user manage their current urge. Your messages should be:

1. Empathetic and compassionate
2. Helpful with immediate, practical coping techniques
3. Brief and focused (1-3 sentences maximum)
4. Encouraging of their strength and commitment
5. Focused on the present moment

Your goal is to help them work through the urge in real-time with evidence-based approaches like urge surfing,
distraction techniques, or reframing thoughts. Never suggest using substances in moderation.
Always assume they want to maintain their recovery.`

func buildMessagePrompt(uc UserContext) string {
	name := uc.Name
	if name == "" {
		name = "friend"
	}

	entries := "No recent entries"
	if len(uc.Journal) > 0 {
		var lines []string
		for _, e := range uc.Journal {
			content := e.Content
			if r := []rune(content); len(r) > 100 {
				content = string(r[:100])
			}
			lines = append(lines, fmt.Sprintf("- %s... (Mood: %s)", content, e.Mood))
		}
		entries = strings.Join(lines, "\n")
	}

	triggers := "None identified yet"
	if len(uc.Triggers) > 0 {
		var names []string
		for _, t := range uc.Triggers {
			names = append(names, t.Name)
		}
		triggers = strings.Join(names, ", ")
	}

	return fmt.Sprintf(`Please generate a personalized motivational message based on the following user information:

User Name: %s
Days Sober: %d
Time of Day: %s
Current Mood: %s

Recent Journal Entries: %s

Identified Triggers: %s

Provide a single, encouraging message that feels personal and acknowledges their specific journey. Max 2 sentences.`,
		name, uc.SobrietyDays, uc.TimeOfDay, uc.Mood, entries, triggers)
}

func buildJournalPrompt(uc UserContext, usedPrompts []string) string {
	entries := "No recent entries"
	if len(uc.Journal) > 0 {
		var lines []string
		for _, e := range uc.Journal {
			lines = append(lines, e.Content)
		}
		entries = strings.Join(lines, " | ")
	}

	mood := uc.DominantMood
	if mood == "" {
		mood = models.MoodNeutral
	}

	triggers := "None identified"
	if len(uc.Triggers) > 0 {
		var names []string
		for _, t := range uc.Triggers {
			names = append(names, t.Name)
		}
		triggers = strings.Join(names, ", ")
	}

	return fmt.Sprintf(`Generate a thoughtful journaling prompt for someone in recovery.

Days Sober: %d
Recent Journal Entries: %s
Dominant Mood Recently: %s
Identified Triggers: %s

Make the prompt specific, reflective, and encouraging. Avoid directly mentioning substances.
The prompt should help the user gain new insights about their journey.
Keep it to 1-2 sentences maximum.

Previously used prompts (avoid duplicating):
%s`, uc.SobrietyDays, entries, mood, triggers, strings.Join(usedPrompts, " | "))
}

func buildUrgePrompt(userMessage string, history []ChatTurn, uc UserContext) string {
	formatted := "This is the start of the conversation."
	if len(history) > 0 {
		recent := history
		if len(recent) > 6 {
			recent = recent[len(recent)-6:]
		}
		var lines []string
		for _, turn := range recent {
			speaker := "Assistant"
			if turn.Role == RoleUser {
				speaker = "User"
			}
			lines = append(lines, fmt.Sprintf("%s: %s", speaker, turn.Content))
		}
		formatted = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`User is currently experiencing an urge and needs immediate support.

User details:
- Days sober: %d
- Time of day: %s

Recent conversation:
%s

User's current message: %s

Provide a supportive, practical response focused on helping them through this moment. Keep it conversational and brief.`,
		uc.SobrietyDays, uc.TimeOfDay, formatted, userMessage)
}
