package content

// CopingStrategy is one evidence-based technique for riding out an urge.
type CopingStrategy struct {
	ID          string
	Title       string
	Description string
	Steps       []string
}

// CopingStrategies returns the technique catalog in display order.
func CopingStrategies() []CopingStrategy {
	return []CopingStrategy{
		{
			ID:          "urge-surfing",
			Title:       "Urge Surfing",
			Description: "Instead of fighting the urge, observe it like a wave. It will rise, peak, and eventually subside. Stay present and breathe through it.",
			Steps: []string{
				"Find a quiet place to sit or lie down",
				"Notice where you feel the urge in your body",
				"Breathe deeply and observe the sensation without judgment",
				"Remind yourself that urges always pass, usually within 20-30 minutes",
				"Visualize yourself riding the wave of the urge until it subsides",
			},
		},
		{
			ID:          "distraction",
			Title:       "Tactical Distraction",
			Description: "Shift your focus to a completely different activity that requires concentration.",
			Steps: []string{
				"Choose an activity that requires focus (puzzle, exercise, cooking)",
				"Set a timer for 15-30 minutes",
				"Immerse yourself fully in the activity",
				"After the timer ends, reassess how you feel",
				"Extend the activity if needed or switch to another",
			},
		},
		{
			ID:          "play-forward",
			Title:       "Play the Tape Forward",
			Description: "Mentally visualize the entire sequence of what would happen if you gave in to the urge.",
			Steps: []string{
				"Start by imagining the temporary relief of giving in",
				"Continue the mental movie to include the aftermath",
				"Visualize the guilt, physical symptoms, and regret",
				"Contrast this with how you'll feel tomorrow if you stay sober",
				"Remind yourself that the urge is temporary, but consequences last longer",
			},
		},
		{
			ID:          "mindfulness",
			Title:       "Mindfulness Meditation",
			Description: "Center yourself in the present moment through focused breathing and awareness.",
			Steps: []string{
				"Find a comfortable position and close your eyes",
				"Focus on your breathing for 5 full breaths",
				"Scan your body for tension and release it",
				"Label your thoughts and feelings without judgment",
				"Return to your breath whenever your mind wanders",
			},
		},
		{
			ID:          "delay-technique",
			Title:       "Delay Technique",
			Description: "Postpone the decision about whether to drink for a specific amount of time.",
			Steps: []string{
				"When you feel an urge, make a deal with yourself to wait 20 minutes",
				"Set a timer for clarity and commitment",
				"During this time, engage in a different activity",
				"When the timer goes off, reassess your urge",
				"Repeat if necessary, extending the time",
			},
		},
		{
			ID:          "replacement-behavior",
			Title:       "Replacement Behavior",
			Description: "Substitute the drinking behavior with a healthier alternative that provides similar satisfaction.",
			Steps: []string{
				"Identify what need alcohol fulfills (relaxation, social connection, etc.)",
				"Choose a healthy alternative that meets the same need",
				"Have your alternative readily available",
				"Practice using your replacement during triggering situations",
				"Notice the positive effects of the healthier choice",
			},
		},
		{
			ID:          "reach-out",
			Title:       "Reach Out",
			Description: "Connect with someone supportive who understands your sobriety journey.",
			Steps: []string{
				"Identify 3-5 people you can call when struggling",
				"Let them know in advance they're on your support team",
				"When an urge hits, call or text immediately",
				"Be honest about what you're experiencing",
				"Stay on the call until the urge subsides",
			},
		},
		{
			ID:          "self-talk",
			Title:       "Positive Self-Talk",
			Description: "Use encouraging, compassionate language with yourself to strengthen your resolve.",
			Steps: []string{
				"Notice negative thoughts like 'One drink won't hurt'",
				"Challenge these thoughts with facts about your progress",
				"Replace with positive affirmations like 'I'm strong enough to handle this urge'",
				"Remind yourself of your reasons for sobriety",
				"Acknowledge your strength for recognizing and addressing the urge",
			},
		},
	}
}

// CopingStrategyByID looks up a strategy by its identifier.
func CopingStrategyByID(id string) (CopingStrategy, bool) {
	for _, s := range CopingStrategies() {
		if s.ID == id {
			return s, true
		}
	}
	return CopingStrategy{}, false
}
