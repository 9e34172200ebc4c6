// Package content holds the app's static recovery material: benefit
// timelines, coping strategies, community resources, emergency contacts,
// reason cards, and the time-of-day greeting. All of it is plain data so
// views can render it however they like.
package content

// Benefit is one entry on a sobriety benefit timeline.
type Benefit struct {
	Day   int
	Title string
}

// BenefitCategory groups a timeline of benefits under a display name.
type BenefitCategory struct {
	Name     string
	Benefits []Benefit
}

// BenefitCategories returns the benefit timelines in display order.
func BenefitCategories() []BenefitCategory {
	return []BenefitCategory{
		{
			Name: "Physical Health",
			Benefits: []Benefit{
				{1, "Blood Sugar Stabilizes"},
				{3, "Improved Hydration"},
				{7, "Better Sleep Patterns"},
				{14, "Reduced Liver Fat"},
				{30, "Lower Blood Pressure"},
				{90, "Immune System Boost"},
				{180, "Improved Skin Appearance"},
				{365, "Significantly Lower Cancer Risk"},
			},
		},
		{
			Name: "Mental Clarity",
			Benefits: []Benefit{
				{1, "Mental Fog Lifting"},
				{7, "Improved Concentration"},
				{14, "Better Memory Formation"},
				{30, "Enhanced Problem Solving"},
				{60, "Emotional Regulation"},
				{90, "Renewed Creativity"},
				{180, "Neural Pathway Rewiring"},
				{365, "Long-term Cognitive Improvements"},
			},
		},
		{
			Name: "Financial",
			Benefits: []Benefit{
				{7, "First Week Savings"},
				{30, "Monthly Budget Freedom"},
				{90, "New Opportunity Fund"},
				{180, "Reclaimed Time Value"},
				{365, "Annual Wealth Building"},
			},
		},
		{
			Name: "Relationships",
			Benefits: []Benefit{
				{14, "Improved Communication"},
				{30, "Conflict Resolution Skills"},
				{60, "Deeper Empathy"},
				{90, "Authentic Vulnerability"},
				{180, "Relationship Rebuilding"},
				{365, "Building Trust"},
			},
		},
		{
			Name: "Emotional Wellbeing",
			Benefits: []Benefit{
				{1, "Sense of Accomplishment"},
				{7, "Reduced Anxiety"},
				{14, "Emotional Stability"},
				{30, "Increased Self-esteem"},
				{90, "Improved Stress Response"},
				{180, "Feelings of Purpose"},
				{365, "Long-term Contentment"},
			},
		},
	}
}

// Unlocked returns the benefits in a category already reached at the given
// day count.
func (c BenefitCategory) Unlocked(days int) []Benefit {
	var out []Benefit
	for _, b := range c.Benefits {
		if b.Day <= days {
			out = append(out, b)
		}
	}
	return out
}
