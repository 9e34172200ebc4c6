package content

// Reason is a "why I'm doing this" card. Progress grows with the day count
// at a per-card rate and caps at 100.
type Reason struct {
	ID          string
	Title       string
	Content     string
	Alternative string
	rate        float64
}

// Progress returns the card's fill percentage for a day count.
func (r Reason) Progress(days int) float64 {
	p := float64(days) * r.rate
	if p > 100 {
		return 100
	}
	return p
}

// Reasons returns the motivation cards in display order.
func Reasons() []Reason {
	return []Reason{
		{
			ID:          "health",
			Title:       "Regenerating Your Body from Within",
			Content:     "Your liver is not just filtering toxins; it's actively regenerating new cells. By abstaining, you're giving it the chance to repair years of damage, potentially reversing fatty liver disease and significantly lowering cancer risks. Your immune system is recalibrating, inflammation is reducing, and your cardiovascular system is recovering from alcohol-induced strain.",
			Alternative: "Fuel your body with nutrient-rich foods and hydration. Your cells are thanking you.",
			rate:        0.5,
		},
		{
			ID:          "clarity",
			Title:       "Unlocking Mental Potential",
			Content:     "Alcohol disrupts neuroplasticity, the brain's ability to rewire and adapt. By choosing sobriety, you're allowing your cognitive functions to sharpen. Memory retention improves, emotional regulation strengthens, and your capacity for deep thought and creativity expands. You're actively restoring your brain's ability to function at its highest potential.",
			Alternative: "Engage in learning something new, whether it's a language, an instrument, or a concept. Your mind is your greatest asset.",
			rate:        0.3,
		},
		{
			ID:          "financial",
			Title:       "Wealth Beyond Money",
			Content:     "Sobriety isn't just about saving money; it's about investing in your future. Every dollar not spent on alcohol is an opportunity: a class you can take, an experience you can have, a skill you can develop. Beyond financial savings, you're also reclaiming time and energy that can be redirected towards self-growth and meaningful relationships.",
			Alternative: "Create a vision board of your financial and personal goals. Watch how they manifest when you commit to them.",
			rate:        0.4,
		},
	}
}

// ReasonByID looks up a motivation card by its identifier.
func ReasonByID(id string) (Reason, bool) {
	for _, r := range Reasons() {
		if r.ID == id {
			return r, true
		}
	}
	return Reason{}, false
}
