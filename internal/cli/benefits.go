package cli

import (
	"fmt"
	"strings"

	"clearday.dev/clearday/internal/content"
)

type BenefitsCmd struct {
	Category string `arg:"" optional:"" help:"Show a single category, e.g. \"physical health\"."`
}

func (c *BenefitsCmd) Run(ctx *Context) error {
	days := ctx.Profile.SobrietyDays()
	categories := content.BenefitCategories()

	if c.Category != "" {
		cat, ok := findBenefitCategory(categories, c.Category)
		if !ok {
			names := make([]string, len(categories))
			for i, cc := range categories {
				names[i] = cc.Name
			}
			return fmt.Errorf("unknown category %q, choose one of: %s", c.Category, strings.Join(names, ", "))
		}
		categories = []content.BenefitCategory{cat}
	}

	fmt.Println(titleStyle.Render("Benefits Timeline"))
	fmt.Println(subtleStyle.Render(fmt.Sprintf("Day %d. Checked entries are already yours.", days)))

	for _, cat := range categories {
		fmt.Println()
		fmt.Println(badgeStyle.Render(fmt.Sprintf("%s (%d of %d unlocked)", cat.Name, len(cat.Unlocked(days)), len(cat.Benefits))))
		for _, b := range cat.Benefits {
			line := benefitLine(b, days)
			if b.Day <= days {
				fmt.Println(highlightStyle.Render(line))
			} else {
				fmt.Println(subtleStyle.Render(line))
			}
		}
	}
	return nil
}

func findBenefitCategory(categories []content.BenefitCategory, name string) (content.BenefitCategory, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return content.BenefitCategory{}, false
}

func benefitLine(b content.Benefit, days int) string {
	marker := "  "
	if b.Day <= days {
		marker = "✓ "
	}
	return fmt.Sprintf("%sDay %d: %s", marker, b.Day, b.Title)
}
