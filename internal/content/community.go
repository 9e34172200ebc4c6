package content

// Resource is an online community or local support option.
type Resource struct {
	Name        string
	Description string
	URL         string
}

// CommunityResources returns the online community directory.
func CommunityResources() []Resource {
	return []Resource{
		{
			Name:        "Alcoholics Anonymous",
			Description: "The original 12-step fellowship with millions of members worldwide.",
			URL:         "https://www.aa.org/",
		},
		{
			Name:        "SMART Recovery",
			Description: "Self-Management and Recovery Training - a science-based approach.",
			URL:         "https://www.smartrecovery.org/",
		},
		{
			Name:        "r/stopdrinking",
			Description: "A supportive Reddit community with over 400,000 members.",
			URL:         "https://www.reddit.com/r/stopdrinking/",
		},
		{
			Name:        "Soberistas",
			Description: "An international community focused on positive sober living.",
			URL:         "https://soberistas.com/",
		},
		{
			Name:        "Women for Sobriety",
			Description: "A non-profit dedicated to helping women overcome addictions.",
			URL:         "https://womenforsobriety.org/",
		},
		{
			Name:        "Tempest Sobriety",
			Description: "A modern digital recovery program with a holistic approach.",
			URL:         "https://www.jointempest.com/",
		},
	}
}

// LocalSupportOptions returns meeting finders and treatment locators.
func LocalSupportOptions() []Resource {
	return []Resource{
		{
			Name:        "AA Meeting Finder",
			Description: "Find Alcoholics Anonymous meetings near your location or browse by area.",
			URL:         "https://www.aa.org/find-aa",
		},
		{
			Name:        "SMART Recovery Meetings",
			Description: "Locate in-person or online SMART Recovery meetings in your area.",
			URL:         "https://www.smartrecovery.org/meetings/",
		},
		{
			Name:        "Refuge Recovery",
			Description: "Find Buddhist-inspired recovery meetings that focus on mindfulness.",
			URL:         "https://refugerecovery.org/meetings",
		},
		{
			Name:        "SAMHSA Treatment Locator",
			Description: "Find professional treatment facilities and support services in your area.",
			URL:         "https://findtreatment.samhsa.gov/",
		},
	}
}
