package catalogRepo

import "quotely/models"

// DefaultCatalog returns the built-in service catalog. Deltas are signed;
// the negative ones (static CMS, three-month delivery) are discounts.
func DefaultCatalog() []models.ServiceDefinition {
	return []models.ServiceDefinition{
		{
			ID:        "social-media",
			Name:      "Social Media Management",
			BasePrice: 300,
			Rank:      1,
		},
		{
			ID:        "seo",
			Name:      "SEO Optimization",
			BasePrice: 400,
			Rank:      2,
		},
		{
			ID:           "website",
			Name:         "Website Development",
			BasePrice:    700,
			Configurable: true,
			Rank:         3,
			ConfigSchema: []models.OptionGroup{
				{
					ID:              "design",
					Label:           "Design",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "template",
					Options: []models.Option{
						{ID: "template", Label: "Template design", PriceDelta: 0},
						{ID: "custom", Label: "Custom design", PriceDelta: 500},
					},
				},
				{
					ID:              "pages",
					Label:           "Number of pages",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "up-to-5",
					Options: []models.Option{
						{ID: "up-to-5", Label: "Up to 5 pages", PriceDelta: 0},
						{ID: "up-to-10", Label: "Up to 10 pages", PriceDelta: 400},
						{ID: "more-than-10", Label: "More than 10 pages", PriceDelta: 800},
					},
				},
				{
					ID:              "cms",
					Label:           "Content management",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "none",
					Options: []models.Option{
						{ID: "none", Label: "No CMS", PriceDelta: 0},
						{ID: "static", Label: "Static site", PriceDelta: -100},
						{ID: "dynamic", Label: "Dynamic CMS", PriceDelta: 300},
					},
				},
				{
					ID:            "extras",
					Label:         "Additional services",
					SelectionMode: models.SelectionModeMulti,
					Options: []models.Option{
						{ID: "booking", Label: "Booking system", PriceDelta: 400},
						{ID: "newsletter", Label: "Newsletter integration", PriceDelta: 400},
					},
				},
				{
					ID:            "features",
					Label:         "Features",
					SelectionMode: models.SelectionModeMulti,
					Options: []models.Option{
						{ID: "seo-setup", Label: "SEO setup", PriceDelta: 300},
						{ID: "analytics", Label: "Analytics integration", PriceDelta: 300},
					},
				},
				{
					ID:              "languages",
					Label:           "Languages",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "one",
					Options: []models.Option{
						{ID: "one", Label: "One language", PriceDelta: 0},
						{ID: "three", Label: "Up to three languages", PriceDelta: 400},
						{ID: "five", Label: "Up to five languages", PriceDelta: 800},
					},
				},
				{
					ID:              "support",
					Label:           "Support period",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "one-month",
					Options: []models.Option{
						{ID: "one-month", Label: "1 month support", PriceDelta: 0},
						{ID: "six-months", Label: "6 months support", PriceDelta: 250},
						{ID: "twelve-months", Label: "12 months support", PriceDelta: 450},
					},
				},
				{
					ID:              "delivery",
					Label:           "Delivery time",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "standard",
					Options: []models.Option{
						{ID: "standard", Label: "Standard delivery", PriceDelta: 0},
						{ID: "two-weeks", Label: "2-week delivery", PriceDelta: 300},
						{ID: "three-months", Label: "3-month delivery", PriceDelta: -400},
					},
				},
			},
		},
		{
			ID:           "app",
			Name:         "Mobile App Development",
			BasePrice:    1500,
			Configurable: true,
			Rank:         4,
			ConfigSchema: []models.OptionGroup{
				{
					ID:              "platform",
					Label:           "Platform",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "android",
					Options: []models.Option{
						{ID: "android", Label: "Android", PriceDelta: 0},
						{ID: "ios", Label: "iOS", PriceDelta: 0},
						{ID: "both", Label: "Android and iOS", PriceDelta: 600},
					},
				},
				{
					ID:              "app-design",
					Label:           "App design",
					SelectionMode:   models.SelectionModeSingle,
					DefaultOptionID: "standard",
					Options: []models.Option{
						{ID: "standard", Label: "Standard design", PriceDelta: 0},
						{ID: "custom", Label: "Custom design", PriceDelta: 500},
					},
				},
			},
		},
	}
}
