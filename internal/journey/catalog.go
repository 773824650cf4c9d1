package journey

// Default returns the authored automation journey. Every call builds a fresh
// value, so callers may modify the result without affecting other readers.
func Default() Config {
	return Config{
		Brand: Brand{
			CompanyName: "MAB AI Strategies LLC",
			LogoURL:     "/assets/icons/logo.svg",
			ColorScheme: ColorScheme{
				Parchment: "#F6E7C1",
				Ink:       "#2B1B0E",
				Gold:      "#D4AF37",
			},
		},
		Viewer: Viewer{
			FirstNamePlaceholder: "{{FIRST_NAME}}",
		},
		Chapters: defaultChapters(),
		ROI: ROI{
			Assumptions: Assumptions{
				WorkWeeksPerYear:  "50 weeks (accounting for holidays)",
				HourlyCalculation: "Based on fully-loaded employee cost",
				AdoptionRamp:      "70% adoption assumed in Year 1, scaling to 90%+ by Year 3",
				MaintenanceCost:   "Annual maintenance estimated at 15% of implementation cost",
			},
			Sliders: []Slider{
				{ID: "avgHourlyCost", Label: "Average hourly cost ($)", Min: 20, Max: 200, Step: 5, Default: 65},
				{ID: "hoursSavedPerWeek", Label: "Estimated hours saved per week", Min: 1, Max: 100, Step: 1, Default: 20},
				{ID: "automationUptakeRate", Label: "Automation adoption rate (%)", Min: 10, Max: 100, Step: 5, Default: 70},
			},
		},
		Packages: defaultPackages(),
	}
}

func defaultChapters() []Chapter {
	return []Chapter{
		{
			ID:              "chapter-1",
			Title:           "Chapter I: The Gateway of Automated Inquiries",
			SummaryOneLiner: "Intelligent lead capture and qualification that works while you rest.",
			Diagram:         Diagram{Type: "svg", Src: "/assets/diagrams/chapter-1.svg"},
			HoverInfo: []string{
				"Automatically captures leads from web forms, email, and social channels",
				"AI qualifies prospects based on your ideal customer profile",
				"Routes high-value leads to your team instantly",
			},
			Tools:       []string{"Zapier", "OpenAI API", "Google Sheets", "Slack", "CRM Webhook"},
			Pricing:     Pricing{CostUSD: 2500, ImplHours: 8},
			Savings:     Savings{HoursPerWeek: 6, DollarsPerYear: 15600},
			MapPosition: MapPosition{X: 15, Y: 25},
		},
		{
			ID:              "chapter-2",
			Title:           "Chapter II: The Scribe's Eternal Quill",
			SummaryOneLiner: "AI-powered document generation that drafts proposals, contracts, and reports.",
			Diagram:         Diagram{Type: "svg", Src: "/assets/diagrams/chapter-2.svg"},
			HoverInfo: []string{
				"Generates customized proposals based on client requirements",
				"Auto-populates contracts with verified data",
				"Creates executive reports from raw data in seconds",
			},
			Tools:       []string{"GPT-4", "Google Docs API", "PandaDoc", "Data Warehouse"},
			Pricing:     Pricing{CostUSD: 3500, ImplHours: 12},
			Savings:     Savings{HoursPerWeek: 8, DollarsPerYear: 20800},
			MapPosition: MapPosition{X: 35, Y: 15},
		},
		{
			ID:              "chapter-3",
			Title:           "Chapter III: The Sentinel's Watch",
			SummaryOneLiner: "24/7 customer support automation that never sleeps.",
			Diagram:         Diagram{Type: "svg", Src: "/assets/diagrams/chapter-3.svg"},
			HoverInfo: []string{
				"AI chatbot handles Tier 1 support inquiries automatically",
				"Escalates complex issues to human agents with full context",
				"Maintains consistent response quality around the clock",
			},
			Tools:       []string{"Custom AI Agent", "Intercom", "Zendesk API", "Knowledge Base"},
			Pricing:     Pricing{CostUSD: 4500, ImplHours: 16},
			Savings:     Savings{HoursPerWeek: 15, DollarsPerYear: 39000},
			MapPosition: MapPosition{X: 55, Y: 30},
		},
		{
			ID:              "chapter-4",
			Title:           "Chapter IV: The Oracle's Vision",
			SummaryOneLiner: "Predictive analytics that forecast trends before they emerge.",
			Diagram:         Diagram{Type: "svg", Src: "/assets/diagrams/chapter-4.svg"},
			HoverInfo: []string{
				"ML models predict customer churn 30+ days in advance",
				"Forecasts inventory needs based on market signals",
				"Identifies emerging opportunities in your data",
			},
			Tools:       []string{"Python ML Pipeline", "BigQuery", "Tableau API", "Custom Models"},
			Pricing:     Pricing{CostUSD: 6000, ImplHours: 24},
			Savings:     Savings{HoursPerWeek: 10, DollarsPerYear: 52000},
			MapPosition: MapPosition{X: 75, Y: 20},
		},
		{
			ID:              "chapter-5",
			Title:           "Chapter V: The Grand Orchestration",
			SummaryOneLiner: "End-to-end workflow automation connecting all your business processes.",
			Diagram:         Diagram{Type: "svg", Src: "/assets/diagrams/chapter-5.svg"},
			HoverInfo: []string{
				"Connects disparate systems into unified workflows",
				"Triggers cascading actions across departments",
				"Provides real-time visibility into process health",
			},
			Tools:       []string{"n8n", "Custom Orchestrator", "Multi-API Integration", "Monitoring"},
			Pricing:     Pricing{CostUSD: 8000, ImplHours: 32},
			Savings:     Savings{HoursPerWeek: 20, DollarsPerYear: 78000},
			MapPosition: MapPosition{X: 85, Y: 45},
		},
	}
}

func defaultPackages() []Package {
	return []Package{
		{
			Tier:               "Core",
			IncludedChapterIDs: []string{"chapter-1", "chapter-2"},
			PriceUSD:           5500,
			Description:        "Essential automations to modernize your lead capture and document workflows.",
			Features: []string{
				"Lead capture & qualification automation",
				"AI document generation",
				"Basic integration support",
				"30-day implementation",
				"Email support",
			},
		},
		{
			Tier:               "Growth",
			IncludedChapterIDs: []string{"chapter-1", "chapter-2", "chapter-3"},
			PriceUSD:           9500,
			Description:        "Expand your automation footprint with 24/7 customer support capabilities.",
			Features: []string{
				"Everything in Core",
				"AI-powered support automation",
				"Multi-channel integration",
				"45-day implementation",
				"Priority support",
				"Monthly optimization reviews",
			},
		},
		{
			Tier:               "Scale",
			IncludedChapterIDs: []string{"chapter-1", "chapter-2", "chapter-3", "chapter-4", "chapter-5"},
			PriceUSD:           22000,
			Description:        "Complete enterprise transformation with predictive analytics and full orchestration.",
			Features: []string{
				"Everything in Growth",
				"Predictive analytics suite",
				"Full workflow orchestration",
				"Custom ML models",
				"90-day implementation",
				"Dedicated success manager",
				"Quarterly strategy sessions",
			},
		},
	}
}
