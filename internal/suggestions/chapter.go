package suggestions

import (
	"slices"

	"journey-backend/internal/journey"
)

var chapterSuggestions = map[string][]Suggestion{
	"chapter-1": {
		{ID: "sug-1-1", Title: "Multi-Channel Lead Scoring", Description: "Enhance lead qualification with ML-based scoring across email, social, and web touchpoints.", Impact: ImpactHigh},
		{ID: "sug-1-2", Title: "CRM Deep Integration", Description: "Sync qualified leads directly into your CRM with enriched contact data.", Impact: ImpactMedium},
		{ID: "sug-1-3", Title: "Lead Nurturing Sequences", Description: "Automatically enroll leads in personalized drip campaigns based on qualification score.", Impact: ImpactMedium},
	},
	"chapter-2": {
		{ID: "sug-2-1", Title: "Template Library Expansion", Description: "Create 20+ document templates for common use cases with variable placeholders.", Impact: ImpactHigh},
		{ID: "sug-2-2", Title: "Version Control Integration", Description: "Track document revisions and maintain audit trail for compliance.", Impact: ImpactMedium},
		{ID: "sug-2-3", Title: "E-Signature Workflow", Description: "Route generated documents through automated e-signature collection.", Impact: ImpactHigh},
	},
	"chapter-3": {
		{ID: "sug-3-1", Title: "Sentiment Analysis", Description: "Detect customer frustration early and escalate before issues compound.", Impact: ImpactHigh},
		{ID: "sug-3-2", Title: "Knowledge Base Auto-Update", Description: "AI learns from resolved tickets to improve future responses automatically.", Impact: ImpactMedium},
		{ID: "sug-3-3", Title: "Multi-Language Support", Description: "Extend support automation to 10+ languages with real-time translation.", Impact: ImpactMedium},
	},
	"chapter-4": {
		{ID: "sug-4-1", Title: "Custom Dashboard Builder", Description: "Create executive dashboards that update in real-time with predictions.", Impact: ImpactHigh},
		{ID: "sug-4-2", Title: "Anomaly Detection Alerts", Description: "Get notified immediately when metrics deviate from expected patterns.", Impact: ImpactHigh},
		{ID: "sug-4-3", Title: "Competitor Intelligence", Description: "Incorporate market signals and competitor data into forecasts.", Impact: ImpactMedium},
	},
	"chapter-5": {
		{ID: "sug-5-1", Title: "Error Recovery Automation", Description: "Implement self-healing workflows that auto-retry failed operations.", Impact: ImpactHigh},
		{ID: "sug-5-2", Title: "Process Mining Integration", Description: "Discover bottlenecks and optimization opportunities from process logs.", Impact: ImpactMedium},
		{ID: "sug-5-3", Title: "Real-Time Monitoring Dashboard", Description: "Visual overview of all running workflows with performance metrics.", Impact: ImpactHigh},
	},
}

var fallbackSuggestions = []Suggestion{
	{ID: "sug-default-1", Title: "Process Optimization", Description: "Review and optimize the current automation workflow for better performance.", Impact: ImpactMedium},
	{ID: "sug-default-2", Title: "Integration Expansion", Description: "Connect additional tools and services to enhance automation capabilities.", Impact: ImpactMedium},
	{ID: "sug-default-3", Title: "Analytics Enhancement", Description: "Add detailed metrics and reporting to track automation ROI.", Impact: ImpactLow},
}

// GetChapterSuggestions returns the three authored suggestions for the
// chapter, or the generic fallback list when the chapter id has none. Only
// the chapter id is consulted.
func GetChapterSuggestions(chapter journey.Chapter) []Suggestion {
	if list, ok := chapterSuggestions[chapter.ID]; ok {
		return slices.Clone(list)
	}
	return slices.Clone(fallbackSuggestions)
}

func hasAuthoredSuggestions(chapterID string) bool {
	_, ok := chapterSuggestions[chapterID]
	return ok
}
