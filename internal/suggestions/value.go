package suggestions

import "slices"

var valueOptimizationSuggestions = []Suggestion{
	{ID: "val-1", Title: "Bundle Discount Opportunity", Description: "Adding Chapter 3 (Support Automation) to your cart qualifies you for a 15% bundle discount.", Impact: ImpactHigh},
	{ID: "val-2", Title: "Phased Implementation", Description: "Consider spreading implementation across 2 quarters to reduce initial cash outlay and validate ROI progressively.", Impact: ImpactMedium},
	{ID: "val-3", Title: "Quick Win First", Description: "Start with Chapter 1 (Lead Capture) for fastest time-to-value and proof of concept for stakeholders.", Impact: ImpactHigh},
}

// GetValueOptimizationSuggestions returns the fixed cart-level suggestions.
func GetValueOptimizationSuggestions() []Suggestion {
	return slices.Clone(valueOptimizationSuggestions)
}
