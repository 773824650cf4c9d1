package roi

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"journey-backend/internal/journey"
)

const (
	SliderHourlyCost = "avgHourlyCost"
	SliderHoursSaved = "hoursSavedPerWeek"
	SliderUptake     = "automationUptakeRate"

	WorkWeeksPerYear = 50
	MaintenanceRate  = 0.15
)

var ErrInvalidInput = errors.New("invalid input")

// Catalog is the read surface the estimator needs from the content store.
type Catalog interface {
	Slider(id string) (journey.Slider, bool)
	GetChapterByID(id string) (journey.Chapter, bool)
	Package(tier string) (journey.Package, bool)
	Packages() []journey.Package
}

// Request carries slider values keyed by slider id, and either a package
// tier or a cart of chapter ids.
type Request struct {
	Values     map[string]float64 `json:"values"`
	ChapterIDs []string           `json:"chapterIds"`
	Tier       string             `json:"tier"`
}

type Estimate struct {
	Inputs                 map[string]float64 `json:"inputs"`
	GrossAnnualSavings     float64            `json:"grossAnnualSavings"`
	EffectiveAnnualSavings float64            `json:"effectiveAnnualSavings"`
	ImplementationCost     int                `json:"implementationCost"`
	AnnualMaintenance      float64            `json:"annualMaintenance"`
	NetFirstYear           float64            `json:"netFirstYear"`
	PaybackMonths          *float64           `json:"paybackMonths,omitempty"`
	Cart                   CartSummary        `json:"cart"`
}

type CartSummary struct {
	ChapterIDs       []string `json:"chapterIds"`
	ListPrice        int      `json:"listPrice"`
	Tier             string   `json:"tier,omitempty"`
	BestPackage      string   `json:"bestPackage,omitempty"`
	BestPackagePrice int      `json:"bestPackagePrice,omitempty"`
	PackageSavings   int      `json:"packageSavings,omitempty"`
}

// Compute estimates yearly value for the request. Slider values default to
// the slider's default and must lie within its range.
func Compute(cat Catalog, req Request) (Estimate, error) {
	inputs, err := resolveInputs(cat, req.Values)
	if err != nil {
		return Estimate{}, err
	}
	cart, implCost, err := resolveCart(cat, req)
	if err != nil {
		return Estimate{}, err
	}

	gross := inputs[SliderHourlyCost] * inputs[SliderHoursSaved] * WorkWeeksPerYear
	effective := gross * inputs[SliderUptake] / 100
	maintenance := float64(implCost) * MaintenanceRate

	est := Estimate{
		Inputs:                 inputs,
		GrossAnnualSavings:     roundTo(gross, 2),
		EffectiveAnnualSavings: roundTo(effective, 2),
		ImplementationCost:     implCost,
		AnnualMaintenance:      roundTo(maintenance, 2),
		NetFirstYear:           roundTo(effective-float64(implCost)-maintenance, 2),
		Cart:                   cart,
	}
	monthlyNet := (effective - maintenance) / 12
	if implCost > 0 && monthlyNet > 0 {
		months := roundTo(float64(implCost)/monthlyNet, 1)
		est.PaybackMonths = &months
	}
	return est, nil
}

func resolveInputs(cat Catalog, values map[string]float64) (map[string]float64, error) {
	required := []string{SliderHourlyCost, SliderHoursSaved, SliderUptake}
	for id := range values {
		if !slices.Contains(required, id) {
			return nil, fmt.Errorf("%w: unknown slider %q", ErrInvalidInput, id)
		}
	}
	out := make(map[string]float64, len(required))
	for _, id := range required {
		sl, ok := cat.Slider(id)
		if !ok {
			return nil, fmt.Errorf("catalog has no slider %q", id)
		}
		val, ok := values[id]
		if !ok {
			val = sl.Default
		}
		if math.IsNaN(val) || val < sl.Min || val > sl.Max {
			return nil, fmt.Errorf("%w: %s must be between %v and %v", ErrInvalidInput, id, sl.Min, sl.Max)
		}
		out[id] = val
	}
	return out, nil
}

func resolveCart(cat Catalog, req Request) (CartSummary, int, error) {
	tier := strings.TrimSpace(req.Tier)
	if tier != "" && len(req.ChapterIDs) > 0 {
		return CartSummary{}, 0, fmt.Errorf("%w: provide either tier or chapterIds", ErrInvalidInput)
	}

	var ids []string
	if tier != "" {
		pkg, ok := cat.Package(tier)
		if !ok {
			return CartSummary{}, 0, fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, tier)
		}
		ids = pkg.IncludedChapterIDs
	} else {
		ids = req.ChapterIDs
	}

	cart := CartSummary{ChapterIDs: make([]string, 0, len(ids)), Tier: tier}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		ch, ok := cat.GetChapterByID(id)
		if !ok {
			if tier != "" {
				continue
			}
			return CartSummary{}, 0, fmt.Errorf("%w: unknown chapter %q", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		cart.ChapterIDs = append(cart.ChapterIDs, id)
		cart.ListPrice += ch.Pricing.CostUSD
	}

	if tier != "" {
		pkg, _ := cat.Package(tier)
		if diff := cart.ListPrice - pkg.PriceUSD; diff > 0 {
			cart.PackageSavings = diff
		}
		return cart, pkg.PriceUSD, nil
	}

	if best, ok := cheapestCovering(cat.Packages(), seen); ok && best.PriceUSD < cart.ListPrice {
		cart.BestPackage = best.Tier
		cart.BestPackagePrice = best.PriceUSD
		cart.PackageSavings = cart.ListPrice - best.PriceUSD
	}
	return cart, cart.ListPrice, nil
}

// cheapestCovering returns the lowest-priced package that includes every
// chapter in want.
func cheapestCovering(pkgs []journey.Package, want map[string]struct{}) (journey.Package, bool) {
	if len(want) == 0 {
		return journey.Package{}, false
	}
	var best journey.Package
	found := false
	for _, pkg := range pkgs {
		covers := true
		for id := range want {
			if !slices.Contains(pkg.IncludedChapterIDs, id) {
				covers = false
				break
			}
		}
		if !covers {
			continue
		}
		if !found || pkg.PriceUSD < best.PriceUSD {
			best = pkg
			found = true
		}
	}
	return best, found
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
