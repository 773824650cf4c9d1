package journey

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the catalog's referential and range invariants. All
// violations are reported together, each wrapping ErrInvalidCatalog.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	chapterIDs := make(map[string]struct{}, len(c.Chapters))
	for i, ch := range c.Chapters {
		if strings.TrimSpace(ch.ID) == "" {
			fail("chapters[%d]: id is required", i)
			continue
		}
		if _, dup := chapterIDs[ch.ID]; dup {
			fail("chapters[%d]: duplicate id %q", i, ch.ID)
			continue
		}
		chapterIDs[ch.ID] = struct{}{}
		if ch.Pricing.CostUSD < 0 {
			fail("chapter %q: negative cost", ch.ID)
		}
	}

	tiers := make(map[string]struct{}, len(c.Packages))
	for i, pkg := range c.Packages {
		if strings.TrimSpace(pkg.Tier) == "" {
			fail("packages[%d]: tier is required", i)
			continue
		}
		if _, dup := tiers[pkg.Tier]; dup {
			fail("packages[%d]: duplicate tier %q", i, pkg.Tier)
			continue
		}
		tiers[pkg.Tier] = struct{}{}
		for _, id := range pkg.IncludedChapterIDs {
			if _, ok := chapterIDs[id]; !ok {
				fail("package %q: unknown chapter %q", pkg.Tier, id)
			}
		}
	}

	sliderIDs := make(map[string]struct{}, len(c.ROI.Sliders))
	for i, sl := range c.ROI.Sliders {
		if strings.TrimSpace(sl.ID) == "" {
			fail("roi.sliders[%d]: id is required", i)
			continue
		}
		if _, dup := sliderIDs[sl.ID]; dup {
			fail("roi.sliders[%d]: duplicate id %q", i, sl.ID)
		}
		sliderIDs[sl.ID] = struct{}{}
		if sl.Step <= 0 {
			fail("slider %q: step must be positive", sl.ID)
		}
		if sl.Min > sl.Max {
			fail("slider %q: min %v exceeds max %v", sl.ID, sl.Min, sl.Max)
		}
		if sl.Default < sl.Min || sl.Default > sl.Max {
			fail("slider %q: default %v outside [%v, %v]", sl.ID, sl.Default, sl.Min, sl.Max)
		}
	}

	return errors.Join(errs...)
}
