// Package catalog holds the static OTC medicine tables the recommendation
// pipeline draws from: candidates per symptom category, severity tier, and
// age group, plus the per-category remedy, avoid, and red-flag lists.
package catalog

import "fmt"

// Catalog is the read-only medicine catalog. Build it once with New and
// share it freely; all lookups return copies so callers can never mutate
// the underlying tables.
type Catalog struct {
	medicines map[string]map[Tier]map[AgeGroup][]Medicine
	remedies  map[string][]string
	avoid     map[string][]string
	flags     map[string][]string
	actions   map[string][]string
}

func New() *Catalog {
	return &Catalog{
		medicines: medicineTable,
		remedies:  homeRemedies,
		avoid:     avoidList,
		flags:     redFlags,
		actions:   immediateActions,
	}
}

// Categories returns the canonical category list in presentation order.
func (c *Catalog) Categories() []string {
	return copyStrings(categoryOrder)
}

// HasCategory reports whether category is one of the canonical buckets.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.medicines[category]
	return ok
}

// Candidates returns the candidate medicines for a category, tier, and age
// group in recommendation order. A missing combination yields an empty
// slice, never an error.
func (c *Catalog) Candidates(category string, tier Tier, age AgeGroup) []Medicine {
	byTier, ok := c.medicines[category]
	if !ok {
		return nil
	}
	byAge, ok := byTier[tier]
	if !ok {
		return nil
	}
	entries := byAge[age]
	out := make([]Medicine, len(entries))
	copy(out, entries)
	return out
}

func (c *Catalog) HomeRemedies(category string) []string {
	return copyStrings(c.remedies[category])
}

func (c *Catalog) AvoidList(category string) []string {
	return copyStrings(c.avoid[category])
}

func (c *Catalog) RedFlags(category string) []string {
	return copyStrings(c.flags[category])
}

// ImmediateActions returns the stepwise relief actions for a category,
// falling back to the generic rest/hydrate/monitor set.
func (c *Catalog) ImmediateActions(category string) []string {
	if actions, ok := c.actions[category]; ok {
		return copyStrings(actions)
	}
	return copyStrings(defaultImmediateActions)
}

// SupportiveCare returns the care steps attached to escalated results,
// where no OTC candidates are surfaced at all.
func (c *Catalog) SupportiveCare() []string {
	return copyStrings(supportiveCare)
}

// Validate checks the tables are complete: every canonical category must
// carry candidates for both tiers and both age groups, plus remedy, avoid,
// and red-flag lists. Used by the catalog CLI subcommand.
func (c *Catalog) Validate() error {
	for _, category := range categoryOrder {
		byTier, ok := c.medicines[category]
		if !ok {
			return fmt.Errorf("category %s has no medicine table", category)
		}
		for _, tier := range []Tier{TierMild, TierModerate} {
			byAge, ok := byTier[tier]
			if !ok {
				return fmt.Errorf("category %s missing %s tier", category, tier)
			}
			for _, age := range []AgeGroup{AgeChild, AgeAdult} {
				if len(byAge[age]) == 0 {
					return fmt.Errorf("category %s has no %s/%s candidates", category, tier, age)
				}
			}
		}
		if len(c.remedies[category]) == 0 {
			return fmt.Errorf("category %s has no home remedies", category)
		}
		if len(c.avoid[category]) == 0 {
			return fmt.Errorf("category %s has no avoid list", category)
		}
		if len(c.flags[category]) == 0 {
			return fmt.Errorf("category %s has no red flags", category)
		}
	}
	return nil
}

// DoctorGuidance returns the when-to-see-a-doctor line for a severity score.
func DoctorGuidance(severity int) string {
	switch {
	case severity >= 6:
		return "See a doctor TODAY if symptoms don't improve within 24 hours or worsen. Don't delay."
	case severity >= 4:
		return "Schedule a doctor appointment within 24-48 hours if no improvement. Monitor symptoms closely."
	default:
		return "If symptoms persist beyond 3 days or worsen, consult your doctor. Most cases improve with home care."
	}
}

// RecoveryTimeline returns the expected-recovery line for a severity score.
func RecoveryTimeline(severity int) string {
	switch {
	case severity <= 3:
		return "You should start feeling better within 24-48 hours with proper care and rest."
	case severity <= 6:
		return "Most people recover within 3-5 days with appropriate treatment."
	default:
		return "Recovery time varies based on individual factors. Follow medical advice and monitor progress daily."
	}
}

func copyStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
