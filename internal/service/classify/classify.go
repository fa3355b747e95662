package classify

import "strings"

// Kitchen size buckets.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
	SizeXL     = "xl"
)

// Renovation scope buckets.
const (
	ScopeCosmetic = "cosmetic"
	ScopeStandard = "standard"
	ScopeGut      = "gut_renovation"
)

// Quality tiers.
const (
	QualityBudget   = "budget"
	QualityMidRange = "mid_range"
	QualityHighEnd  = "high_end"
	QualityLuxury   = "luxury"
)

// Params are the three categorical inputs the calculator needs.
type Params struct {
	Size    string `json:"kitchen_size"`
	Scope   string `json:"scope"`
	Quality string `json:"quality_tier"`
}

var sizeRules = []rule{
	{keywords: []string{"small", "galley", "tiny"}, value: SizeSmall},
	{keywords: []string{"large", "big", "spacious"}, value: SizeLarge},
	{keywords: []string{"xl", "luxury", "massive"}, value: SizeXL},
}

var scopeRules = []rule{
	{keywords: []string{"cosmetic", "refresh", "update", "paint", "reface"}, value: ScopeCosmetic},
	{keywords: []string{"gut", "complete", "full", "tear down", "rebuild"}, value: ScopeGut},
}

var qualityRules = []rule{
	{keywords: []string{"budget", "cheap", "basic", "affordable"}, value: QualityBudget},
	{keywords: []string{"luxury", "high-end", "premium", "custom"}, value: QualityLuxury},
	{keywords: []string{"high", "nice", "good quality"}, value: QualityHighEnd},
}

type rule struct {
	keywords []string
	value    string
}

// Classify maps a free-form project description to size, scope and quality.
// Matching is case-insensitive substring containment, rules are checked in
// order and the first hit wins; anything unmatched falls back to the default
// bucket, so classification never fails. Note the word "luxury" feeds both the
// size and the quality rules on purpose - the two outputs are independent.
func Classify(description string) Params {
	desc := strings.ToLower(description)

	return Params{
		Size:    match(desc, sizeRules, SizeMedium),
		Scope:   match(desc, scopeRules, ScopeStandard),
		Quality: match(desc, qualityRules, QualityMidRange),
	}
}

func match(desc string, rules []rule, fallback string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.value
			}
		}
	}
	return fallback
}
