package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_NoKeywordsReturnsDefaults(t *testing.T) {
	p := Classify("redo the cooking area please")

	assert.Equal(t, SizeMedium, p.Size)
	assert.Equal(t, ScopeStandard, p.Scope)
	assert.Equal(t, QualityMidRange, p.Quality)
}

func TestClassify_EmptyInputReturnsDefaults(t *testing.T) {
	p := Classify("")

	assert.Equal(t, Params{Size: SizeMedium, Scope: ScopeStandard, Quality: QualityMidRange}, p)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	p := Classify("SMALL GALLEY Kitchen REFRESH on a BUDGET")

	assert.Equal(t, SizeSmall, p.Size)
	assert.Equal(t, ScopeCosmetic, p.Scope)
	assert.Equal(t, QualityBudget, p.Quality)
}

// "luxury" feeds the xl size rule and the luxury quality rule at the same
// time, but "small" wins the size because earlier rules take precedence.
func TestClassify_SmallWinsOverLuxurySizeToken(t *testing.T) {
	p := Classify("luxury small kitchen")

	assert.Equal(t, SizeSmall, p.Size)
	assert.Equal(t, QualityLuxury, p.Quality)
}

// "large" is checked before the xl tokens, so a description carrying both
// resolves to large even though "luxury" alone would have meant xl.
func TestClassify_LargeWinsOverLuxurySizeToken(t *testing.T) {
	p := Classify("large luxury kitchen")

	assert.Equal(t, SizeLarge, p.Size)
	assert.Equal(t, QualityLuxury, p.Quality)
}

func TestClassify_LuxuryAloneMeansXLSize(t *testing.T) {
	p := Classify("Complete gut renovation of luxury kitchen with custom everything")

	assert.Equal(t, SizeXL, p.Size)
	assert.Equal(t, ScopeGut, p.Scope)
	assert.Equal(t, QualityLuxury, p.Quality)
}

func TestClassify_SmallRemodelScenario(t *testing.T) {
	p := Classify("I want to remodel my small kitchen with new cabinets, countertops and appliances")

	assert.Equal(t, SizeSmall, p.Size)
	assert.Equal(t, ScopeStandard, p.Scope)
	assert.Equal(t, QualityMidRange, p.Quality)
}

func TestClassify_ScopeKeywords(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"just a paint job", ScopeCosmetic},
		{"reface the cabinet doors", ScopeCosmetic},
		{"tear down to the studs and rebuild", ScopeGut},
		{"new kitchen please", ScopeStandard},
	}

	for _, tc := range cases {
		p := Classify(tc.description)
		assert.Equal(t, tc.want, p.Scope, "description: %s", tc.description)
	}
}

func TestClassify_QualityKeywords(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"cheap and cheerful", QualityBudget},
		{"premium finishes throughout", QualityLuxury},
		{"good quality materials", QualityHighEnd},
		{"high ceilings, nice light", QualityHighEnd},
		{"whatever works", QualityMidRange},
	}

	for _, tc := range cases {
		p := Classify(tc.description)
		assert.Equal(t, tc.want, p.Quality, "description: %s", tc.description)
	}
}

func TestClassify_Pure(t *testing.T) {
	desc := "spacious kitchen, full rebuild, custom everything"

	assert.Equal(t, Classify(desc), Classify(desc))
}
