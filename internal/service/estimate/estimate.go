package estimate

import (
	"fmt"

	"fireapi/internal/service/classify"
	"fireapi/internal/storage"
)

// Line item categories.
const (
	CategoryLabor    = "labor"
	CategoryMaterial = "material"
)

// skilledRate is the rate category the final labor cost is priced at and the
// fallback for tasks that do not carry a usable category tag.
const skilledRate = "skilled"

// InvalidParameterError means a size, scope or quality key has no entry in
// the template.
type InvalidParameterError struct {
	Kind  string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// Options carries calculation switches resolved from config.
type Options struct {
	// ComplexityAppliesToMaterials extends the size x scope complexity
	// multiplier to material costs in addition to labor hours. Off by
	// default: only the quality multiplier touches materials.
	ComplexityAppliesToMaterials bool
}

// LineItem is one derived estimate row, either a labor task or a material
// purchase. Labor-only and material-only fields are omitted from JSON on the
// other category.
type LineItem struct {
	Category    string  `json:"category"`
	Phase       string  `json:"phase"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	UnitCost    float64 `json:"unit_cost,omitempty"`
	WasteFactor float64 `json:"waste_factor,omitempty"`
	Cost        float64 `json:"total_cost"`
}

// Totals is the estimate summary block.
type Totals struct {
	RawHours          float64 `json:"raw_hours"`
	Complexity        float64 `json:"complexity_multiplier"`
	AdjustedHours     float64 `json:"adjusted_hours"`
	LaborRate         float64 `json:"labor_rate"`
	LaborCost         float64 `json:"labor_cost"`
	RawMaterialCost   float64 `json:"raw_material_cost"`
	QualityMultiplier float64 `json:"quality_multiplier"`
	MaterialCost      float64 `json:"material_cost"`
	TotalCost         float64 `json:"total_cost"`
}

// Estimate is the full computed result: line items in template order plus
// the totals. Produced fresh per request, never stored.
type Estimate struct {
	LineItems []LineItem `json:"line_items"`
	Totals    Totals     `json:"totals"`
}

// Compute prices one renovation against the template. Pure function: the
// template is read-only and the same inputs always produce the same result.
// Fails only on unknown size/scope/quality keys; numeric gaps on individual
// tasks and materials count as zero.
func Compute(tpl *storage.Template, p classify.Params, opts Options) (*Estimate, error) {
	sizeFactor, ok := tpl.SizingFactors.KitchenSize[p.Size]
	if !ok {
		return nil, &InvalidParameterError{Kind: "kitchen_size", Value: p.Size}
	}
	scopeFactor, ok := tpl.SizingFactors.RenovationScope[p.Scope]
	if !ok {
		return nil, &InvalidParameterError{Kind: "renovation_scope", Value: p.Scope}
	}
	qualityTier, ok := tpl.QualityTiers[p.Quality]
	if !ok {
		return nil, &InvalidParameterError{Kind: "quality_tier", Value: p.Quality}
	}

	var (
		items       []LineItem
		rawHours    float64
		rawMaterial float64
	)

	for _, phase := range tpl.Phases {
		if !scopeFactor.PhasesIncluded.Contains(phase.PhaseID) {
			continue
		}

		for _, task := range phase.Tasks {
			rate := rateFor(tpl, task.RateCategory)
			items = append(items, LineItem{
				Category:    CategoryLabor,
				Phase:       phase.PhaseName,
				Description: task.Task,
				Hours:       task.LaborHours,
				Rate:        rate,
				Cost:        task.LaborHours * rate,
			})
			rawHours += task.LaborHours
		}

		for _, mat := range phase.Materials {
			cost := mat.Quantity * mat.UnitCost * (1 + mat.WasteFactor)
			items = append(items, LineItem{
				Category:    CategoryMaterial,
				Phase:       phase.PhaseName,
				Description: mat.Item,
				Quantity:    mat.Quantity,
				Unit:        mat.Unit,
				UnitCost:    mat.UnitCost,
				WasteFactor: mat.WasteFactor,
				Cost:        cost,
			})
			rawMaterial += cost
		}
	}

	complexity := sizeFactor.ComplexityMultiplier * scopeFactor.ComplexityMultiplier
	adjustedHours := rawHours * complexity

	laborRate := tpl.LaborRates[skilledRate].Typical
	laborCost := adjustedHours * laborRate

	materialCost := rawMaterial * qualityTier.MaterialMultiplier
	if opts.ComplexityAppliesToMaterials {
		materialCost *= complexity
	}

	return &Estimate{
		LineItems: items,
		Totals: Totals{
			RawHours:          rawHours,
			Complexity:        complexity,
			AdjustedHours:     adjustedHours,
			LaborRate:         laborRate,
			LaborCost:         laborCost,
			RawMaterialCost:   rawMaterial,
			QualityMultiplier: qualityTier.MaterialMultiplier,
			MaterialCost:      materialCost,
			TotalCost:         laborCost + materialCost,
		},
	}, nil
}

// rateFor resolves a task's hourly rate. An empty or unknown category tag
// falls back to the skilled rate instead of failing the whole estimate.
func rateFor(tpl *storage.Template, category string) float64 {
	if category == "" {
		category = skilledRate
	}
	rate, ok := tpl.LaborRates[category]
	if !ok {
		rate = tpl.LaborRates[skilledRate]
	}
	return rate.Typical
}

// Service binds a loaded template and the calculation options for the HTTP
// handlers.
type Service struct {
	tpl  *storage.Template
	opts Options
}

func NewService(tpl *storage.Template, opts Options) *Service {
	return &Service{tpl: tpl, opts: opts}
}

// Compute prices the given parameters against the bound template.
func (s *Service) Compute(p classify.Params) (*Estimate, error) {
	return Compute(s.tpl, p, s.opts)
}

// FromDescription classifies a free-form description and prices the result.
func (s *Service) FromDescription(description string) (classify.Params, *Estimate, error) {
	p := classify.Classify(description)
	est, err := Compute(s.tpl, p, s.opts)
	return p, est, err
}

// Template returns the bound template for presentation layers.
func (s *Service) Template() *storage.Template { return s.tpl }
