package storage

import (
	"encoding/json"
	"fmt"
)

// Template is one trade-library document. Loaded once, never mutated.
type Template struct {
	JobID         string                 `json:"job_id"`
	TradeCategory string                 `json:"trade_category"`
	JobName       string                 `json:"job_name"`
	Description   string                 `json:"description"`
	Phases        []Phase                `json:"phases"`
	LaborRates    map[string]LaborRate   `json:"labor_rates"`
	SizingFactors SizingFactors          `json:"sizing_factors"`
	QualityTiers  map[string]QualityTier `json:"quality_tiers"`
	Complications []Complication         `json:"common_complications,omitempty"`
}

type Phase struct {
	PhaseID   string     `json:"phase_id"`
	PhaseName string     `json:"phase_name"`
	Sequence  int        `json:"sequence"`
	Tasks     []Task     `json:"tasks"`
	Materials []Material `json:"materials"`
}

type Task struct {
	Task         string  `json:"task"`
	LaborHours   float64 `json:"labor_hours"`
	RateCategory string  `json:"hourly_rate_category"`
}

type Material struct {
	Item        string  `json:"item"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost_base"`
	WasteFactor float64 `json:"waste_factor"`
}

type LaborRate struct {
	Min     float64 `json:"min"`
	Typical float64 `json:"typical"`
	Max     float64 `json:"max"`
}

type SizingFactors struct {
	KitchenSize     map[string]SizingFactor `json:"kitchen_size"`
	RenovationScope map[string]SizingFactor `json:"renovation_scope"`
}

type SizingFactor struct {
	SqftRange            string      `json:"sqft_range,omitempty"`
	ComplexityMultiplier float64     `json:"complexity_multiplier"`
	PhasesIncluded       PhaseFilter `json:"phases_included,omitempty"`
}

type QualityTier struct {
	MaterialMultiplier float64 `json:"material_multiplier"`
	Description        string  `json:"description,omitempty"`
}

type Complication struct {
	Issue       string  `json:"issue"`
	Probability float64 `json:"probability"`
	CostImpact  string  `json:"cost_impact"`
}

// PhaseFilter is the JSON union behind phases_included: either the string
// "all" or an explicit list of phase ids. The zero value means "all" so
// scopes without the key include every phase.
type PhaseFilter struct {
	IDs []string
}

func (f PhaseFilter) All() bool { return f.IDs == nil }

func (f PhaseFilter) Contains(phaseID string) bool {
	if f.All() {
		return true
	}
	for _, id := range f.IDs {
		if id == phaseID {
			return true
		}
	}
	return false
}

func (f *PhaseFilter) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "all" {
			return fmt.Errorf("phases_included: unknown value %q", s)
		}
		f.IDs = nil
		return nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("phases_included: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	f.IDs = ids
	return nil
}

func (f PhaseFilter) MarshalJSON() ([]byte, error) {
	if f.All() {
		return json.Marshal("all")
	}
	return json.Marshal(f.IDs)
}
