package pricing

import "strings"

// Level grades market demand or supply pressure.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Fixed multiplier tables applied to the base price. Note the supply
// direction: Low supply means scarcity, which raises the price, so Low
// carries the highest factor. Do not invert.
var (
	demandFactor = map[Level]float64{
		LevelHigh:   1.5,
		LevelMedium: 1.0,
		LevelLow:    0.8,
	}
	supplyFactor = map[Level]float64{
		LevelHigh:   0.9,
		LevelMedium: 1.0,
		LevelLow:    1.3,
	}
)

// ParseLevel normalizes a level label, accepting any casing.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return LevelHigh, nil
	case "medium":
		return LevelMedium, nil
	case "low":
		return LevelLow, nil
	}
	return "", invalidInputf("level must be High, Medium or Low, got %q", s)
}

// DynamicPricingInputs parameterize a demand/supply adjusted price.
type DynamicPricingInputs struct {
	BasePrice   float64 `json:"base_price"`
	DemandLevel Level   `json:"demand_level"`
	SupplyLevel Level   `json:"supply_level"`
}

// DynamicPricingResult contains the adjusted price and the session history
// with the new price appended. History is an ordered log of every price
// computed in the session, kept purely for trend visualization.
type DynamicPricingResult struct {
	DynamicPrice   float64   `json:"dynamic_price"`
	UpdatedHistory []float64 `json:"updated_history"`
}

// ComputeDynamic applies the demand and supply multipliers to the base price
// and appends the result to the caller-owned history. The history is an
// explicit parameter so the function stays pure; a fresh slice is returned
// rather than mutating the input.
func ComputeDynamic(in DynamicPricingInputs, history []float64) (DynamicPricingResult, error) {
	if err := validFinite("base_price", in.BasePrice); err != nil {
		return DynamicPricingResult{}, err
	}
	demand, err := ParseLevel(string(in.DemandLevel))
	if err != nil {
		return DynamicPricingResult{}, invalidInputf("demand_level must be High, Medium or Low, got %q", in.DemandLevel)
	}
	supply, err := ParseLevel(string(in.SupplyLevel))
	if err != nil {
		return DynamicPricingResult{}, invalidInputf("supply_level must be High, Medium or Low, got %q", in.SupplyLevel)
	}

	price := in.BasePrice * demandFactor[demand] * supplyFactor[supply]

	updated := make([]float64, 0, len(history)+1)
	updated = append(updated, history...)
	updated = append(updated, price)

	return DynamicPricingResult{
		DynamicPrice:   price,
		UpdatedHistory: updated,
	}, nil
}
