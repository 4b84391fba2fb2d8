package pricing

// valueBasedCurvePoints is the number of scaling steps sampled for the
// three-series comparison chart.
const valueBasedCurvePoints = 10

// ValueBasedInputs parameterize a value-based price calculation.
// CustomerSegment is a display label only.
type ValueBasedInputs struct {
	PerceivedValue  float64 `json:"perceived_value"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	CompetitorPrice float64 `json:"competitor_price"`
	CustomerSegment string  `json:"customer_segment"`
}

// ValuePoint is one sample of the value-based comparison curve: competitor
// price and perceived value scaled to the same fraction of their inputs, with
// the recommended price as their midpoint.
type ValuePoint struct {
	CompetitorPrice  float64 `json:"competitor_price"`
	PerceivedValue   float64 `json:"perceived_value"`
	RecommendedPrice float64 `json:"recommended_price"`
}

// ValueBasedResult contains the recommended price, the margin against unit
// cost, and the visualization curve.
//
// ProfitMargin is nil when the recommended price is zero: the margin is
// undefined rather than a crash, and the price itself is still returned.
type ValueBasedResult struct {
	RecommendedPrice float64      `json:"recommended_price"`
	ProfitMargin     *float64     `json:"profit_margin"`
	Curve            []ValuePoint `json:"curve"`
}

// ComputeValueBased averages perceived value and competitor price into a
// recommended price and derives the percent margin over unit cost.
func ComputeValueBased(in ValueBasedInputs) (ValueBasedResult, error) {
	if err := validFinite("perceived_value", in.PerceivedValue); err != nil {
		return ValueBasedResult{}, err
	}
	if err := validFinite("cost_per_unit", in.CostPerUnit); err != nil {
		return ValueBasedResult{}, err
	}
	if err := validFinite("competitor_price", in.CompetitorPrice); err != nil {
		return ValueBasedResult{}, err
	}

	recommended := (in.PerceivedValue + in.CompetitorPrice) / 2

	var margin *float64
	if recommended != 0 {
		m := (recommended - in.CostPerUnit) / recommended * 100
		margin = &m
	}

	curve := make([]ValuePoint, 0, valueBasedCurvePoints)
	for i := 1; i <= valueBasedCurvePoints; i++ {
		frac := float64(i) / valueBasedCurvePoints
		competitor := in.CompetitorPrice * frac
		perceived := in.PerceivedValue * frac
		curve = append(curve, ValuePoint{
			CompetitorPrice:  competitor,
			PerceivedValue:   perceived,
			RecommendedPrice: (competitor + perceived) / 2,
		})
	}

	return ValueBasedResult{
		RecommendedPrice: recommended,
		ProfitMargin:     margin,
		Curve:            curve,
	}, nil
}
