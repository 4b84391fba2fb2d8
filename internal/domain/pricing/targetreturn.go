package pricing

// targetReturnCurvePoints is the number of samples generated for the
// cost/revenue comparison chart.
const targetReturnCurvePoints = 20

// TargetReturnInputs parameterize a target-return (ROI) price calculation.
type TargetReturnInputs struct {
	CostPerUnit         float64 `json:"cost_per_unit"`
	DesiredROIPercent   float64 `json:"desired_roi_percent"`
	ExpectedSalesVolume int     `json:"expected_sales_volume"`
	FixedCosts          float64 `json:"fixed_costs"`
}

// VolumePoint is one sample of the cost/revenue curve at a given volume.
// The curve exists purely for chart rendering.
type VolumePoint struct {
	Volume    float64 `json:"volume"`
	TotalCost float64 `json:"total_cost"`
	Revenue   float64 `json:"revenue"`
}

// TargetReturnResult contains the selling price that yields the desired
// return, the break-even volume, and the visualization curve.
//
// BreakEvenVolume is nil when the selling price equals the unit cost: the
// break-even point is undefined (division by zero) while the selling price
// itself is still a valid result.
type TargetReturnResult struct {
	SellingPrice    float64       `json:"selling_price"`
	BreakEvenVolume *float64      `json:"break_even_volume"`
	Curve           []VolumePoint `json:"curve"`
}

// ComputeTargetReturn prices a product so that selling the expected volume
// returns the desired ROI over total cost, and derives the break-even volume.
func ComputeTargetReturn(in TargetReturnInputs) (TargetReturnResult, error) {
	if err := validFinite("cost_per_unit", in.CostPerUnit); err != nil {
		return TargetReturnResult{}, err
	}
	if err := validFinite("desired_roi_percent", in.DesiredROIPercent); err != nil {
		return TargetReturnResult{}, err
	}
	if in.ExpectedSalesVolume < 1 {
		return TargetReturnResult{}, invalidInputf("expected_sales_volume must be at least 1")
	}
	if err := validFinite("fixed_costs", in.FixedCosts); err != nil {
		return TargetReturnResult{}, err
	}

	volume := float64(in.ExpectedSalesVolume)
	totalCost := in.CostPerUnit*volume + in.FixedCosts
	targetProfit := totalCost * in.DesiredROIPercent / 100
	sellingPrice := (totalCost + targetProfit) / volume

	var breakEven *float64
	if sellingPrice != in.CostPerUnit {
		v := in.FixedCosts / (sellingPrice - in.CostPerUnit)
		breakEven = &v
	}

	return TargetReturnResult{
		SellingPrice:    sellingPrice,
		BreakEvenVolume: breakEven,
		Curve:           targetReturnCurve(in, sellingPrice),
	}, nil
}

// targetReturnCurve samples total cost and revenue at evenly spaced volumes
// from a tenth of the expected volume up to twice the expected volume.
func targetReturnCurve(in TargetReturnInputs, sellingPrice float64) []VolumePoint {
	volume := float64(in.ExpectedSalesVolume)
	start := volume / 10
	end := 2 * volume
	step := (end - start) / float64(targetReturnCurvePoints-1)

	curve := make([]VolumePoint, 0, targetReturnCurvePoints)
	for i := 0; i < targetReturnCurvePoints; i++ {
		v := start + step*float64(i)
		curve = append(curve, VolumePoint{
			Volume:    v,
			TotalCost: in.FixedCosts + in.CostPerUnit*v,
			Revenue:   sellingPrice * v,
		})
	}
	return curve
}
