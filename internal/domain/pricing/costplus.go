package pricing

// CostPlusInputs are the ledger and markup parameters for cost-plus pricing.
type CostPlusInputs struct {
	DirectCosts        Ledger  `json:"direct_costs"`
	IndirectCosts      Ledger  `json:"indirect_costs"`
	ProductionQuantity int     `json:"production_quantity"`
	MarkupPercentage   float64 `json:"markup_percentage"`
}

// CostPlusResult contains all derived values of a cost-plus calculation.
type CostPlusResult struct {
	TotalCost           float64 `json:"total_cost"`
	UnitCost            float64 `json:"unit_cost"`
	MarkupAmount        float64 `json:"markup_amount"`
	SellingPricePerUnit float64 `json:"selling_price_per_unit"`
}

// ComputeCostPlus aggregates the direct and indirect ledgers and applies a
// markup percentage on top of the per-unit cost.
func ComputeCostPlus(in CostPlusInputs) (CostPlusResult, error) {
	if err := validLedger("direct_costs", in.DirectCosts); err != nil {
		return CostPlusResult{}, err
	}
	if err := validLedger("indirect_costs", in.IndirectCosts); err != nil {
		return CostPlusResult{}, err
	}
	if in.ProductionQuantity < 1 {
		return CostPlusResult{}, invalidInputf("production_quantity must be at least 1")
	}
	if err := validFinite("markup_percentage", in.MarkupPercentage); err != nil {
		return CostPlusResult{}, err
	}

	totalCost := in.DirectCosts.Total() + in.IndirectCosts.Total()
	unitCost := totalCost / float64(in.ProductionQuantity)
	markupAmount := unitCost * in.MarkupPercentage / 100
	return CostPlusResult{
		TotalCost:           totalCost,
		UnitCost:            unitCost,
		MarkupAmount:        markupAmount,
		SellingPricePerUnit: unitCost + markupAmount,
	}, nil
}
