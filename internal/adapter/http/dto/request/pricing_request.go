package request

import (
	"strings"

	"pricekit/internal/domain/pricing"
)

type CostItemRequest struct {
	Name string  `json:"name" binding:"required"`
	Cost float64 `json:"cost"`
}

func toLedger(items []CostItemRequest) pricing.Ledger {
	ledger := make(pricing.Ledger, 0, len(items))
	for _, it := range items {
		ledger.Add(pricing.CostItem{Name: strings.TrimSpace(it.Name), Cost: it.Cost})
	}
	return ledger
}

// CostPlusRequest is the form payload for a cost-plus calculation.
type CostPlusRequest struct {
	DirectCosts        []CostItemRequest `json:"direct_costs"`
	IndirectCosts      []CostItemRequest `json:"indirect_costs"`
	ProductionQuantity int               `json:"production_quantity" binding:"required"`
	MarkupPercentage   float64           `json:"markup_percentage"`
}

func (r CostPlusRequest) ToInputs() pricing.CostPlusInputs {
	return pricing.CostPlusInputs{
		DirectCosts:        toLedger(r.DirectCosts),
		IndirectCosts:      toLedger(r.IndirectCosts),
		ProductionQuantity: r.ProductionQuantity,
		MarkupPercentage:   r.MarkupPercentage,
	}
}

// TargetReturnRequest is the form payload for a target-return calculation.
type TargetReturnRequest struct {
	CostPerUnit         float64 `json:"cost_per_unit"`
	DesiredROIPercent   float64 `json:"desired_roi_percent"`
	ExpectedSalesVolume int     `json:"expected_sales_volume" binding:"required"`
	FixedCosts          float64 `json:"fixed_costs"`
}

func (r TargetReturnRequest) ToInputs() pricing.TargetReturnInputs {
	return pricing.TargetReturnInputs{
		CostPerUnit:         r.CostPerUnit,
		DesiredROIPercent:   r.DesiredROIPercent,
		ExpectedSalesVolume: r.ExpectedSalesVolume,
		FixedCosts:          r.FixedCosts,
	}
}

// ValueBasedRequest is the form payload for a value-based calculation.
type ValueBasedRequest struct {
	PerceivedValue  float64 `json:"perceived_value"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	CompetitorPrice float64 `json:"competitor_price"`
	CustomerSegment string  `json:"customer_segment"`
}

func (r ValueBasedRequest) ToInputs() pricing.ValueBasedInputs {
	return pricing.ValueBasedInputs{
		PerceivedValue:  r.PerceivedValue,
		CostPerUnit:     r.CostPerUnit,
		CompetitorPrice: r.CompetitorPrice,
		CustomerSegment: strings.TrimSpace(r.CustomerSegment),
	}
}

// DynamicPricingRequest is the form payload for a dynamic price calculation.
// SessionID names the caller's session so the price history accumulates
// across calls.
type DynamicPricingRequest struct {
	SessionID   string  `json:"session_id" binding:"required"`
	BasePrice   float64 `json:"base_price"`
	DemandLevel string  `json:"demand_level" binding:"required"`
	SupplyLevel string  `json:"supply_level" binding:"required"`
}

func (r DynamicPricingRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func (r DynamicPricingRequest) ToInputs() pricing.DynamicPricingInputs {
	return pricing.DynamicPricingInputs{
		BasePrice:   r.BasePrice,
		DemandLevel: pricing.Level(strings.TrimSpace(r.DemandLevel)),
		SupplyLevel: pricing.Level(strings.TrimSpace(r.SupplyLevel)),
	}
}

// BundlePricingRequest is the form payload for a bundle calculation.
type BundlePricingRequest struct {
	Products              []CostItemRequest `json:"products"`
	BundleDiscountPercent float64           `json:"bundle_discount_percent"`
}

func (r BundlePricingRequest) ToInputs() pricing.BundlePricingInputs {
	return pricing.BundlePricingInputs{
		Products:              toLedger(r.Products),
		BundleDiscountPercent: r.BundleDiscountPercent,
	}
}
