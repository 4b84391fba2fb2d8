package pricing

// BundlePricingInputs are the product list and discount for bundle pricing.
type BundlePricingInputs struct {
	Products              Ledger  `json:"products"`
	BundleDiscountPercent float64 `json:"bundle_discount_percent"`
}

// BundlePricingResult contains the derived values of a bundle calculation.
type BundlePricingResult struct {
	TotalCost      float64 `json:"total_cost"`
	DiscountAmount float64 `json:"discount_amount"`
	BundlePrice    float64 `json:"bundle_price"`
}

// ComputeBundle sums the product costs and applies a single bundle-level
// discount percentage.
func ComputeBundle(in BundlePricingInputs) (BundlePricingResult, error) {
	if err := validLedger("products", in.Products); err != nil {
		return BundlePricingResult{}, err
	}
	if err := validFinite("bundle_discount_percent", in.BundleDiscountPercent); err != nil {
		return BundlePricingResult{}, err
	}
	if in.BundleDiscountPercent > 100 {
		return BundlePricingResult{}, invalidInputf("bundle_discount_percent must be between 0 and 100")
	}

	totalCost := in.Products.Total()
	discountAmount := totalCost * in.BundleDiscountPercent / 100
	return BundlePricingResult{
		TotalCost:      totalCost,
		DiscountAmount: discountAmount,
		BundlePrice:    totalCost - discountAmount,
	}, nil
}
