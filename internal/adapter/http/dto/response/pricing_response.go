package response

import (
	"fmt"
	"os"

	"pricekit/internal/domain/pricing"
	"pricekit/pkg"
)

// currencySymbol resolves the display symbol. It is a label only; values are
// never converted.
func currencySymbol() string {
	if v := os.Getenv("CURRENCY_SYMBOL"); v != "" {
		return v
	}
	return pkg.DefaultCurrencySymbol
}

func display(amount float64) string {
	return pkg.FormatAmount(currencySymbol(), amount)
}

type CostPlusResponse struct {
	TotalCost           float64 `json:"total_cost"`
	UnitCost            float64 `json:"unit_cost"`
	MarkupAmount        float64 `json:"markup_amount"`
	SellingPricePerUnit float64 `json:"selling_price_per_unit"`
	SellingPriceDisplay string  `json:"selling_price_display"`
}

func FromCostPlusResult(res pricing.CostPlusResult) CostPlusResponse {
	return CostPlusResponse{
		TotalCost:           res.TotalCost,
		UnitCost:            res.UnitCost,
		MarkupAmount:        res.MarkupAmount,
		SellingPricePerUnit: res.SellingPricePerUnit,
		SellingPriceDisplay: display(res.SellingPricePerUnit),
	}
}

type TargetReturnResponse struct {
	SellingPrice        float64               `json:"selling_price"`
	SellingPriceDisplay string                `json:"selling_price_display"`
	BreakEvenVolume     *float64              `json:"break_even_volume"`
	BreakEvenDisplay    string                `json:"break_even_display"`
	Curve               []pricing.VolumePoint `json:"curve"`
}

func FromTargetReturnResult(res pricing.TargetReturnResult) TargetReturnResponse {
	breakEvenDisplay := "undefined"
	if res.BreakEvenVolume != nil {
		breakEvenDisplay = fmt.Sprintf("%.2f", *res.BreakEvenVolume)
	}
	return TargetReturnResponse{
		SellingPrice:        res.SellingPrice,
		SellingPriceDisplay: display(res.SellingPrice),
		BreakEvenVolume:     res.BreakEvenVolume,
		BreakEvenDisplay:    breakEvenDisplay,
		Curve:               res.Curve,
	}
}

type ValueBasedResponse struct {
	RecommendedPrice        float64              `json:"recommended_price"`
	RecommendedPriceDisplay string               `json:"recommended_price_display"`
	ProfitMargin            *float64             `json:"profit_margin"`
	ProfitMarginDisplay     string               `json:"profit_margin_display"`
	Curve                   []pricing.ValuePoint `json:"curve"`
}

func FromValueBasedResult(res pricing.ValueBasedResult) ValueBasedResponse {
	marginDisplay := "undefined"
	if res.ProfitMargin != nil {
		marginDisplay = fmt.Sprintf("%.2f%%", *res.ProfitMargin)
	}
	return ValueBasedResponse{
		RecommendedPrice:        res.RecommendedPrice,
		RecommendedPriceDisplay: display(res.RecommendedPrice),
		ProfitMargin:            res.ProfitMargin,
		ProfitMarginDisplay:     marginDisplay,
		Curve:                   res.Curve,
	}
}

type DynamicPricingResponse struct {
	SessionID           string    `json:"session_id"`
	DynamicPrice        float64   `json:"dynamic_price"`
	DynamicPriceDisplay string    `json:"dynamic_price_display"`
	History             []float64 `json:"history"`
}

func FromDynamicPricingResult(sessionID string, res pricing.DynamicPricingResult) DynamicPricingResponse {
	return DynamicPricingResponse{
		SessionID:           sessionID,
		DynamicPrice:        res.DynamicPrice,
		DynamicPriceDisplay: display(res.DynamicPrice),
		History:             res.UpdatedHistory,
	}
}

type PriceHistoryResponse struct {
	SessionID string    `json:"session_id"`
	History   []float64 `json:"history"`
}

type BundlePricingResponse struct {
	TotalCost          float64 `json:"total_cost"`
	DiscountAmount     float64 `json:"discount_amount"`
	BundlePrice        float64 `json:"bundle_price"`
	BundlePriceDisplay string  `json:"bundle_price_display"`
}

func FromBundlePricingResult(res pricing.BundlePricingResult) BundlePricingResponse {
	return BundlePricingResponse{
		TotalCost:          res.TotalCost,
		DiscountAmount:     res.DiscountAmount,
		BundlePrice:        res.BundlePrice,
		BundlePriceDisplay: display(res.BundlePrice),
	}
}
