package pricing

import (
	"errors"
	"testing"
)

func TestComputeTargetReturn(t *testing.T) {
	in := TargetReturnInputs{
		CostPerUnit:         5,
		DesiredROIPercent:   25,
		ExpectedSalesVolume: 100,
		FixedCosts:          200,
	}

	res, err := ComputeTargetReturn(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "sellingPrice", res.SellingPrice, 8.75)
	if res.BreakEvenVolume == nil {
		t.Fatalf("expected break-even volume")
	}
	nearlyEqual(t, "breakEvenVolume", *res.BreakEvenVolume, 200/(8.75-5))
}

func TestComputeTargetReturn_ROIProperty(t *testing.T) {
	in := TargetReturnInputs{
		CostPerUnit:         12.3,
		DesiredROIPercent:   17,
		ExpectedSalesVolume: 340,
		FixedCosts:          999.5,
	}

	res, err := ComputeTargetReturn(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	volume := float64(in.ExpectedSalesVolume)
	totalCost := in.CostPerUnit*volume + in.FixedCosts
	roi := (res.SellingPrice*volume - totalCost) / totalCost
	nearlyEqual(t, "roi", roi, in.DesiredROIPercent/100)
}

func TestComputeTargetReturn_BreakEvenOnCurve(t *testing.T) {
	// At the break-even volume, total cost equals revenue.
	in := TargetReturnInputs{
		CostPerUnit:         5,
		DesiredROIPercent:   25,
		ExpectedSalesVolume: 100,
		FixedCosts:          200,
	}

	res, err := ComputeTargetReturn(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := *res.BreakEvenVolume
	costAt := in.FixedCosts + in.CostPerUnit*v
	revenueAt := res.SellingPrice * v
	nearlyEqual(t, "cost vs revenue at break-even", costAt, revenueAt)
}

func TestComputeTargetReturn_UndefinedBreakEven(t *testing.T) {
	// Zero ROI and zero fixed costs make sellingPrice == costPerUnit.
	in := TargetReturnInputs{
		CostPerUnit:         10,
		DesiredROIPercent:   0,
		ExpectedSalesVolume: 50,
		FixedCosts:          0,
	}

	res, err := ComputeTargetReturn(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "sellingPrice", res.SellingPrice, 10)
	if res.BreakEvenVolume != nil {
		t.Fatalf("expected undefined break-even, got %v", *res.BreakEvenVolume)
	}
}

func TestComputeTargetReturn_Curve(t *testing.T) {
	in := TargetReturnInputs{
		CostPerUnit:         5,
		DesiredROIPercent:   25,
		ExpectedSalesVolume: 100,
		FixedCosts:          200,
	}

	res, err := ComputeTargetReturn(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Curve) != 20 {
		t.Fatalf("expected 20 curve points, got %d", len(res.Curve))
	}
	nearlyEqual(t, "first volume", res.Curve[0].Volume, 10)
	nearlyEqual(t, "last volume", res.Curve[19].Volume, 200)

	for i, p := range res.Curve {
		nearlyEqual(t, "point total cost", p.TotalCost, in.FixedCosts+in.CostPerUnit*p.Volume)
		nearlyEqual(t, "point revenue", p.Revenue, res.SellingPrice*p.Volume)
		if i > 0 && p.Volume <= res.Curve[i-1].Volume {
			t.Fatalf("curve volumes not increasing at %d", i)
		}
	}
}

func TestComputeTargetReturn_InvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		in   TargetReturnInputs
	}{
		{"zero volume", TargetReturnInputs{CostPerUnit: 1, ExpectedSalesVolume: 0}},
		{"negative cost", TargetReturnInputs{CostPerUnit: -1, ExpectedSalesVolume: 10}},
		{"negative roi", TargetReturnInputs{CostPerUnit: 1, DesiredROIPercent: -1, ExpectedSalesVolume: 10}},
		{"negative fixed costs", TargetReturnInputs{CostPerUnit: 1, ExpectedSalesVolume: 10, FixedCosts: -0.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeTargetReturn(tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
