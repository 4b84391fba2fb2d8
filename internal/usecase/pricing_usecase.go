package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"pricekit/internal/domain/pricing"
	"pricekit/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
)

// IPricingUseCase exposes the five pricing calculators.
//
// Cost-plus, target-return, value-based and bundle are pure pass-throughs to
// the engine. Dynamic pricing is the one stateful operation: it loads the
// session's price history, computes, and stores the appended history back.

type IPricingUseCase interface {
	CostPlus(ctx context.Context, in pricing.CostPlusInputs) (pricing.CostPlusResult, error)
	TargetReturn(ctx context.Context, in pricing.TargetReturnInputs) (pricing.TargetReturnResult, error)
	ValueBased(ctx context.Context, in pricing.ValueBasedInputs) (pricing.ValueBasedResult, error)
	Bundle(ctx context.Context, in pricing.BundlePricingInputs) (pricing.BundlePricingResult, error)
	Dynamic(ctx context.Context, sessionID string, in pricing.DynamicPricingInputs) (pricing.DynamicPricingResult, error)
	History(ctx context.Context, sessionID string) ([]float64, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

type PricingUseCase struct {
	historyRepo interfaces.IPriceHistoryRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(historyRepo interfaces.IPriceHistoryRepository) *PricingUseCase {
	return &PricingUseCase{historyRepo: historyRepo}
}

func (u *PricingUseCase) CostPlus(_ context.Context, in pricing.CostPlusInputs) (pricing.CostPlusResult, error) {
	return pricing.ComputeCostPlus(in)
}

func (u *PricingUseCase) TargetReturn(_ context.Context, in pricing.TargetReturnInputs) (pricing.TargetReturnResult, error) {
	return pricing.ComputeTargetReturn(in)
}

func (u *PricingUseCase) ValueBased(_ context.Context, in pricing.ValueBasedInputs) (pricing.ValueBasedResult, error) {
	return pricing.ComputeValueBased(in)
}

func (u *PricingUseCase) Bundle(_ context.Context, in pricing.BundlePricingInputs) (pricing.BundlePricingResult, error) {
	return pricing.ComputeBundle(in)
}

// Dynamic computes a demand/supply adjusted price and appends it to the
// session history. History I/O stays out of the engine so the computation
// itself remains pure.
func (u *PricingUseCase) Dynamic(ctx context.Context, sessionID string, in pricing.DynamicPricingInputs) (pricing.DynamicPricingResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return pricing.DynamicPricingResult{}, ErrInvalidSessionID
	}

	history, err := u.historyRepo.Get(ctx, sessionID)
	if err != nil {
		return pricing.DynamicPricingResult{}, err
	}

	res, err := pricing.ComputeDynamic(in, history)
	if err != nil {
		return pricing.DynamicPricingResult{}, err
	}

	if err := u.historyRepo.Save(ctx, sessionID, res.UpdatedHistory); err != nil {
		log.Printf("[pricing][usecase] failed saving history session_id=%s err=%v", sessionID, err)
		return pricing.DynamicPricingResult{}, err
	}
	return res, nil
}

func (u *PricingUseCase) History(ctx context.Context, sessionID string) ([]float64, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return u.historyRepo.Get(ctx, sessionID)
}

func (u *PricingUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return u.historyRepo.Clear(ctx, sessionID)
}
