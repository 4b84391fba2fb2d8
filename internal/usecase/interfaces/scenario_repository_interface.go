package interfaces

import (
	"context"

	"pricekit/internal/domain/entities"
	"pricekit/internal/domain/pricing"
)

// IScenarioRepository abstracts DynamoDB persistence for Scenario.
//
// Scenarios are keyed (user_id, name, model_type) from the caller's point of
// view: saving under an existing key overwrites. Repositories signal
// not-found with a zero-value Scenario and a nil error.

type IScenarioRepository interface {
	Put(ctx context.Context, s entities.Scenario) (entities.Scenario, error)
	GetByID(ctx context.Context, id string) (entities.Scenario, error)
	FindByUserNameModel(ctx context.Context, userID, name string, model pricing.ModelType) (entities.Scenario, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Scenario, error)
	DeleteByID(ctx context.Context, id string) (entities.Scenario, error)
}
