package interfaces

import (
	"context"

	"pricekit/internal/domain/entities"
)

// IScenarioEventPublisher abstracts the event stream notified on scenario
// writes (e.g. Kafka). Publishing is best-effort: callers log failures and
// carry on.
type IScenarioEventPublisher interface {
	Publish(ctx context.Context, eventType string, s entities.Scenario) error
}
