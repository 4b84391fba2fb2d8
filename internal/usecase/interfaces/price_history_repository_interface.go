package interfaces

import "context"

// IPriceHistoryRepository stores the dynamic-pricing session history: the
// ordered log of every price computed in a session, kept for trend charts.
// Get returns an empty history for unknown sessions.
type IPriceHistoryRepository interface {
	Get(ctx context.Context, sessionID string) ([]float64, error)
	Save(ctx context.Context, sessionID string, history []float64) error
	Clear(ctx context.Context, sessionID string) error
}
