package entities

import (
	"encoding/json"
	"time"

	"pricekit/internal/domain/pricing"
)

// Scenario is a named snapshot of one pricing model's inputs for a given
// user, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Inputs/Result payloads:
//   - InputsRaw keeps the exact inputs JSON the result was derived from.
//   - ResultRaw keeps the result computed at save time, retained for audit
//     only. A loaded scenario is always recomputed from InputsRaw; the stored
//     result is never displayed, so inputs and displayed outputs cannot drift
//     apart.

type Scenario struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	ModelType pricing.ModelType `json:"model_type"`
	CreatedAt time.Time         `json:"created_at"`
	SavedAt   time.Time         `json:"saved_at"`

	InputsRaw json.RawMessage `json:"inputs,omitempty"`
	ResultRaw json.RawMessage `json:"result,omitempty"`
}
