package response

import (
	"encoding/json"
	"time"

	"pricekit/internal/domain/entities"
)

type ScenarioResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	ModelType string          `json:"model_type"`
	CreatedAt time.Time       `json:"created_at"`
	SavedAt   time.Time       `json:"saved_at"`
	Inputs    json.RawMessage `json:"inputs,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
}

func FromScenario(s entities.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		ModelType: string(s.ModelType),
		CreatedAt: s.CreatedAt,
		SavedAt:   s.SavedAt,
		Inputs:    s.InputsRaw,
		Result:    s.ResultRaw,
	}
}

func FromScenarios(items []entities.Scenario) []ScenarioResponse {
	out := make([]ScenarioResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromScenario(s))
	}
	return out
}
