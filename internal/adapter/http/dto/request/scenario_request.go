package request

import (
	"encoding/json"
	"strings"
)

// ScenarioSaveRequest is the payload for persisting a named calculator
// snapshot. Inputs are kept raw; the server decodes them per model type and
// computes the result itself.
type ScenarioSaveRequest struct {
	Name      string          `json:"name" binding:"required"`
	ModelType string          `json:"model_type" binding:"required"`
	Inputs    json.RawMessage `json:"inputs" binding:"required"`
}

func (r ScenarioSaveRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r ScenarioSaveRequest) ResolveModelType() string {
	return strings.TrimSpace(r.ModelType)
}
