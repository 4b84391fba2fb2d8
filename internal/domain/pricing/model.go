package pricing

import (
	"encoding/json"
	"errors"
	"strings"
)

// ModelType identifies one of the five pricing calculators.
type ModelType string

const (
	ModelCostPlus     ModelType = "cost_plus"
	ModelTargetReturn ModelType = "target_return"
	ModelValueBased   ModelType = "value_based"
	ModelDynamic      ModelType = "dynamic"
	ModelBundle       ModelType = "bundle"
)

// ErrUnknownModel is returned when a model type label does not match any
// calculator.
var ErrUnknownModel = errors.New("unknown pricing model")

// ParseModelType normalizes a model type label.
func ParseModelType(s string) (ModelType, error) {
	switch ModelType(strings.ToLower(strings.TrimSpace(s))) {
	case ModelCostPlus:
		return ModelCostPlus, nil
	case ModelTargetReturn:
		return ModelTargetReturn, nil
	case ModelValueBased:
		return ModelValueBased, nil
	case ModelDynamic:
		return ModelDynamic, nil
	case ModelBundle:
		return ModelBundle, nil
	}
	return "", ErrUnknownModel
}

// Compute decodes raw JSON inputs for the given model and runs the matching
// calculator, returning the marshaled result. This is the single generic path
// used by scenario persistence: results are always derived from inputs here,
// never accepted from elsewhere.
//
// For the dynamic model the computation starts from an empty history; session
// histories live with the session, not with a saved scenario.
func Compute(model ModelType, inputs json.RawMessage) (json.RawMessage, error) {
	result, err := computeAny(model, inputs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

func computeAny(model ModelType, inputs json.RawMessage) (any, error) {
	switch model {
	case ModelCostPlus:
		var in CostPlusInputs
		if err := json.Unmarshal(inputs, &in); err != nil {
			return nil, invalidInputf("malformed cost_plus inputs: %v", err)
		}
		return ComputeCostPlus(in)
	case ModelTargetReturn:
		var in TargetReturnInputs
		if err := json.Unmarshal(inputs, &in); err != nil {
			return nil, invalidInputf("malformed target_return inputs: %v", err)
		}
		return ComputeTargetReturn(in)
	case ModelValueBased:
		var in ValueBasedInputs
		if err := json.Unmarshal(inputs, &in); err != nil {
			return nil, invalidInputf("malformed value_based inputs: %v", err)
		}
		return ComputeValueBased(in)
	case ModelDynamic:
		var in DynamicPricingInputs
		if err := json.Unmarshal(inputs, &in); err != nil {
			return nil, invalidInputf("malformed dynamic inputs: %v", err)
		}
		return ComputeDynamic(in, nil)
	case ModelBundle:
		var in BundlePricingInputs
		if err := json.Unmarshal(inputs, &in); err != nil {
			return nil, invalidInputf("malformed bundle inputs: %v", err)
		}
		return ComputeBundle(in)
	}
	return nil, ErrUnknownModel
}
