package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"pricekit/internal/domain/entities"
	"pricekit/internal/domain/pricing"
	"pricekit/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated      = errors.New("missing user identity")
	ErrScenarioNameRequired = errors.New("scenario name required")
	ErrScenarioNotFound     = errors.New("scenario not found")
	ErrInvalidScenarioID    = errors.New("invalid scenario id")
)

const (
	EventScenarioSaved   = "scenario-saved"
	EventScenarioDeleted = "scenario-deleted"
)

// IScenarioUseCase manages named calculator snapshots per user.
//
// Save computes the result from the submitted inputs before persisting, and
// Load recomputes from the stored inputs; a stored result is never handed
// back as-is. That keeps result == compute(inputs) everywhere a result is
// visible.

type IScenarioUseCase interface {
	Save(ctx context.Context, userID, name string, model pricing.ModelType, inputs json.RawMessage) (entities.Scenario, error)
	List(ctx context.Context, userID string) ([]entities.Scenario, error)
	Load(ctx context.Context, id string) (entities.Scenario, error)
	Delete(ctx context.Context, id string) (entities.Scenario, error)
}

type ScenarioUseCase struct {
	repo      interfaces.IScenarioRepository
	publisher interfaces.IScenarioEventPublisher
}

var _ IScenarioUseCase = (*ScenarioUseCase)(nil)

func NewScenarioUseCase(repo interfaces.IScenarioRepository, publisher interfaces.IScenarioEventPublisher) *ScenarioUseCase {
	return &ScenarioUseCase{repo: repo, publisher: publisher}
}

// Save upserts a scenario keyed (userID, name, model). Overwriting keeps the
// original ID and CreatedAt; inputs, result and SavedAt are refreshed.
func (u *ScenarioUseCase) Save(ctx context.Context, userID, name string, model pricing.ModelType, inputs json.RawMessage) (entities.Scenario, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Scenario{}, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Scenario{}, ErrScenarioNameRequired
	}
	model, err := pricing.ParseModelType(string(model))
	if err != nil {
		return entities.Scenario{}, err
	}

	// The result persisted alongside the inputs is always derived here,
	// never accepted from the caller.
	result, err := pricing.Compute(model, inputs)
	if err != nil {
		return entities.Scenario{}, err
	}

	existing, err := u.repo.FindByUserNameModel(ctx, userID, name, model)
	if err != nil {
		return entities.Scenario{}, err
	}

	now := time.Now().UTC()
	s := entities.Scenario{
		ID:        existing.ID,
		UserID:    userID,
		Name:      name,
		ModelType: model,
		CreatedAt: existing.CreatedAt,
		SavedAt:   now,
		InputsRaw: inputs,
		ResultRaw: result,
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
		s.CreatedAt = now
	}

	saved, err := u.repo.Put(ctx, s)
	if err != nil {
		return entities.Scenario{}, err
	}

	u.publish(ctx, EventScenarioSaved, saved)
	return saved, nil
}

// List returns scenario metadata for a user. Input and result payloads are
// stripped: a result is only ever shown after a Load recompute.
func (u *ScenarioUseCase) List(ctx context.Context, userID string) ([]entities.Scenario, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].InputsRaw = nil
		items[i].ResultRaw = nil
	}
	return items, nil
}

// Load fetches a scenario and recomputes its result from the stored inputs.
// The persisted result is audit data only; returning it verbatim could show
// a result inconsistent with the inputs it claims to derive from.
func (u *ScenarioUseCase) Load(ctx context.Context, id string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}
	if s.ID == "" {
		return entities.Scenario{}, ErrScenarioNotFound
	}

	result, err := pricing.Compute(s.ModelType, s.InputsRaw)
	if err != nil {
		log.Printf("[scenario][usecase] recompute failed scenario_id=%s model=%s err=%v", s.ID, s.ModelType, err)
		return entities.Scenario{}, err
	}
	s.ResultRaw = result
	return s, nil
}

func (u *ScenarioUseCase) Delete(ctx context.Context, id string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}

	deleted, err := u.repo.DeleteByID(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}
	if deleted.ID == "" {
		return entities.Scenario{}, ErrScenarioNotFound
	}

	u.publish(ctx, EventScenarioDeleted, deleted)
	return deleted, nil
}

func (u *ScenarioUseCase) publish(ctx context.Context, eventType string, s entities.Scenario) {
	if u.publisher == nil {
		log.Printf("[scenario][usecase] event publisher not configured; skipping %s scenario_id=%s", eventType, s.ID)
		return
	}
	if err := u.publisher.Publish(ctx, eventType, s); err != nil {
		log.Printf("[scenario][usecase] failed publishing %s scenario_id=%s err=%v", eventType, s.ID, err)
	}
}
