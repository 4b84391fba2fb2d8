package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pricekit/internal/domain/entities"
	"pricekit/internal/domain/pricing"
	mock_interfaces "pricekit/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var bundleInputs = json.RawMessage(`{"products":[{"name":"A","cost":50},{"name":"B","cost":30}],"bundle_discount_percent":10}`)

func TestScenarioUseCase_Save(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "  ", "q4", pricing.ModelBundle, bundleInputs)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "user-1", "  ", pricing.ModelBundle, bundleInputs)
		if !errors.Is(err, ErrScenarioNameRequired) {
			t.Fatalf("expected ErrScenarioNameRequired, got %v", err)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "user-1", "q4", "conjoint", bundleInputs)
		if !errors.Is(err, pricing.ErrUnknownModel) {
			t.Fatalf("expected ErrUnknownModel, got %v", err)
		}
	})

	t.Run("invalid inputs rejected before persistence", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "user-1", "q4", pricing.ModelBundle, json.RawMessage(`{"bundle_discount_percent":150}`))
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		pub := mock_interfaces.NewMockIScenarioEventPublisher(ctrl)
		uc := NewScenarioUseCase(repo, pub)

		repo.EXPECT().FindByUserNameModel(gomock.Any(), "user-1", "q4", pricing.ModelBundle).Return(entities.Scenario{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Scenario{})).DoAndReturn(
			func(_ context.Context, s entities.Scenario) (entities.Scenario, error) {
				if s.ID == "" || s.UserID != "user-1" || s.Name != "q4" || s.ModelType != pricing.ModelBundle {
					t.Fatalf("unexpected scenario: %+v", s)
				}
				if s.CreatedAt.IsZero() || s.SavedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				var res pricing.BundlePricingResult
				if err := json.Unmarshal(s.ResultRaw, &res); err != nil {
					t.Fatalf("result not decodable: %v", err)
				}
				if res.BundlePrice != 72 {
					t.Fatalf("expected computed bundle price 72, got %v", res.BundlePrice)
				}
				return s, nil
			},
		)
		pub.EXPECT().Publish(gomock.Any(), EventScenarioSaved, gomock.Any()).Return(nil)

		s, err := uc.Save(context.Background(), " user-1 ", " q4 ", pricing.ModelBundle, bundleInputs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("overwrite keeps id and created_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		existing := entities.Scenario{ID: "sc-1", UserID: "user-1", Name: "q4", ModelType: pricing.ModelBundle, CreatedAt: created}
		repo.EXPECT().FindByUserNameModel(gomock.Any(), "user-1", "q4", pricing.ModelBundle).Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Scenario{})).DoAndReturn(
			func(_ context.Context, s entities.Scenario) (entities.Scenario, error) {
				if s.ID != "sc-1" {
					t.Fatalf("expected id kept, got %s", s.ID)
				}
				if !s.CreatedAt.Equal(created) {
					t.Fatalf("expected created_at kept, got %v", s.CreatedAt)
				}
				if !s.SavedAt.After(created) {
					t.Fatalf("expected saved_at refreshed")
				}
				return s, nil
			},
		)

		if _, err := uc.Save(context.Background(), "user-1", "q4", pricing.ModelBundle, bundleInputs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("publish failure does not fail save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		pub := mock_interfaces.NewMockIScenarioEventPublisher(ctrl)
		uc := NewScenarioUseCase(repo, pub)

		repo.EXPECT().FindByUserNameModel(gomock.Any(), "user-1", "q4", pricing.ModelBundle).Return(entities.Scenario{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Scenario) (entities.Scenario, error) { return s, nil },
		)
		pub.EXPECT().Publish(gomock.Any(), EventScenarioSaved, gomock.Any()).Return(errors.New("kafka down"))

		if _, err := uc.Save(context.Background(), "user-1", "q4", pricing.ModelBundle, bundleInputs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		repo.EXPECT().FindByUserNameModel(gomock.Any(), "user-1", "q4", pricing.ModelBundle).Return(entities.Scenario{}, errors.New("db"))

		_, err := uc.Save(context.Background(), "user-1", "q4", pricing.ModelBundle, bundleInputs)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestScenarioUseCase_List(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.List(context.Background(), "")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("strips payloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Scenario{
			{ID: "sc-1", Name: "q4", InputsRaw: bundleInputs, ResultRaw: json.RawMessage(`{"bundle_price":72}`)},
		}, nil)

		items, err := uc.List(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].InputsRaw != nil || items[0].ResultRaw != nil {
			t.Fatalf("expected payloads stripped: %+v", items[0])
		}
	})
}

func TestScenarioUseCase_Load(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.Load(context.Background(), " ")
		if !errors.Is(err, ErrInvalidScenarioID) {
			t.Fatalf("expected ErrInvalidScenarioID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.Scenario{}, nil)

		_, err := uc.Load(context.Background(), "sc-1")
		if !errors.Is(err, ErrScenarioNotFound) {
			t.Fatalf("expected ErrScenarioNotFound, got %v", err)
		}
	})

	t.Run("recomputes from stored inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		// The stored result is stale on purpose; Load must not echo it.
		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.Scenario{
			ID:        "sc-1",
			ModelType: pricing.ModelBundle,
			InputsRaw: bundleInputs,
			ResultRaw: json.RawMessage(`{"total_cost":1,"discount_amount":1,"bundle_price":1}`),
		}, nil)

		s, err := uc.Load(context.Background(), " sc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var res pricing.BundlePricingResult
		if err := json.Unmarshal(s.ResultRaw, &res); err != nil {
			t.Fatalf("result not decodable: %v", err)
		}
		if res.BundlePrice != 72 {
			t.Fatalf("expected recomputed bundle price 72, got %v", res.BundlePrice)
		}
	})

	t.Run("corrupt stored inputs surface as error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.Scenario{
			ID:        "sc-1",
			ModelType: pricing.ModelBundle,
			InputsRaw: json.RawMessage(`{"bundle_discount_percent":"ten"}`),
		}, nil)

		_, err := uc.Load(context.Background(), "sc-1")
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestScenarioUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewScenarioUseCase(nil, nil)
		_, err := uc.Delete(context.Background(), "")
		if !errors.Is(err, ErrInvalidScenarioID) {
			t.Fatalf("expected ErrInvalidScenarioID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		uc := NewScenarioUseCase(repo, nil)

		repo.EXPECT().DeleteByID(gomock.Any(), "sc-1").Return(entities.Scenario{}, nil)

		_, err := uc.Delete(context.Background(), "sc-1")
		if !errors.Is(err, ErrScenarioNotFound) {
			t.Fatalf("expected ErrScenarioNotFound, got %v", err)
		}
	})

	t.Run("success publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIScenarioRepository(ctrl)
		pub := mock_interfaces.NewMockIScenarioEventPublisher(ctrl)
		uc := NewScenarioUseCase(repo, pub)

		deleted := entities.Scenario{ID: "sc-1", UserID: "user-1", Name: "q4"}
		repo.EXPECT().DeleteByID(gomock.Any(), "sc-1").Return(deleted, nil)
		pub.EXPECT().Publish(gomock.Any(), EventScenarioDeleted, deleted).Return(nil)

		s, err := uc.Delete(context.Background(), " sc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "sc-1" {
			t.Fatalf("unexpected result: %+v", s)
		}
	})
}
