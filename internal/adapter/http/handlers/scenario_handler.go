package handlers

import (
	"errors"
	"net/http"

	request "pricekit/internal/adapter/http/dto/request"
	response "pricekit/internal/adapter/http/dto/response"
	"pricekit/internal/domain/pricing"
	"pricekit/internal/usecase"
	"pricekit/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller's identity, established by an upstream
// gateway. The service trusts it; it does not authenticate.
const UserIDHeader = "X-User-ID"

var (
	errInvalidScenarioPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid scenario payload", http.StatusBadRequest)
	errUnauthenticated        = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
)

// ScenarioHandler handles HTTP requests for saved pricing scenarios.

type ScenarioHandler struct {
	usecase usecase.IScenarioUseCase
}

func NewScenarioHandler(uc usecase.IScenarioUseCase) *ScenarioHandler {
	return &ScenarioHandler{usecase: uc}
}

// SaveScenario persists a named snapshot of one model's inputs. The result
// stored with it is computed here from those inputs.
func (h *ScenarioHandler) SaveScenario(c *gin.Context) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	var payload request.ScenarioSaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScenarioPayload.HTTPStatus, errInvalidScenarioPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Save(c.Request.Context(), userID, payload.ResolveName(), pricing.ModelType(payload.ResolveModelType()), payload.Inputs)
	if err != nil {
		appErr := mapScenarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromScenario(s))
}

func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), userID)
	if err != nil {
		appErr := mapScenarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScenarios(items))
}

// LoadScenario returns a scenario with its result freshly recomputed from
// the stored inputs.
func (h *ScenarioHandler) LoadScenario(c *gin.Context) {
	s, err := h.usecase.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapScenarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScenario(s))
}

func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	s, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapScenarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScenario(s))
}

func mapScenarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrScenarioNameRequired), errors.Is(err, usecase.ErrInvalidScenarioID), errors.Is(err, pricing.ErrUnknownModel):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScenarioNotFound):
		return pkg.NewDomainErrorSimple("SCENARIO_NOT_FOUND", "Scenario not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
