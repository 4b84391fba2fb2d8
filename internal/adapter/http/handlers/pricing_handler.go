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

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler handles HTTP requests for the five pricing calculators and
// the dynamic-pricing session history.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) CostPlus(c *gin.Context) {
	var payload request.CostPlusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CostPlus(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostPlusResult(res))
}

func (h *PricingHandler) TargetReturn(c *gin.Context) {
	var payload request.TargetReturnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.TargetReturn(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTargetReturnResult(res))
}

func (h *PricingHandler) ValueBased(c *gin.Context) {
	var payload request.ValueBasedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ValueBased(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromValueBasedResult(res))
}

// Dynamic computes a demand/supply adjusted price for the caller's session
// and returns the appended price history along with the price.
func (h *PricingHandler) Dynamic(c *gin.Context) {
	var payload request.DynamicPricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	sessionID := payload.ResolveSessionID()
	res, err := h.usecase.Dynamic(c.Request.Context(), sessionID, payload.ToInputs())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDynamicPricingResult(sessionID, res))
}

func (h *PricingHandler) Bundle(c *gin.Context) {
	var payload request.BundlePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Bundle(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBundlePricingResult(res))
}

func (h *PricingHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("session_id")

	history, err := h.usecase.History(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PriceHistoryResponse{SessionID: sessionID, History: history})
}

func (h *PricingHandler) ClearHistory(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.usecase.ClearHistory(c.Request.Context(), sessionID); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
