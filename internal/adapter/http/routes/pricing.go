package routes

import (
	"pricekit/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing   = "/pricing"
	PathScenarios = "/scenarios"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/cost-plus", pricingHandler.CostPlus)
		pricing.POST("/target-return", pricingHandler.TargetReturn)
		pricing.POST("/value-based", pricingHandler.ValueBased)
		pricing.POST("/dynamic", pricingHandler.Dynamic)
		pricing.POST("/bundle", pricingHandler.Bundle)
		pricing.GET("/dynamic/history/:session_id", pricingHandler.GetHistory)
		pricing.DELETE("/dynamic/history/:session_id", pricingHandler.ClearHistory)
	}
}

func addScenarioRoutes(rg *gin.RouterGroup, scenarioHandler *handlers.ScenarioHandler) {
	scenarios := rg.Group(PathScenarios)
	{
		scenarios.POST("", scenarioHandler.SaveScenario)
		scenarios.GET("", scenarioHandler.ListScenarios)
		scenarios.GET("/:id", scenarioHandler.LoadScenario)
		scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	}
}
