package routes

import (
	"log"
	"strconv"

	_ "pricekit/docs" // This will be auto-generated
	"pricekit/internal/adapter/http/handlers"
	repository2 "pricekit/internal/adapter/persistence/repository"
	"pricekit/internal/infrastructure/cache"
	"pricekit/internal/infrastructure/database"
	"pricekit/internal/infrastructure/events"
	"pricekit/internal/usecase"
	"pricekit/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := cache.ConnectRedis()

	scenarioRepo := repository2.NewScenarioDynamoRepository(ddb)
	historyRepo := repository2.NewPriceHistoryRedisRepository(rdb)

	var publisher interfaces.IScenarioEventPublisher
	kafkaPublisher, err := events.NewKafkaScenarioPublisher()
	if err != nil {
		log.Printf("Scenario event publisher not configured: %v", err)
	} else {
		publisher = kafkaPublisher
	}

	pricingUseCase := usecase.NewPricingUseCase(historyRepo)
	scenarioUseCase := usecase.NewScenarioUseCase(scenarioRepo, publisher)

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	scenarioHandler := handlers.NewScenarioHandler(scenarioUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, pricingHandler)
	addScenarioRoutes(v1, scenarioHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
