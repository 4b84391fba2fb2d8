package main

import (
	_ "pricekit/docs"
	"pricekit/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pricing Model Engine API
// @version         1.0
// @description     Pricing calculators (cost-plus, target-return, value-based, dynamic, bundle) with saved scenarios backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller identity established by the upstream gateway.

func main() {
	routes.Run()
}
