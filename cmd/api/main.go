package main

import (
	_ "beautytag/docs"
	"beautytag/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BeautyTag Console API
// @version         1.0
// @description     Admin console for the BeautyTag marketplace (services, forms, plans, check-ins, intake) backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
