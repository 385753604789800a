package main

import (
	_ "garantias_service/docs"
	"garantias_service/internal/adapter/http/routes"
	"garantias_service/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Garantias Service API
// @version         1.0
// @description     Air conditioner warranty and invoicing service backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger.Setup()
	routes.Run()
}
