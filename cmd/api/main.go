package main

import (
	_ "billed_backoffice/docs"
	"billed_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Billed Back Office API
// @version         1.0
// @description     Employee expense bills (list + two-phase submission) backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
