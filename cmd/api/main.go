package main

import (
	_ "meopastel/docs"
	"meopastel/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Meo Pastel Storefront API
// @version         1.0
// @description     Order-building storefront for the Meo Pastel shop (custom pastels, beverages, delivery and WhatsApp checkout).
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
