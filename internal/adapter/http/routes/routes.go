package routes

import (
	"log"
	_ "meopastel/docs" // This will be auto-generated
	"meopastel/internal/adapter/http/handlers"
	"meopastel/internal/adapter/persistence/memory"
	"meopastel/internal/infrastructure/distance"
	"meopastel/internal/infrastructure/messaging"
	"meopastel/internal/infrastructure/payments"
	"meopastel/internal/infrastructure/postal"
	"meopastel/internal/infrastructure/suggestions"
	"meopastel/internal/usecase"
	"meopastel/internal/usecase/interfaces"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// resetWindow is how long a completed checkout stays on screen before the
// session wipes itself for the next customer.
const resetWindow = 8 * time.Second

const defaultCompanyAddress = "Rua Marino Félix, 280 - Casa Verde - São Paulo - CEP 02515-030"

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
	sessions := memory.NewSessionStore()

	companyAddress := getenvDefault("COMPANY_ADDRESS", defaultCompanyAddress)
	geminiKey := os.Getenv("GEMINI_API_KEY")

	postalProvider := postal.NewViaCEPClient(os.Getenv("VIACEP_BASE_URL"))

	var distanceProvider interfaces.IDistanceProvider
	distanceClient, err := distance.NewGeminiDistanceClient(geminiKey, companyAddress)
	if err != nil {
		log.Printf("Gemini distance client not configured: %v", err)
	} else {
		distanceProvider = distanceClient
	}

	var suggestionProvider interfaces.ISuggestionProvider
	suggestionClient, err := suggestions.NewGeminiSuggestionClient(geminiKey)
	if err != nil {
		log.Printf("Gemini suggestion client not configured: %v", err)
	} else {
		suggestionProvider = suggestionClient
	}

	gateway := payments.NewSimulatedGateway(payments.DefaultAuthorizationDelay)
	channel := messaging.NewWhatsAppChannel(
		getenvDefault("COMPANY_WHATSAPP", messaging.DefaultCompanyNumber),
		os.Getenv("ORDER_WEBHOOK_URL"),
	)

	selectionUseCase := usecase.NewSelectionUseCase(sessions)
	cartUseCase := usecase.NewCartUseCase(sessions)
	deliveryUseCase := usecase.NewDeliveryUseCase(sessions, postalProvider, distanceProvider)
	subOrderUseCase := usecase.NewSubOrderUseCase(sessions)
	suggestionUseCase := usecase.NewSuggestionUseCase(sessions, suggestionProvider)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessions, gateway, channel, resetWindow)

	catalogHandler := handlers.NewCatalogHandler()
	selectionHandler := handlers.NewSelectionHandler(selectionUseCase, checkoutUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase, checkoutUseCase)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryUseCase, checkoutUseCase)
	subOrderHandler := handlers.NewSubOrderHandler(subOrderUseCase, checkoutUseCase)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionUseCase, checkoutUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, catalogHandler, selectionHandler, cartHandler, deliveryHandler, subOrderHandler, suggestionHandler, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
