package routes

import (
	"os"
	"strconv"
	"strings"

	_ "garantias_service/docs" // swag-generated API docs
	"garantias_service/internal/adapter/http/handlers"
	"garantias_service/internal/adapter/persistence/repository"
	"garantias_service/internal/infrastructure/database"
	"garantias_service/internal/infrastructure/payments"
	"garantias_service/internal/usecase"
	"garantias_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
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

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	warrantyRepo := repository.NewWarrantyDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)

	warrantyNumbers := numberGenerator(ddb, "GAR", warrantyRepo)
	invoiceNumbers := numberGenerator(ddb, "FAC", invoiceRepo)

	warrantyUseCase := usecase.NewWarrantyUseCase(warrantyRepo, warrantyNumbers)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, invoiceNumbers)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewInvoicePaymentUseCase(invoiceRepo, paymentGateway)

	warrantyHandler := handlers.NewWarrantyHandler(warrantyUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, paymentUseCase)
	dashboardHandler := handlers.NewDashboardHandler(warrantyUseCase, invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWarrantyRoutes(v1, warrantyHandler)
	addInvoiceRoutes(v1, invoiceHandler)
	addDashboardRoutes(v1, dashboardHandler)
}

// numberGenerator picks the sequence strategy: SEQUENCE_MODE=atomic draws
// from the DynamoDB counter table, anything else reads the collection's
// current maximum (which tolerates numbers written by older tooling).
func numberGenerator(ddb *dynamodb.Client, prefix string, source interfaces.ISequenceSource) interfaces.INumberGenerator {
	if isAtomicSequenceMode() {
		return repository.NewCounterNumberGenerator(ddb, prefix)
	}
	return usecase.NewScanNumberGenerator(source, prefix)
}

func isAtomicSequenceMode() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("SEQUENCE_MODE")), "atomic")
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
