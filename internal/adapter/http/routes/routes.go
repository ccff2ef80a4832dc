package routes

import (
	"log"
	"strconv"

	_ "billed_backoffice/docs" // swagger documentation, generated by swag
	"billed_backoffice/internal/adapter/http/handlers"
	repository2 "billed_backoffice/internal/adapter/persistence/repository"
	"billed_backoffice/internal/infrastructure/database"
	"billed_backoffice/internal/infrastructure/storage"
	"billed_backoffice/internal/usecase"

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
	s3c := database.ConnectS3()

	billRepo := repository2.NewBillDynamoRepository(ddb)
	attachments := storage.NewS3AttachmentStorage(s3c)

	listUseCase := usecase.NewBillListUseCase(billRepo)
	submissionUseCase := usecase.NewBillSubmissionUseCase(billRepo, attachments)

	billHandler := handlers.NewBillHandler(listUseCase, submissionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillRoutes(v1, billHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
