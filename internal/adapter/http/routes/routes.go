package routes

import (
	"context"
	"log"
	"strconv"

	_ "avflow/docs" // This will be auto-generated
	"avflow/internal/adapter/http/handlers"
	repository2 "avflow/internal/adapter/persistence/repository"
	"avflow/internal/adapter/persistence/store"
	"avflow/internal/infrastructure/database"
	"avflow/internal/usecase"

	"github.com/gin-contrib/cors"
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
	storage := repository2.NewDynamoCollectionStorage(ddb)

	entityStore, err := store.Open(context.Background(), storage)
	if err != nil {
		log.Fatalf("Failed to open entity store: %v", err)
	}

	availabilityUseCase := usecase.NewAvailabilityUseCase(entityStore)
	budgetUseCase := usecase.NewBudgetUseCase(entityStore, availabilityUseCase)
	equipmentUseCase := usecase.NewEquipmentUseCase(entityStore)
	clientUseCase := usecase.NewClientUseCase(entityStore)
	reportUseCase := usecase.NewReportUseCase(entityStore)

	equipmentHandler := handlers.NewEquipmentHandler(equipmentUseCase, availabilityUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRentalRoutes(v1, equipmentHandler, clientHandler, budgetHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// The operator frontend is a browser SPA served from another origin.
	router.Use(cors.Default())
}
