package routes

import (
	"log"
	"os"
	"strconv"

	_ "beautytag/docs" // This will be auto-generated
	"beautytag/internal/adapter/http/handlers"
	repository2 "beautytag/internal/adapter/persistence/repository"
	"beautytag/internal/infrastructure/database"
	"beautytag/internal/infrastructure/payments"
	"beautytag/internal/usecase"
	"beautytag/internal/usecase/interfaces"

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
	rdb := database.ConnectRedis()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	optionRepo := repository2.NewFormOptionDynamoRepository(ddb)
	formRepo := repository2.NewFormDynamoRepository(ddb, optionRepo, serviceRepo)
	planRepo := repository2.NewPlanDynamoRepository(ddb)
	planServiceRepo := repository2.NewPlanServiceDynamoRepository(ddb)
	checkinRepo := repository2.NewCheckinDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	intakeSessions := repository2.NewIntakeSessionRedisRepository(rdb)
	authSessions := repository2.NewSessionRedisRepository(rdb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	formUseCase := usecase.NewFormUseCase(formRepo, optionRepo, serviceRepo)
	planUseCase := usecase.NewPlanUseCase(planRepo, planServiceRepo, serviceRepo, paymentGateway)
	checkinUseCase := usecase.NewCheckinUseCase(checkinRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, userRepo, planRepo, planServiceRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, authSessions)
	intakeUseCase := usecase.NewIntakeUseCase(intakeSessions, formRepo, userRepo, notificationRepo)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	formHandler := handlers.NewFormHandler(formUseCase)
	planHandler := handlers.NewPlanHandler(planUseCase)
	checkinHandler := handlers.NewCheckinHandler(checkinUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	intakeHandler := handlers.NewIntakeHandler(intakeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, formHandler, intakeHandler, authHandler)
	addConsoleRoutes(v1, authHandler, serviceHandler, formHandler, planHandler, checkinHandler, notificationHandler, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
