package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/account"
	"todo-api/internal/domain/usecase/category"
	"todo-api/internal/domain/usecase/comment"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	infraAws "todo-api/internal/infra/aws"
	infraCache "todo-api/internal/infra/cache"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/schema"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
	"todo-api/pkg/util/numberutils"
)

// @title Todo API
// @description Task-tracking service: todos, categories and comments.
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init storage
	if err := schema.Apply(); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
	gormDB, err := gormdb.Open()
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	api := e.Group(resource.GetString("app.server.context-path"))
	api.Use(middleware.SessionPrincipal(resource.GetString("app.auth.jwt-secret")))

	// Init Gateways
	todoGateway := db.NewGormTodoGateway(gormDB)
	categoryGateway := db.NewGormCategoryGateway(gormDB)
	commentGateway := db.NewGormCommentGateway(gormDB)
	userGateway := db.NewGormUserGateway(gormDB)
	healthDBGateway := db.NewGormHealthDBGateway(gormDB)

	// Init entity-event publisher (optional)
	queueName := resource.GetString("app.queue.entity-events")
	queueHealth := queue.NewPublisherHealthGateway(queueName != "", queueName)
	var events *queue.EventPublisher
	if queueName != "" {
		awsConfig, err := infraAws.LoadConfig(context.Background())
		if err != nil {
			log.Fatalf("load aws config: %v", err)
		}
		sender := infraAws.NewSQSSenderAdapter(infraAws.NewSQSClient(awsConfig))
		events = queue.NewEventPublisher(sender, queueName, queueHealth)
	}

	// Init listing cache (optional)
	var listingCache cache.TodoCache
	if redisHost := resource.GetString("app.redis.host"); redisHost != "" {
		redisClient := redis.NewClient(redis.NewConfig().
			WithHost(redisHost).
			WithPort(numberutils.ToIntWithDefault(resource.GetString("app.redis.port"), 6379)).
			WithPassword(resource.GetString("app.redis.password")))
		listingCache = infraCache.NewRedisTodoCache(redisClient, resource.GetDuration("app.redis.listing-ttl"))
	}

	// Init Authorization Gate
	gate := auth.NewGate(resource.GetString("app.auth.csrf-secret"))

	// Init UseCases
	todoUseCase := todo.NewTodoUseCase(todoGateway, gate, listingCache, events)
	categoryUseCase := category.NewCategoryUseCase(categoryGateway, gate, listingCache, events)
	commentUseCase := comment.NewCommentUseCase(commentGateway, todoGateway, gate, listingCache, events)
	accountUseCase := account.NewAccountUseCase(userGateway,
		resource.GetString("app.auth.jwt-secret"),
		resource.GetDuration("app.auth.token-ttl"))
	healthUseCase := health.NewHealthUseCase(healthDBGateway, queueHealth)

	// Init Controllers
	todoController := controller.NewTodoController(api, todoUseCase, gate)
	categoryController := controller.NewCategoryController(api, categoryUseCase, gate)
	commentController := controller.NewCommentController(api, commentUseCase)
	accountController := controller.NewAccountController(api, accountUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	todoController.InitTodoRoutes()
	categoryController.InitCategoryRoutes()
	commentController.InitCommentRoutes()
	accountController.InitAccountRoutes()
	healthController.InitHealthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	todoScheduler := schedule.NewTodoScheduler(todoUseCase)
	todoScheduler.InitTodoScheduleTasks()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
