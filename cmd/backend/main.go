package main

import (
	"context"
	"fmt"
	"log"

	"trainforum/docs"
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/router"
	"trainforum/pkg/service"

	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

func SetUpSwagger(spec *swag.Spec, app *bootstrap.Application) {
	spec.BasePath = "/"
	spec.Host = fmt.Sprintf("%s:%d", "localhost", app.Env.Server.Port)
	spec.Schemes = []string{"http", "https"}
	spec.Title = "Training Forum API"
	spec.Description = "Backend API for the training forum: accounts, sessions, trainers, workouts, comments and programs"
}

func main() {
	// Init config
	app := bootstrap.App()

	// Init services
	userStore := service.NewGormUserStore(app.Conn)
	authService := service.NewAuthService(userStore, app.Tokens)
	trainerService := service.NewTrainerService(app.Conn, app.Cache)
	workoutService := service.NewWorkoutService(app.Conn)
	commentService := service.NewCommentService(app.Conn, workoutService)
	programService := service.NewProgramService(app.Conn)

	seeder := service.NewSeeder(app.Conn, userStore, app.Locker, app.Env.SeedAdminPassword)
	if err := seeder.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed roles and admin account: %v", err)
	}

	services := &router.Services{
		AuthService:    authService,
		TrainerService: trainerService,
		WorkoutService: workoutService,
		CommentService: commentService,
		ProgramService: programService,
	}

	// Init routes
	router.RegisterRoutes(app, services)

	// setup swagger
	// @securityDefinitions.apikey ApiKeyAuth
	// @in header
	// @name Authorization
	SetUpSwagger(docs.SwaggerInfo, app)
	app.Engine.GET("/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerfiles.Handler,
			ginSwagger.DeepLinking(true),
		),
	)

	app.Run()
}
