package router

import (
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/controller"
	"trainforum/pkg/middleware"
	"trainforum/pkg/model"
)

type Services struct {
	AuthService    model.AuthService
	TrainerService model.TrainerService
	WorkoutService model.WorkoutService
	CommentService model.CommentService
	ProgramService model.ProgramService
}

func RegisterRoutes(app *bootstrap.Application, services *Services) {
	// Register Global Middleware
	cors := middleware.CORSMiddleware()
	app.Engine.Use(cors)

	// Register Auth Routes
	authController := controller.NewAuthController(services.AuthService)
	RegisterAuthRoutes(app, authController)

	// Register Trainer Routes
	trainerController := controller.NewTrainerController(services.TrainerService)
	RegisterTrainerRoutes(app, trainerController)

	// Register Workout Routes
	workoutController := controller.NewWorkoutController(services.WorkoutService)
	RegisterWorkoutRoutes(app, workoutController)

	// Register Comment Routes
	commentController := controller.NewCommentController(services.CommentService)
	RegisterCommentRoutes(app, commentController)

	// Register Program Routes
	programController := controller.NewProgramController(services.ProgramService)
	RegisterProgramRoutes(app, programController)
}
