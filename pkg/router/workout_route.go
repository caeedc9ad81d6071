package router

import (
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/controller"
	"trainforum/pkg/middleware"
	"trainforum/pkg/model"
)

func RegisterWorkoutRoutes(app *bootstrap.Application, controller *controller.WorkoutController) {
	r := app.Engine.Group("/api/trainers/:trainerId/workouts")
	authMiddleware := middleware.AuthMiddleware(app.Tokens)

	r.GET("", controller.ListWorkouts)
	r.GET("/:workoutId", controller.GetWorkout)
	r.POST("", authMiddleware, middleware.RequireRoles(model.RoleTrainer, model.RoleAdmin), controller.CreateWorkout)
	r.PUT("/:workoutId", authMiddleware, middleware.RequireRoles(model.RoleTrainer, model.RoleAdmin), controller.UpdateWorkout)
	r.DELETE("/:workoutId", authMiddleware, middleware.RequireRoles(model.RoleAdmin), controller.DeleteWorkout)
}
