package router

import (
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/controller"
	"trainforum/pkg/middleware"
	"trainforum/pkg/model"
)

func RegisterTrainerRoutes(app *bootstrap.Application, controller *controller.TrainerController) {
	r := app.Engine.Group("/api/trainers")
	authMiddleware := middleware.AuthMiddleware(app.Tokens)

	r.GET("", controller.ListTrainers)
	r.GET("/:trainerId", controller.GetTrainer)
	r.POST("", authMiddleware, middleware.RequireRoles(model.RoleTrainer, model.RoleAdmin), controller.CreateTrainer)
	r.PUT("/:trainerId", authMiddleware, middleware.RequireRoles(model.RoleTrainer, model.RoleAdmin), controller.UpdateTrainer)
	r.DELETE("/:trainerId", authMiddleware, middleware.RequireRoles(model.RoleAdmin), controller.DeleteTrainer)
}
