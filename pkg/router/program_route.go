package router

import (
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/controller"
	"trainforum/pkg/middleware"
	"trainforum/pkg/model"
)

func RegisterProgramRoutes(app *bootstrap.Application, controller *controller.ProgramController) {
	r := app.Engine.Group("/api/programs")
	authMiddleware := middleware.AuthMiddleware(app.Tokens)

	r.GET("", controller.ListPrograms)
	r.GET("/:programId", controller.GetProgram)
	r.POST("", authMiddleware, controller.CreateProgram)
	r.PUT("/:programId", authMiddleware, controller.UpdateProgram)
	r.DELETE("/:programId", authMiddleware, middleware.RequireRoles(model.RoleAdmin), controller.DeleteProgram)
}
