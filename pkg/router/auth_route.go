package router

import (
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/controller"
)

func RegisterAuthRoutes(app *bootstrap.Application, controller *controller.AuthController) {
	r := app.Engine.Group("/api")

	r.POST("/accounts", controller.Register)
	r.POST("/login", controller.Login)
	r.POST("/accessToken", controller.RefreshToken)
	r.POST("/logout", controller.Logout)
}
