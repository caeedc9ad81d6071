package router

import (
	"trainforum/pkg/bootstrap"
	"trainforum/pkg/controller"
	"trainforum/pkg/middleware"
	"trainforum/pkg/model"
)

func RegisterCommentRoutes(app *bootstrap.Application, controller *controller.CommentController) {
	r := app.Engine.Group("/api/trainers/:trainerId/workouts/:workoutId/comments")
	authMiddleware := middleware.AuthMiddleware(app.Tokens)

	r.GET("", controller.ListComments)
	r.GET("/:commentId", controller.GetComment)
	r.POST("", authMiddleware, controller.CreateComment)
	r.PUT("/:commentId", authMiddleware, controller.UpdateComment)
	r.DELETE("/:commentId", authMiddleware, middleware.RequireRoles(model.RoleAdmin), controller.DeleteComment)
}
