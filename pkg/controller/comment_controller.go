package controller

import (
	"errors"
	"net/http"

	"trainforum/pkg/model"
	"trainforum/pkg/service"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	commentSvc model.CommentService
}

func NewCommentController(commentSvc model.CommentService) *CommentController {
	return &CommentController{
		commentSvc: commentSvc,
	}
}

// ListComments godoc
// @Summary List comments under a workout
// @Tags Comment
// @Produce json
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Success 200 {object} model.CommentListResponse "Comments"
// @Failure 404 {object} model.Response "Trainer or workout not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId}/comments [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	trainerID, workoutID, ok := ctrl.retrieveScope(c)
	if !ok {
		return
	}
	comments, err := ctrl.commentSvc.FindAll(c, trainerID, workoutID)
	if !ctrl.renderCommentErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, model.CommentListResponse{
		Data: comments,
	})
}

// GetComment godoc
// @Summary Get comment by ID
// @Tags Comment
// @Produce json
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} model.CommentResponse "Comment"
// @Failure 404 {object} model.Response "Trainer, workout or comment not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId}/comments/{commentId} [get]
func (ctrl *CommentController) GetComment(c *gin.Context) {
	trainerID, workoutID, ok := ctrl.retrieveScope(c)
	if !ok {
		return
	}
	commentID, ok := retrieveUintParam(c, "commentId")
	if !ok {
		return
	}
	comment, err := ctrl.commentSvc.FindByID(c, trainerID, workoutID, commentID)
	if !ctrl.renderCommentErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, model.CommentResponse{
		Data: comment,
	})
}

// CreateComment godoc
// @Summary Create comment under a workout
// @Tags Comment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Param request body model.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} model.CommentResponse "Comment created"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 404 {object} model.Response "Trainer or workout not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId}/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	trainerID, workoutID, ok := ctrl.retrieveScope(c)
	if !ok {
		return
	}
	var request model.CreateCommentRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}
	identity, ok := RetrieveIdentity(c, true)
	if !ok {
		return
	}

	comment := &model.Comment{
		Text:      request.Text,
		WorkoutID: workoutID,
		TrainerID: trainerID,
		AuthorID:  identity.UserID,
	}
	err := ctrl.commentSvc.Store(c, comment)
	if !ctrl.renderCommentErr(c, err) {
		return
	}
	c.JSON(http.StatusCreated, model.CommentResponse{
		Data: comment,
	})
}

// UpdateComment godoc
// @Summary Update comment
// @Tags Comment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Param commentId path int true "Comment ID"
// @Param request body model.UpdateCommentRequest true "Update Comment Request"
// @Success 200 {object} model.CommentResponse "Comment updated"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 404 {object} model.Response "Trainer, workout or comment not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId}/comments/{commentId} [put]
func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	trainerID, workoutID, ok := ctrl.retrieveScope(c)
	if !ok {
		return
	}
	commentID, ok := retrieveUintParam(c, "commentId")
	if !ok {
		return
	}
	var request model.UpdateCommentRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	comment, err := ctrl.commentSvc.FindByID(c, trainerID, workoutID, commentID)
	if !ctrl.renderCommentErr(c, err) {
		return
	}

	comment.Text = request.Text
	if _, err := ctrl.commentSvc.Update(c, comment); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.CommentResponse{
		Data: comment,
	})
}

// DeleteComment godoc
// @Summary Delete comment
// @Tags Comment
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Param commentId path int true "Comment ID"
// @Success 204 "Comment deleted"
// @Failure 404 {object} model.Response "Trainer, workout or comment not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId}/comments/{commentId} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	trainerID, workoutID, ok := ctrl.retrieveScope(c)
	if !ok {
		return
	}
	commentID, ok := retrieveUintParam(c, "commentId")
	if !ok {
		return
	}
	_, err := ctrl.commentSvc.Delete(c, trainerID, workoutID, commentID)
	if !ctrl.renderCommentErr(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctrl *CommentController) retrieveScope(c *gin.Context) (trainerID, workoutID uint, ok bool) {
	trainerID, ok = retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	workoutID, ok = retrieveUintParam(c, "workoutId")
	return
}

func (ctrl *CommentController) renderCommentErr(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrTrainerNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No trainer found by this ID",
		})
		return false
	case errors.Is(err, service.ErrWorkoutNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No workout found by this ID",
		})
		return false
	case errors.Is(err, service.ErrCommentNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No comment found by this ID",
		})
		return false
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return false
	}
	return true
}
