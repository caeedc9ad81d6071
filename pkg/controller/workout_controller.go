package controller

import (
	"errors"
	"net/http"

	"trainforum/pkg/model"
	"trainforum/pkg/service"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workoutSvc model.WorkoutService
}

func NewWorkoutController(workoutSvc model.WorkoutService) *WorkoutController {
	return &WorkoutController{
		workoutSvc: workoutSvc,
	}
}

// ListWorkouts godoc
// @Summary List workouts of a trainer
// @Tags Workout
// @Produce json
// @Param trainerId path int true "Trainer ID"
// @Success 200 {object} model.WorkoutListResponse "Workouts"
// @Failure 404 {object} model.Response "Trainer not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts [get]
func (ctrl *WorkoutController) ListWorkouts(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	workouts, err := ctrl.workoutSvc.FindAllByTrainer(c, trainerID)
	switch {
	case errors.Is(err, service.ErrTrainerNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No trainer found by this ID",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.WorkoutListResponse{
		Data: workouts,
	})
}

// GetWorkout godoc
// @Summary Get workout by ID
// @Tags Workout
// @Produce json
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Success 200 {object} model.WorkoutResponse "Workout"
// @Failure 404 {object} model.Response "Trainer or workout not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId} [get]
func (ctrl *WorkoutController) GetWorkout(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	workoutID, ok := retrieveUintParam(c, "workoutId")
	if !ok {
		return
	}
	workout, err := ctrl.workoutSvc.FindByID(c, trainerID, workoutID)
	if !ctrl.renderWorkoutErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, model.WorkoutResponse{
		Data: workout,
	})
}

// CreateWorkout godoc
// @Summary Create workout for a trainer
// @Tags Workout
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param request body model.CreateWorkoutRequest true "Create Workout Request"
// @Success 201 {object} model.WorkoutResponse "Workout created"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 404 {object} model.Response "Trainer not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts [post]
func (ctrl *WorkoutController) CreateWorkout(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	var request model.CreateWorkoutRequest
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

	workout := &model.Workout{
		TypeTr:    request.TypeTr,
		Place:     request.Place,
		Price:     request.Price,
		Equipment: request.Equipment,
		TrainerID: trainerID,
		OwnerID:   identity.UserID,
	}
	err := ctrl.workoutSvc.Store(c, workout)
	if !ctrl.renderWorkoutErr(c, err) {
		return
	}
	c.JSON(http.StatusCreated, model.WorkoutResponse{
		Data: workout,
	})
}

// UpdateWorkout godoc
// @Summary Update workout
// @Tags Workout
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Param request body model.UpdateWorkoutRequest true "Update Workout Request"
// @Success 200 {object} model.WorkoutResponse "Workout updated"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 404 {object} model.Response "Trainer or workout not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId} [put]
func (ctrl *WorkoutController) UpdateWorkout(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	workoutID, ok := retrieveUintParam(c, "workoutId")
	if !ok {
		return
	}
	var request model.UpdateWorkoutRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	workout, err := ctrl.workoutSvc.FindByID(c, trainerID, workoutID)
	if !ctrl.renderWorkoutErr(c, err) {
		return
	}

	workout.TypeTr = request.TypeTr
	workout.Place = request.Place
	workout.Price = request.Price
	workout.Equipment = request.Equipment
	if _, err := ctrl.workoutSvc.Update(c, workout); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.WorkoutResponse{
		Data: workout,
	})
}

// DeleteWorkout godoc
// @Summary Delete workout
// @Tags Workout
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param workoutId path int true "Workout ID"
// @Success 204 "Workout deleted"
// @Failure 404 {object} model.Response "Trainer or workout not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId}/workouts/{workoutId} [delete]
func (ctrl *WorkoutController) DeleteWorkout(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	workoutID, ok := retrieveUintParam(c, "workoutId")
	if !ok {
		return
	}
	_, err := ctrl.workoutSvc.Delete(c, trainerID, workoutID)
	if !ctrl.renderWorkoutErr(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

// renderWorkoutErr writes the response for a failed workout lookup and
// reports whether the caller may continue.
func (ctrl *WorkoutController) renderWorkoutErr(c *gin.Context, err error) bool {
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
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return false
	}
	return true
}
