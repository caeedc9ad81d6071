package controller

import (
	"errors"
	"net/http"

	"trainforum/pkg/model"
	"trainforum/pkg/service"

	"github.com/gin-gonic/gin"
)

type TrainerController struct {
	trainerSvc model.TrainerService
}

func NewTrainerController(trainerSvc model.TrainerService) *TrainerController {
	return &TrainerController{
		trainerSvc: trainerSvc,
	}
}

// ListTrainers godoc
// @Summary List trainers
// @Tags Trainer
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} model.TrainerListResponse "Trainers"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers [get]
func (ctrl *TrainerController) ListTrainers(c *gin.Context) {
	page, limit := RetrievePagination(c)
	trainers, err := ctrl.trainerSvc.FindAll(c, page, limit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.TrainerListResponse{
		Data: trainers,
	})
}

// GetTrainer godoc
// @Summary Get trainer by ID
// @Tags Trainer
// @Produce json
// @Param trainerId path int true "Trainer ID"
// @Success 200 {object} model.TrainerResponse "Trainer"
// @Failure 404 {object} model.Response "Trainer not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId} [get]
func (ctrl *TrainerController) GetTrainer(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	trainer, err := ctrl.trainerSvc.FindByID(c, trainerID)
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
	c.JSON(http.StatusOK, model.TrainerResponse{
		Data: trainer,
	})
}

// CreateTrainer godoc
// @Summary Create trainer
// @Tags Trainer
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.CreateTrainerRequest true "Create Trainer Request"
// @Success 201 {object} model.TrainerResponse "Trainer created"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers [post]
func (ctrl *TrainerController) CreateTrainer(c *gin.Context) {
	var request model.CreateTrainerRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	trainer := &model.Trainer{
		Name:       request.Name,
		Experience: request.Experience,
		TypeTr:     request.TypeTr,
	}
	if err := ctrl.trainerSvc.Store(c, trainer); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, model.TrainerResponse{
		Data: trainer,
	})
}

// UpdateTrainer godoc
// @Summary Update trainer
// @Tags Trainer
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Param request body model.UpdateTrainerRequest true "Update Trainer Request"
// @Success 200 {object} model.TrainerResponse "Trainer updated"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 404 {object} model.Response "Trainer not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId} [put]
func (ctrl *TrainerController) UpdateTrainer(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	var request model.UpdateTrainerRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	trainer, err := ctrl.trainerSvc.FindByID(c, trainerID)
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

	trainer.Experience = request.Experience
	trainer.TypeTr = request.TypeTr
	if _, err := ctrl.trainerSvc.Update(c, trainer); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.TrainerResponse{
		Data: trainer,
	})
}

// DeleteTrainer godoc
// @Summary Delete trainer
// @Tags Trainer
// @Produce json
// @Security ApiKeyAuth
// @Param trainerId path int true "Trainer ID"
// @Success 204 "Trainer deleted"
// @Failure 404 {object} model.Response "Trainer not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/trainers/{trainerId} [delete]
func (ctrl *TrainerController) DeleteTrainer(c *gin.Context) {
	trainerID, ok := retrieveUintParam(c, "trainerId")
	if !ok {
		return
	}
	rowAffected, err := ctrl.trainerSvc.Delete(c, trainerID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	if rowAffected == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No trainer found by this ID",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
