package controller

import (
	"errors"
	"net/http"

	"trainforum/pkg/model"
	"trainforum/pkg/service"

	"github.com/gin-gonic/gin"
)

type ProgramController struct {
	programSvc model.ProgramService
}

func NewProgramController(programSvc model.ProgramService) *ProgramController {
	return &ProgramController{
		programSvc: programSvc,
	}
}

// ListPrograms godoc
// @Summary List training programs
// @Tags Program
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} model.ProgramListResponse "Programs"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/programs [get]
func (ctrl *ProgramController) ListPrograms(c *gin.Context) {
	page, limit := RetrievePagination(c)
	programs, err := ctrl.programSvc.FindAll(c, page, limit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.ProgramListResponse{
		Data: programs,
	})
}

// GetProgram godoc
// @Summary Get training program by ID
// @Tags Program
// @Produce json
// @Param programId path int true "Program ID"
// @Success 200 {object} model.ProgramResponse "Program"
// @Failure 404 {object} model.Response "Program not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/programs/{programId} [get]
func (ctrl *ProgramController) GetProgram(c *gin.Context) {
	programID, ok := retrieveUintParam(c, "programId")
	if !ok {
		return
	}
	program, err := ctrl.programSvc.FindByID(c, programID)
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No program found by this ID",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.ProgramResponse{
		Data: program,
	})
}

// CreateProgram godoc
// @Summary Create training program
// @Tags Program
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.CreateProgramRequest true "Create Program Request"
// @Success 201 {object} model.ProgramResponse "Program created"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/programs [post]
func (ctrl *ProgramController) CreateProgram(c *gin.Context) {
	var request model.CreateProgramRequest
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

	program := &model.TrProgram{
		Name:       request.Name,
		Descr:      request.Descr,
		Difficulty: request.Difficulty,
		Trainer:    request.Trainer,
		Duration:   request.Duration,
		UserID:     identity.UserID,
	}
	if err := ctrl.programSvc.Store(c, program); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, model.ProgramResponse{
		Data: program,
	})
}

// UpdateProgram godoc
// @Summary Update training program
// @Tags Program
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param programId path int true "Program ID"
// @Param request body model.UpdateProgramRequest true "Update Program Request"
// @Success 200 {object} model.ProgramResponse "Program updated"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 404 {object} model.Response "Program not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/programs/{programId} [put]
func (ctrl *ProgramController) UpdateProgram(c *gin.Context) {
	programID, ok := retrieveUintParam(c, "programId")
	if !ok {
		return
	}
	var request model.UpdateProgramRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	program, err := ctrl.programSvc.FindByID(c, programID)
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No program found by this ID",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}

	program.Name = request.Name
	program.Descr = request.Descr
	program.Difficulty = request.Difficulty
	program.Trainer = request.Trainer
	program.Duration = request.Duration
	if _, err := ctrl.programSvc.Update(c, program); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.ProgramResponse{
		Data: program,
	})
}

// DeleteProgram godoc
// @Summary Delete training program
// @Tags Program
// @Produce json
// @Security ApiKeyAuth
// @Param programId path int true "Program ID"
// @Success 204 "Program deleted"
// @Failure 404 {object} model.Response "Program not found"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/programs/{programId} [delete]
func (ctrl *ProgramController) DeleteProgram(c *gin.Context) {
	programID, ok := retrieveUintParam(c, "programId")
	if !ok {
		return
	}
	rowAffected, err := ctrl.programSvc.Delete(c, programID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: err.Error(),
		})
		return
	}
	if rowAffected == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, model.Response{
			Msg: "No program found by this ID",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
