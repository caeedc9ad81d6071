package model

import (
	"context"

	"gorm.io/gorm"
)

// TrProgram is a published training program owned by a forum user.
type TrProgram struct {
	gorm.Model
	Name       string `json:"name" gorm:"type:varchar(100)"`
	Descr      string `json:"descr" gorm:"type:varchar(255)"`
	Difficulty int    `json:"difficulty"`
	Trainer    string `json:"trainer" gorm:"type:varchar(100)"`
	Duration   string `json:"duration" gorm:"type:varchar(100)"`
	IsBlocked  bool   `json:"isBlocked"`
	UserID     string `json:"userId" gorm:"type:varchar(36)"`
}

type CreateProgramRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Descr      string `json:"descr" binding:"required,min=2,max=255"`
	Difficulty int    `json:"difficulty" binding:"required"`
	Trainer    string `json:"trainer" binding:"required,min=2,max=100"`
	Duration   string `json:"duration" binding:"required,min=2,max=100"`
}

type UpdateProgramRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Descr      string `json:"descr" binding:"required,min=2,max=255"`
	Difficulty int    `json:"difficulty" binding:"required"`
	Trainer    string `json:"trainer" binding:"required,min=2,max=100"`
	Duration   string `json:"duration" binding:"required,min=2,max=100"`
}

type ProgramResponse struct {
	Msg  string     `json:"msg"`
	Data *TrProgram `json:"data"`
}

type ProgramListResponse struct {
	Msg  string       `json:"msg"`
	Data []*TrProgram `json:"data"`
}

type ProgramService interface {
	FindAll(ctx context.Context, page, limit int64) ([]*TrProgram, error)
	FindByID(ctx context.Context, id uint) (*TrProgram, error)
	Store(ctx context.Context, program *TrProgram) error
	Update(ctx context.Context, program *TrProgram) (rowAffected int64, err error)
	Delete(ctx context.Context, id uint) (rowAffected int64, err error)
}
