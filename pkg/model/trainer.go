package model

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// TrainerCacheKey prefixes the redis hash holding one trainer.
const TrainerCacheKey = "trainer:"

type Trainer struct {
	gorm.Model
	Name       string `json:"name" gorm:"type:varchar(100)"`
	Experience int    `json:"experience"`
	TypeTr     string `json:"typeTr" gorm:"type:varchar(100)"`
	IsBlocked  bool   `json:"isBlocked"`
}

// TrainerCache is the flattened redis-hash shape of a Trainer.
type TrainerCache struct {
	ID         uint      `redis:"id"`
	Name       string    `redis:"name"`
	Experience int       `redis:"experience"`
	TypeTr     string    `redis:"type_tr"`
	IsBlocked  bool      `redis:"is_blocked"`
	CreatedAt  time.Time `redis:"created_at"`
	UpdatedAt  time.Time `redis:"updated_at"`
}

type CreateTrainerRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Experience int    `json:"experience" binding:"required"`
	TypeTr     string `json:"typeTr" binding:"required,min=2,max=100"`
}

type UpdateTrainerRequest struct {
	Experience int    `json:"experience" binding:"required"`
	TypeTr     string `json:"typeTr" binding:"required,min=2,max=100"`
}

type TrainerResponse struct {
	Msg  string   `json:"msg"`
	Data *Trainer `json:"data"`
}

type TrainerListResponse struct {
	Msg  string     `json:"msg"`
	Data []*Trainer `json:"data"`
}

type TrainerService interface {
	FindAll(ctx context.Context, page, limit int64) ([]*Trainer, error)
	FindByID(ctx context.Context, id uint) (*Trainer, error)
	Store(ctx context.Context, trainer *Trainer) error
	Update(ctx context.Context, trainer *Trainer) (rowAffected int64, err error)
	Delete(ctx context.Context, id uint) (rowAffected int64, err error)
}
