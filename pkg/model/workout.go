package model

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	TypeTr    string         `json:"typeTr" gorm:"type:varchar(100)"`
	Place     string         `json:"place" gorm:"type:varchar(100)"`
	Price     int            `json:"price"`
	Equipment pq.StringArray `json:"equipment" gorm:"type:text[]"`
	TrainerID uint           `json:"trainerId"`
	Trainer   *Trainer       `json:"-" gorm:"foreignKey:TrainerID"`
	OwnerID   string         `json:"ownerId" gorm:"type:varchar(36)"`
}

type CreateWorkoutRequest struct {
	TypeTr    string   `json:"typeTr" binding:"required,min=2,max=100"`
	Place     string   `json:"place" binding:"required,min=2,max=100"`
	Price     int      `json:"price" binding:"required"`
	Equipment []string `json:"equipment"`
}

type UpdateWorkoutRequest struct {
	TypeTr    string   `json:"typeTr" binding:"required,min=2,max=100"`
	Place     string   `json:"place" binding:"required,min=2,max=100"`
	Price     int      `json:"price" binding:"required"`
	Equipment []string `json:"equipment"`
}

type WorkoutResponse struct {
	Msg  string   `json:"msg"`
	Data *Workout `json:"data"`
}

type WorkoutListResponse struct {
	Msg  string     `json:"msg"`
	Data []*Workout `json:"data"`
}

// WorkoutService scopes every operation to an existing trainer; a missing
// trainer surfaces before the workout is looked at.
type WorkoutService interface {
	FindAllByTrainer(ctx context.Context, trainerID uint) ([]*Workout, error)
	FindByID(ctx context.Context, trainerID, workoutID uint) (*Workout, error)
	Store(ctx context.Context, workout *Workout) error
	Update(ctx context.Context, workout *Workout) (rowAffected int64, err error)
	Delete(ctx context.Context, trainerID, workoutID uint) (rowAffected int64, err error)
}
