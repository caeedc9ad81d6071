package model

import (
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	Text      string `json:"text" gorm:"type:varchar(100)"`
	WorkoutID uint   `json:"workoutId"`
	TrainerID uint   `json:"trainerId"`
	AuthorID  string `json:"authorId" gorm:"type:varchar(36)"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,min=2,max=100"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,min=2,max=100"`
}

type CommentResponse struct {
	Msg  string   `json:"msg"`
	Data *Comment `json:"data"`
}

type CommentListResponse struct {
	Msg  string     `json:"msg"`
	Data []*Comment `json:"data"`
}

// CommentService scopes every operation to an existing trainer/workout pair.
type CommentService interface {
	FindAll(ctx context.Context, trainerID, workoutID uint) ([]*Comment, error)
	FindByID(ctx context.Context, trainerID, workoutID, commentID uint) (*Comment, error)
	Store(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) (rowAffected int64, err error)
	Delete(ctx context.Context, trainerID, workoutID, commentID uint) (rowAffected int64, err error)
}
