package service

import (
	"context"
	"errors"

	"trainforum/pkg/model"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("no comment found by this ID")

type CommentServiceImpl struct {
	db       *gorm.DB
	workouts model.WorkoutService
}

func NewCommentService(db *gorm.DB, workouts model.WorkoutService) model.CommentService {
	return &CommentServiceImpl{
		db:       db,
		workouts: workouts,
	}
}

// FindAll implements model.CommentService.
func (cs *CommentServiceImpl) FindAll(ctx context.Context, trainerID, workoutID uint) (comments []*model.Comment, err error) {
	if _, err := cs.workouts.FindByID(ctx, trainerID, workoutID); err != nil {
		return nil, err
	}
	err = cs.db.WithContext(ctx).Where(&model.Comment{WorkoutID: workoutID}).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return
}

// FindByID implements model.CommentService.
func (cs *CommentServiceImpl) FindByID(ctx context.Context, trainerID, workoutID, commentID uint) (*model.Comment, error) {
	if _, err := cs.workouts.FindByID(ctx, trainerID, workoutID); err != nil {
		return nil, err
	}
	comment := &model.Comment{}
	err := cs.db.WithContext(ctx).
		Where("id = ? AND workout_id = ?", commentID, workoutID).
		First(comment).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrCommentNotFound
	case err != nil:
		return nil, err
	}
	return comment, nil
}

// Store implements model.CommentService.
func (cs *CommentServiceImpl) Store(ctx context.Context, comment *model.Comment) error {
	if _, err := cs.workouts.FindByID(ctx, comment.TrainerID, comment.WorkoutID); err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Create(comment).Error
}

// Update implements model.CommentService.
func (cs *CommentServiceImpl) Update(ctx context.Context, comment *model.Comment) (rowAffected int64, err error) {
	if _, err := cs.FindByID(ctx, comment.TrainerID, comment.WorkoutID, comment.ID); err != nil {
		return 0, err
	}
	res := cs.db.WithContext(ctx).Model(comment).Updates(comment)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	return
}

// Delete implements model.CommentService.
func (cs *CommentServiceImpl) Delete(ctx context.Context, trainerID, workoutID, commentID uint) (rowAffected int64, err error) {
	comment, err := cs.FindByID(ctx, trainerID, workoutID, commentID)
	if err != nil {
		return 0, err
	}
	res := cs.db.WithContext(ctx).Delete(comment)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	return
}
