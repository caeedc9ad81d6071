package service

import (
	"context"
	"errors"

	"trainforum/pkg/model"

	"gorm.io/gorm"
)

var ErrWorkoutNotFound = errors.New("no workout found by this ID")

type WorkoutServiceImpl struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) model.WorkoutService {
	return &WorkoutServiceImpl{db: db}
}

func (ws *WorkoutServiceImpl) trainerExists(ctx context.Context, trainerID uint) error {
	err := ws.db.WithContext(ctx).First(&model.Trainer{}, trainerID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrTrainerNotFound
	case err != nil:
		return err
	}
	return nil
}

// FindAllByTrainer implements model.WorkoutService.
func (ws *WorkoutServiceImpl) FindAllByTrainer(ctx context.Context, trainerID uint) (workouts []*model.Workout, err error) {
	if err := ws.trainerExists(ctx, trainerID); err != nil {
		return nil, err
	}
	err = ws.db.WithContext(ctx).Where(&model.Workout{TrainerID: trainerID}).Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return
}

// FindByID implements model.WorkoutService.
func (ws *WorkoutServiceImpl) FindByID(ctx context.Context, trainerID, workoutID uint) (*model.Workout, error) {
	if err := ws.trainerExists(ctx, trainerID); err != nil {
		return nil, err
	}
	workout := &model.Workout{}
	err := ws.db.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", workoutID, trainerID).
		First(workout).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrWorkoutNotFound
	case err != nil:
		return nil, err
	}
	return workout, nil
}

// Store implements model.WorkoutService.
func (ws *WorkoutServiceImpl) Store(ctx context.Context, workout *model.Workout) error {
	if err := ws.trainerExists(ctx, workout.TrainerID); err != nil {
		return err
	}
	return ws.db.WithContext(ctx).Create(workout).Error
}

// Update implements model.WorkoutService.
func (ws *WorkoutServiceImpl) Update(ctx context.Context, workout *model.Workout) (rowAffected int64, err error) {
	if _, err := ws.FindByID(ctx, workout.TrainerID, workout.ID); err != nil {
		return 0, err
	}
	res := ws.db.WithContext(ctx).Model(workout).Updates(workout)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	return
}

// Delete implements model.WorkoutService.
func (ws *WorkoutServiceImpl) Delete(ctx context.Context, trainerID, workoutID uint) (rowAffected int64, err error) {
	workout, err := ws.FindByID(ctx, trainerID, workoutID)
	if err != nil {
		return 0, err
	}
	res := ws.db.WithContext(ctx).Delete(workout)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	return
}
