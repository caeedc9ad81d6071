package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainforum/pkg/model"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrTrainerNotFound = errors.New("no trainer found by this ID")

const trainerCacheTTL = 2 * time.Hour

type TrainerServiceImpl struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewTrainerService(db *gorm.DB, cache *redis.Client) model.TrainerService {
	return &TrainerServiceImpl{
		db:    db,
		cache: cache,
	}
}

// FindAll implements model.TrainerService.
func (ts *TrainerServiceImpl) FindAll(ctx context.Context, page, limit int64) (trainers []*model.Trainer, err error) {
	err = ts.db.WithContext(ctx).Limit(int(limit)).Offset(int((page - 1) * limit)).Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return
}

// FindByID reads through the redis hash cache before hitting the database.
func (ts *TrainerServiceImpl) FindByID(ctx context.Context, id uint) (*model.Trainer, error) {
	key := fmt.Sprintf("%s%d", model.TrainerCacheKey, id)

	trainerCache := &model.TrainerCache{}
	err := ts.cache.HGetAll(ctx, key).Scan(trainerCache)
	if err == nil && trainerCache.ID != 0 {
		return &model.Trainer{
			Model: gorm.Model{
				ID:        trainerCache.ID,
				CreatedAt: trainerCache.CreatedAt,
				UpdatedAt: trainerCache.UpdatedAt,
			},
			Name:       trainerCache.Name,
			Experience: trainerCache.Experience,
			TypeTr:     trainerCache.TypeTr,
			IsBlocked:  trainerCache.IsBlocked,
		}, nil
	}

	trainer := &model.Trainer{}
	err = ts.db.WithContext(ctx).First(trainer, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTrainerNotFound
	case err != nil:
		return nil, err
	}

	trainerCache = &model.TrainerCache{
		ID:         trainer.ID,
		Name:       trainer.Name,
		Experience: trainer.Experience,
		TypeTr:     trainer.TypeTr,
		IsBlocked:  trainer.IsBlocked,
		CreatedAt:  trainer.CreatedAt,
		UpdatedAt:  trainer.UpdatedAt,
	}
	if err := ts.cache.HSet(ctx, key, trainerCache).Err(); err == nil {
		ts.cache.Expire(ctx, key, trainerCacheTTL)
	}
	return trainer, nil
}

// Store implements model.TrainerService.
func (ts *TrainerServiceImpl) Store(ctx context.Context, trainer *model.Trainer) error {
	return ts.db.WithContext(ctx).Create(trainer).Error
}

// Update implements model.TrainerService.
func (ts *TrainerServiceImpl) Update(ctx context.Context, trainer *model.Trainer) (rowAffected int64, err error) {
	res := ts.db.WithContext(ctx).Model(trainer).Updates(trainer)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	go ts.cache.Del(ctx, fmt.Sprintf("%s%d", model.TrainerCacheKey, trainer.ID))
	return
}

// Delete implements model.TrainerService.
func (ts *TrainerServiceImpl) Delete(ctx context.Context, id uint) (rowAffected int64, err error) {
	res := ts.db.WithContext(ctx).Delete(&model.Trainer{}, id)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	go ts.cache.Del(ctx, fmt.Sprintf("%s%d", model.TrainerCacheKey, id))
	return
}
