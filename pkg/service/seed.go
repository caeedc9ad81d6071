package service

import (
	"context"
	"errors"
	"time"

	"trainforum/pkg/model"

	"github.com/bsm/redislock"
	"gorm.io/gorm"
)

const seedLockKey = "lock:seed"

// Seeder ensures the fixed role set and the built-in admin account exist.
// With a locker attached only one replica runs the seed at startup; the
// others skip it.
type Seeder struct {
	db            *gorm.DB
	users         model.UserStore
	locker        *redislock.Client
	adminPassword string
}

func NewSeeder(db *gorm.DB, users model.UserStore, locker *redislock.Client, adminPassword string) *Seeder {
	return &Seeder{
		db:            db,
		users:         users,
		locker:        locker,
		adminPassword: adminPassword,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if s.locker != nil {
		lock, err := s.locker.Obtain(ctx, seedLockKey, 30*time.Second, nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil
		}
		if err != nil {
			return err
		}
		defer lock.Release(ctx)
	}

	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	return s.seedAdmin(ctx)
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	for _, name := range model.AllRoles {
		role := &model.Role{}
		err := s.db.WithContext(ctx).
			Where(&model.Role{Name: name}).
			FirstOrCreate(role, &model.Role{Name: name}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	_, err := s.users.FindByName(ctx, "admin")
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, model.ErrUserNotFound):
		return err
	}

	admin := &model.ForumUser{
		UserName: "admin",
		Email:    "admin@admin.com",
	}
	return s.users.Create(ctx, admin, s.adminPassword, model.AllRoles...)
}
