package service

import (
	"context"
	"errors"
	"fmt"

	"trainforum/pkg/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) model.UserStore {
	return &GormUserStore{db: db}
}

// FindByName implements model.UserStore.
func (us *GormUserStore) FindByName(ctx context.Context, username string) (*model.ForumUser, error) {
	user := &model.ForumUser{}
	err := us.db.WithContext(ctx).Where(&model.ForumUser{UserName: username}).First(user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.ErrUserNotFound
	case err != nil:
		return nil, err
	}
	return user, nil
}

// FindByID implements model.UserStore.
func (us *GormUserStore) FindByID(ctx context.Context, id string) (*model.ForumUser, error) {
	user := &model.ForumUser{}
	err := us.db.WithContext(ctx).Where(&model.ForumUser{ID: id}).First(user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.ErrUserNotFound
	case err != nil:
		return nil, err
	}
	return user, nil
}

// Create hashes the password and persists the user together with its role
// assignments in one transaction. The unique index on username is the real
// uniqueness enforcement; a concurrent duplicate registration fails the
// insert and maps to ErrUsernameTaken here.
func (us *GormUserStore) Create(ctx context.Context, user *model.ForumUser, password string, roles ...string) error {
	if err := model.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	user.PasswordHash = string(hash)

	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		for _, name := range roles {
			role := &model.Role{}
			if err := tx.Where(&model.Role{Name: name}).FirstOrCreate(role, &model.Role{Name: name}).Error; err != nil {
				return err
			}
			if err := tx.Model(user).Association("Roles").Append(role); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrUsernameTaken
	}
	return err
}

// CheckPassword implements model.UserStore.
func (us *GormUserStore) CheckPassword(_ context.Context, user *model.ForumUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// GetRoles implements model.UserStore.
func (us *GormUserStore) GetRoles(ctx context.Context, user *model.ForumUser) ([]string, error) {
	var roles []model.Role
	err := us.db.WithContext(ctx).Model(user).Association("Roles").Find(&roles)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names, nil
}
