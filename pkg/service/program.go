package service

import (
	"context"
	"errors"

	"trainforum/pkg/model"

	"gorm.io/gorm"
)

var ErrProgramNotFound = errors.New("no program found by this ID")

type ProgramServiceImpl struct {
	db *gorm.DB
}

func NewProgramService(db *gorm.DB) model.ProgramService {
	return &ProgramServiceImpl{db: db}
}

// FindAll implements model.ProgramService.
func (ps *ProgramServiceImpl) FindAll(ctx context.Context, page, limit int64) (programs []*model.TrProgram, err error) {
	err = ps.db.WithContext(ctx).Limit(int(limit)).Offset(int((page - 1) * limit)).Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return
}

// FindByID implements model.ProgramService.
func (ps *ProgramServiceImpl) FindByID(ctx context.Context, id uint) (*model.TrProgram, error) {
	program := &model.TrProgram{}
	err := ps.db.WithContext(ctx).First(program, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrProgramNotFound
	case err != nil:
		return nil, err
	}
	return program, nil
}

// Store implements model.ProgramService.
func (ps *ProgramServiceImpl) Store(ctx context.Context, program *model.TrProgram) error {
	return ps.db.WithContext(ctx).Create(program).Error
}

// Update implements model.ProgramService.
func (ps *ProgramServiceImpl) Update(ctx context.Context, program *model.TrProgram) (rowAffected int64, err error) {
	res := ps.db.WithContext(ctx).Model(program).Updates(program)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	return
}

// Delete implements model.ProgramService.
func (ps *ProgramServiceImpl) Delete(ctx context.Context, id uint) (rowAffected int64, err error) {
	res := ps.db.WithContext(ctx).Delete(&model.TrProgram{}, id)
	rowAffected, err = res.RowsAffected, res.Error
	if err != nil {
		return 0, err
	}
	return
}
