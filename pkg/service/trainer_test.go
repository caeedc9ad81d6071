package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"trainforum/pkg/bootstrap"
	"trainforum/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootTrainer(t *testing.T) (model.TrainerService, *bootstrap.Mocks) {
	t.Helper()
	app, mocks := bootstrap.NewTestApp()
	mocks.DBMock.MatchExpectationsInOrder(false)
	mocks.CacheMock.MatchExpectationsInOrder(false)
	return NewTrainerService(app.Conn, app.Cache), mocks
}

func TestTrainerService_FindByID_CacheHit(t *testing.T) {
	svc, mocks := bootTrainer(t)

	key := fmt.Sprintf("%s%d", model.TrainerCacheKey, 7)
	mocks.CacheMock.ExpectHGetAll(key).SetVal(map[string]string{
		"id":         "7",
		"name":       "Coach Carter",
		"experience": "5",
		"type_tr":    "crossfit",
		"is_blocked": "0",
	})

	trainer, err := svc.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), trainer.ID)
	assert.Equal(t, "Coach Carter", trainer.Name)
	assert.Equal(t, 5, trainer.Experience)
	assert.Equal(t, "crossfit", trainer.TypeTr)
	assert.NoError(t, mocks.CacheMock.ExpectationsWereMet(), "a cache hit never touches the database")
}

func TestTrainerService_FindByID_CacheMiss(t *testing.T) {
	svc, mocks := bootTrainer(t)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	key := fmt.Sprintf("%s%d", model.TrainerCacheKey, 7)
	mocks.CacheMock.ExpectHGetAll(key).SetVal(map[string]string{})
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "trainers"`).
		WillReturnRows(mocks.DBMock.NewRows(
			[]string{"id", "created_at", "updated_at", "deleted_at", "name", "experience", "type_tr", "is_blocked"}).
			AddRow(7, now, now, nil, "Coach Carter", 5, "crossfit", false))

	trainer, err := svc.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), trainer.ID)
	assert.Equal(t, "Coach Carter", trainer.Name)
	assert.NoError(t, mocks.DBMock.ExpectationsWereMet())
}

func TestTrainerService_FindByID_NotFound(t *testing.T) {
	svc, mocks := bootTrainer(t)

	key := fmt.Sprintf("%s%d", model.TrainerCacheKey, 42)
	mocks.CacheMock.ExpectHGetAll(key).SetVal(map[string]string{})
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "trainers"`).
		WillReturnRows(mocks.DBMock.NewRows(
			[]string{"id", "created_at", "updated_at", "deleted_at", "name", "experience", "type_tr", "is_blocked"}))

	trainer, err := svc.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTrainerNotFound)
	assert.Nil(t, trainer)
}

func TestTrainerService_Store(t *testing.T) {
	svc, mocks := bootTrainer(t)

	mocks.DBMock.ExpectBegin()
	mocks.DBMock.ExpectQuery(`INSERT INTO "trainers"`).
		WillReturnRows(mocks.DBMock.NewRows([]string{"id"}).AddRow(1))
	mocks.DBMock.ExpectCommit()

	trainer := &model.Trainer{Name: "Coach Carter", Experience: 5, TypeTr: "crossfit"}
	require.NoError(t, svc.Store(context.Background(), trainer))
	assert.Equal(t, uint(1), trainer.ID)
	assert.NoError(t, mocks.DBMock.ExpectationsWereMet())
}

func TestTrainerService_FindAll(t *testing.T) {
	svc, mocks := bootTrainer(t)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "trainers"`).
		WillReturnRows(mocks.DBMock.NewRows(
			[]string{"id", "created_at", "updated_at", "deleted_at", "name", "experience", "type_tr", "is_blocked"}).
			AddRow(1, now, now, nil, "Coach Carter", 5, "crossfit", false).
			AddRow(2, now, now, nil, "Coach Taylor", 9, "football", false))

	trainers, err := svc.FindAll(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, trainers, 2)
}
