package service

import (
	"context"
	"testing"

	"trainforum/pkg/bootstrap"
	"trainforum/pkg/inmem"
	"trainforum/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectRoleLookups(mocks *bootstrap.Mocks) {
	for i, name := range model.AllRoles {
		mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "roles"`).
			WillReturnRows(mocks.DBMock.NewRows([]string{"id", "name"}).AddRow(i+1, name))
	}
}

// Seed must run without a locker at all; the migrate CLI calls it that way.
func TestSeeder_SeedWithoutLocker(t *testing.T) {
	app, mocks := bootstrap.NewTestApp()
	users, err := inmem.NewUserStore()
	require.NoError(t, err)
	ctx := context.Background()

	expectRoleLookups(mocks)

	seeder := NewSeeder(app.Conn, users, nil, "seed-password")
	require.NoError(t, seeder.Seed(ctx))
	assert.NoError(t, mocks.DBMock.ExpectationsWereMet(), "every role is looked up or created")

	admin, err := users.FindByName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@admin.com", admin.Email)
	assert.True(t, users.CheckPassword(ctx, admin, "seed-password"))

	roles, err := users.GetRoles(ctx, admin)
	require.NoError(t, err)
	assert.ElementsMatch(t, model.AllRoles, roles, "the built-in admin holds every role")
}

func TestSeeder_SeedIsIdempotent(t *testing.T) {
	app, mocks := bootstrap.NewTestApp()
	users, err := inmem.NewUserStore()
	require.NoError(t, err)
	ctx := context.Background()

	expectRoleLookups(mocks)
	expectRoleLookups(mocks)

	seeder := NewSeeder(app.Conn, users, nil, "seed-password")
	require.NoError(t, seeder.Seed(ctx))
	require.NoError(t, seeder.Seed(ctx), "an existing admin account is left alone")

	admin, err := users.FindByName(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, users.CheckPassword(ctx, admin, "seed-password"))
}
