package main

import (
	"context"
	"log"

	"trainforum/pkg/bootstrap"
	"trainforum/pkg/model"
	"trainforum/pkg/service"
)

func main() {
	env := bootstrap.NewEnv()
	db := bootstrap.NewDB(env)
	err := db.AutoMigrate(
		&model.Role{},
		&model.ForumUser{},
		&model.Trainer{},
		&model.Workout{},
		&model.Comment{},
		&model.TrProgram{},
	)
	if err != nil {
		log.Fatal(err)
	}

	// Single-process CLI, no lock needed.
	seeder := service.NewSeeder(db, service.NewGormUserStore(db), nil, env.SeedAdminPassword)
	if err := seeder.Seed(context.Background()); err != nil {
		log.Fatal(err)
	}
}
