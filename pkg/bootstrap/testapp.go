package bootstrap

import (
	"log"

	tokensvc "trainforum/internal/token"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Mocks bundles the fakes behind a test Application.
type Mocks struct {
	DBMock    sqlmock.Sqlmock
	CacheMock redismock.ClientMock
}

// NewTestApp builds an Application backed by sqlmock and redismock, for use
// from _test files. The token service signs with a fixed test secret.
func NewTestApp() (*Application, *Mocks) {
	sqlDB, dbMock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("Failed to create sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to open gorm over sqlmock: %v", err)
	}

	cache, cacheMock := redismock.NewClientMock()

	env := &Env{
		Server: Server{Port: 8080, TimeZone: "UTC"},
		JWT: JWTEnv{
			Secret:   "test-secret",
			Issuer:   "trainforum",
			Audience: "trainforum-clients",
		},
		SeedAdminPassword: "admin",
	}

	gin.SetMode(gin.TestMode)
	app := &Application{
		Env:    env,
		Conn:   db,
		Cache:  cache,
		Locker: NewRdLock(cache),
		Tokens: tokensvc.New(env.JWT.Secret, env.JWT.Issuer, env.JWT.Audience),
		Engine: gin.New(),
	}

	return app, &Mocks{
		DBMock:    dbMock,
		CacheMock: cacheMock,
	}
}
