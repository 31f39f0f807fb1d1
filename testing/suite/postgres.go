package suite

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/ory/dockertest/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	postgresPort     = "5432/tcp"
	postgresImage    = "postgres"
	postgresTag      = "16-alpine"
	postgresUser     = "gomoku"
	postgresPassword = "gomoku"
	postgresDatabase = "gomoku_test"
)

// PostgresSuite runs a throwaway postgres container for one test.
type PostgresSuite struct {
	*testing.T
	Logger *slog.Logger

	DB *gorm.DB
}

func NewPostgres(t *testing.T) (context.Context, *PostgresSuite) {
	t.Helper()

	ctx := testContext(t)

	c := startContainer(t, &dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDatabase,
		},
	})

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		postgresUser, postgresPassword, c.hostPort(postgresPort), postgresDatabase)

	var db *gorm.DB

	c.await(t, "postgres", func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		if err = sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		db = conn

		return nil
	})

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return ctx, &PostgresSuite{
		T:      t,
		Logger: newLogger(),
		DB:     db,
	}
}
