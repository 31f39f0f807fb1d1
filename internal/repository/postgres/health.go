package postgres

import (
	"context"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dbHealth struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &dbHealth{
		db: db,
	}
}

// Check - pings the pool and upserts the single probe row.
func (that *dbHealth) Check(ctx context.Context) entity.StorageStatus {
	status := entity.StorageStatus{Backend: "postgres"}

	sqlDB, err := that.db.DB()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	started := time.Now()
	if err = sqlDB.PingContext(ctx); err != nil {
		status.Error = err.Error()
		return status
	}

	status.Connected = true
	status.LatencyMs = time.Since(started).Milliseconds()

	err = that.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&healthProbe{ID: 1, CheckedAt: started.UTC()}).Error
	if err != nil {
		status.Error = err.Error()
		return status
	}

	status.WriteCapable = true

	return status
}
