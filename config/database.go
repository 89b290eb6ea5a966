package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// DB is the GORM handle used by the store layer.
	DB *gorm.DB
	// Pool is a raw pgx pool kept for the login-event audit path, which
	// writes with plain SQL.
	Pool *pgxpool.Pool
)

func InitDB() {
	initPgx()
	initGORM()
}

func pgxURL() string {
	if App.DatabaseURL != "" {
		return App.DatabaseURL
	}
	log.Warn().Msg("[config.db] DATABASE_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		App.DBUser, App.DBPassword, App.DBHost, App.DBPort, App.DBName,
	)
}

func gormDSN() string {
	if App.DatabaseURL != "" {
		return App.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		App.DBHost, App.DBUser, App.DBPassword, App.DBName, App.DBPort,
	)
}

func initPgx() {
	var err error
	Pool, err = pgxpool.New(context.Background(), pgxURL())
	if err != nil {
		log.Fatal().Err(err).Msg("[config.db] unable to connect (pgx)")
	}
	if err = Pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("[config.db] ping failed (pgx)")
	}
	log.Info().Msg("[config.db] connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if App.AppEnv == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(gormDSN()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatal().Err(err).Msg("[config.db] unable to connect (GORM)")
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Info().Msg("[config.db] connected (GORM)")
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
	}
	if DB != nil {
		if sqlDB, _ := DB.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
	log.Info().Msg("[config.db] connections closed")
}

// WithTimeout returns a context with the standard per-request database
// deadline.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
