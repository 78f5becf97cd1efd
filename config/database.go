package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		zlog.Debug().Msg("loaded .env")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
	}

	if dbURL == "" {
		host := envOr("DB_HOST", "localhost")
		user := envOr("DB_USER", "postgres")
		password := envOr("DB_PASSWORD", "postgres")
		dbname := envOr("DB_NAME", "aqua_erp")
		port := envOr("DB_PORT", "5432")
		dbURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, password, dbname, port,
		)
	} else {
		// hosted Postgres usually wants sslmode=require
		if !strings.Contains(dbURL, "sslmode=") {
			sep := "?"
			if strings.Contains(dbURL, "?") {
				sep = "&"
			}
			dbURL = dbURL + sep + "sslmode=require"
		}
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("database connection failed")
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		zlog.Warn().Err(err).Msg("could not set session timezone to UTC")
	}

	var dbName, currentUser string
	_ = db.Raw("SELECT current_database()").Scan(&dbName)
	_ = db.Raw("SELECT current_user").Scan(&currentUser)
	zlog.Info().Str("db", dbName).Str("user", currentUser).Msg("database connected")

	DB = db
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
