package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory"
	"github.com/gofiber/storage/redis"
	"github.com/gofiber/storage/sqlite3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// NewStorage returns the backing store for the rate limiter. Defaults
// to in-process memory which is fine for a single instance; use redis
// when running more than one.
func NewStorage() fiber.Storage {
	switch viper.GetString("storage") {
	case "redis":
		log.Info("Using redis storage")
		return redis.New(redis.Config{
			URL:   viper.GetString("redis"),
			Reset: false,
		})
	case "sqlite3":
		log.Info("Using sqlite3 storage")
		return sqlite3.New(sqlite3.Config{
			Database: viper.GetString("storage_db"),
			Table:    "planx_storage",
		})
	default:
		log.Info("Using memory storage")
		return memory.New()
	}
}
