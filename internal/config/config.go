package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	SheetsURL     string
	Environment   string
	LogDir        string
	HTTPTimeout   time.Duration
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		SheetsURL:     os.Getenv("SHEETS_URL"),
		Environment:   os.Getenv("ENV"),
		LogDir:        os.Getenv("LOG_DIR"),
	}

	// Дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "logs"
	}

	// Таймаут внешнего вызова в таблицу, в секундах
	cfg.HTTPTimeout = 15 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT must be a positive number of seconds, got %q", raw)
		}
		cfg.HTTPTimeout = time.Duration(seconds) * time.Second
	}

	// Обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.SheetsURL == "" {
		return nil, fmt.Errorf("SHEETS_URL is required but not set")
	}

	return cfg, nil
}
