package main

import "time"

type Config struct {
	Host             string        `env:"HOST,default=localhost"`
	Port             int           `env:"PORT,default=8080"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	ReportInterval   time.Duration `env:"REPORT_INTERVAL,default=1m"`
	RecentWindowDays int           `env:"RECENT_WINDOW_DAYS,default=7"`
	HealthInterval   time.Duration `env:"HEALTH_INTERVAL,default=30s"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MaxContentLength int           `env:"MAX_CONTENT_LENGTH,default=500"`
	// Empty path keeps the book catalog in memory, like the message store
	BookDBPath string `env:"BOOK_DB_PATH"`
}
