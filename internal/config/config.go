package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/weekly-signup/internal/domain"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Port           string
	DataDir        string
	StaticDir      string
	PauseFile      string
	StorageBackend string
	DatabasePath   string
	Timezone       string
	CutoffHour     int
	SlackBotToken  string
	SlackChannelID string
	SummaryTime    string
	SummaryDays    []int
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		DataDir:        getEnv("DATA_DIR", "data"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
		PauseFile:      getEnv("PAUSE_FILE", "public/pause.html"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		DatabasePath:   getEnv("DATABASE_PATH", "./signups.db"),
		Timezone:       getEnv("TIMEZONE", "Europe/Berlin"),
		CutoffHour:     getEnvInt("CUTOFF_HOUR", domain.DefaultCutoffHour),
		SlackBotToken:  getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		SummaryTime:    getEnv("SUMMARY_TIME", "12:00"),
		SummaryDays:    parseDays(getEnv("SUMMARY_DAYS", "7")),
	}
}

// Location resolves Timezone; "Local" means the server's zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlackEnabled reports whether the weekly summary can be posted
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// parseDays parses a comma separated list of ISO weekday numbers, e.g. "6,7"
func parseDays(value string) []int {
	var days []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, ok := domain.WeekdayNumbers[part]
		if !ok {
			log.Printf("Warning: ignoring invalid weekday %q in SUMMARY_DAYS", part)
			continue
		}
		days = append(days, day)
	}
	return days
}
