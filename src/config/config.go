package config

import (
	"os"
	"time"
)

// const baseURL = "http://localhost:8080/api/v1"

func APIBaseURL() string {
	API_BASE_URL := os.Getenv("API_BASE_URL")
	if API_BASE_URL == "" {
		return "http://localhost:8080/api/v1"
	}
	return API_BASE_URL
}

func SessionFilePath() string {
	SESSION_FILE := os.Getenv("SESSION_FILE")
	if SESSION_FILE == "" {
		return ".blacktie-session.json"
	}
	return SESSION_FILE
}

func TempDir() string {
	TEMP_DIR := os.Getenv("TEMP_DIR")
	if TEMP_DIR == "" {
		return os.TempDir()
	}
	return TEMP_DIR
}

func RequestTimeout() time.Duration {
	return 10 * time.Second
}

// CountdownTickInterval is how often booking countdowns are recomputed
// while a list view is mounted.
func CountdownTickInterval() time.Duration {
	return time.Second
}

// NotificationPollInterval matches the server contract: notifications are
// polled every 30 seconds while a view is mounted.
func NotificationPollInterval() time.Duration {
	return 30 * time.Second
}

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"
