package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"originbot/similarity"
	"originbot/session"
)

// Default configuration values
const (
	DefaultPort      = "8080"
	DefaultSeparator = "VS"
)

// Settings holds runtime configuration resolved from the environment
type Settings struct {
	Addr            string
	Separator       string
	CaseInsensitive bool
	Threshold       float64
	SlotTTL         time.Duration
	KafkaBrokers    []string
	KafkaTopic      string
	KafkaGroupID    string
}

// LoadSettings resolves runtime settings from environment variables,
// falling back to defaults for anything unset.
func LoadSettings() Settings {
	s := Settings{
		Addr:      ":" + GetEnvOrDefault("PORT", DefaultPort),
		Separator: GetEnvOrDefault("COMPARE_SEPARATOR", DefaultSeparator),
		Threshold: similarity.DefaultThreshold,
		SlotTTL:   session.DefaultSlotTTL,
	}

	s.CaseInsensitive = strings.EqualFold(os.Getenv("COMPARE_SEPARATOR_IGNORE_CASE"), "true")

	if v := os.Getenv("SIMILARITY_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil && threshold > 0 {
			s.Threshold = threshold
		} else {
			log.Printf("Warning: invalid SIMILARITY_THRESHOLD %q, using default %.1f", v, s.Threshold)
		}
	}

	if v := os.Getenv("SLOT_TTL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			s.SlotTTL = time.Duration(secs) * time.Second
		} else {
			log.Printf("Warning: invalid SLOT_TTL_SECONDS %q, using default %s", v, s.SlotTTL)
		}
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		s.KafkaBrokers = strings.Split(brokers, ",")
		s.KafkaTopic = GetEnvOrDefault("KAFKA_TOPIC", "originality-checks")
		s.KafkaGroupID = GetEnvOrDefault("KAFKA_GROUP_ID", "originbot")
	}

	return s
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
