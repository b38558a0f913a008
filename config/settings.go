package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings là cấu hình chạy server, đọc từ biến môi trường
type Settings struct {
	Port           string
	CORSOrigins    []string
	SiteURL        string
	StoreTTL       time.Duration
	PriceRangeMode string
	CleanupEvery   time.Duration
}

const (
	PriceRangeLegacy = "legacy"
	PriceRangeStrict = "strict"
)

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func LoadSettings() Settings {
	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	mode := getEnv("PRICE_RANGE_MODE", PriceRangeLegacy)
	if mode != PriceRangeStrict {
		mode = PriceRangeLegacy
	}

	return Settings{
		Port:           getEnv("PORT", "8080"),
		CORSOrigins:    origins,
		SiteURL:        strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
		StoreTTL:       time.Duration(getEnvInt("STORE_TTL_SECONDS", 60)) * time.Second,
		PriceRangeMode: mode,
		CleanupEvery:   time.Duration(getEnvInt("CLEANUP_INTERVAL_HOURS", 6)) * time.Hour,
	}
}
