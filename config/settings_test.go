package config

import (
	"testing"
	"time"
)

func TestLoadSettingsDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CORS_ORIGINS", "SITE_URL", "STORE_TTL_SECONDS", "PRICE_RANGE_MODE", "CLEANUP_INTERVAL_HOURS"} {
		t.Setenv(k, "")
	}

	s := LoadSettings()
	if s.Port != "8080" {
		t.Errorf("Port = %q", s.Port)
	}
	if len(s.CORSOrigins) != 1 || s.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", s.CORSOrigins)
	}
	if s.StoreTTL != 60*time.Second {
		t.Errorf("StoreTTL = %v", s.StoreTTL)
	}
	if s.PriceRangeMode != PriceRangeLegacy {
		t.Errorf("PriceRangeMode = %q", s.PriceRangeMode)
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.vn, https://b.vn ,")
	t.Setenv("SITE_URL", "https://bds.vn/")
	t.Setenv("STORE_TTL_SECONDS", "300")
	t.Setenv("PRICE_RANGE_MODE", "strict")

	s := LoadSettings()
	if s.Port != "9000" || s.SiteURL != "https://bds.vn" {
		t.Errorf("settings = %+v", s)
	}
	if len(s.CORSOrigins) != 2 || s.CORSOrigins[1] != "https://b.vn" {
		t.Errorf("CORSOrigins = %v", s.CORSOrigins)
	}
	if s.StoreTTL != 5*time.Minute {
		t.Errorf("StoreTTL = %v", s.StoreTTL)
	}
	if s.PriceRangeMode != PriceRangeStrict {
		t.Errorf("PriceRangeMode = %q", s.PriceRangeMode)
	}

	t.Setenv("PRICE_RANGE_MODE", "bogus")
	if got := LoadSettings().PriceRangeMode; got != PriceRangeLegacy {
		t.Errorf("unknown mode fell back to %q", got)
	}
}
