package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsEmptyValues(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{}}

	if err := applyDefaults(cfg); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}
	if cfg.Env.Timezone != defaultTimezone {
		t.Fatalf("Env.Timezone = %q, want %q", cfg.Env.Timezone, defaultTimezone)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("HTTP.MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Metrics.Path != defaultMetricsPath {
		t.Fatalf("Metrics.Path = %q, want %q", cfg.Metrics.Path, defaultMetricsPath)
	}
}

func TestApplyDefaults_Timezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "named zone", timezone: "Africa/Lagos"},
		{name: "padded zone", timezone: "  Europe/London "},
		{name: "typo", timezone: "Africa/Lagoss", wantErr: true},
		{name: "garbage", timezone: "not a zone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Env.Timezone = tt.timezone

			err := applyDefaults(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("applyDefaults() accepted timezone %q", tt.timezone)
				}

				return
			}
			if err != nil {
				t.Fatalf("applyDefaults() error = %v", err)
			}
			if got := cfg.Location(); got == time.UTC {
				t.Fatalf("Location() fell back to UTC for %q", tt.timezone)
			}
		})
	}
}
