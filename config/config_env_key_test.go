package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeEnvKey_NestedSections(t *testing.T) {
	existing := map[string]any{
		"rabbitmq": map[string]any{
			"url":      "",
			"prefetch": 10,
		},
		"cache": map[string]any{
			"menuTTL": "5m",
		},
		"aws": map[string]any{
			"region": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "RABBITMQ_URL", want: "rabbitmq.url"},
		{envKey: "CACHE_MENUTTL", want: "cache.menuTTL"},
		{envKey: "AWS_REGION", want: "aws.region"},
		{envKey: "AWS_SMS_SENDERID", want: "aws.sms.senderid"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Timezone = "Africa/Lagos"
	if got := cfg.Location().String(); got != "Africa/Lagos" {
		t.Fatalf("Location() = %q, want Africa/Lagos", got)
	}

	cfg.Env.Timezone = "Not/AZone"
	if got := cfg.Location(); got != time.UTC {
		t.Fatalf("Location() = %v, want UTC fallback", got)
	}
}
