package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"autoVoid": map[string]any{
			"strikeThreshold": 3,
			"short": map[string]any{
				"window": "10s",
			},
		},
		"limits": map[string]any{
			"newStudentDefault": 8,
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
		{envKey: "AUTOVOID_STRIKETHRESHOLD", want: "autoVoid.strikeThreshold"},
		{envKey: "AUTOVOID_SHORT_WINDOW", want: "autoVoid.short.window"},
		{envKey: "LIMITS_NEWSTUDENTDEFAULT", want: "limits.newStudentDefault"},
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
