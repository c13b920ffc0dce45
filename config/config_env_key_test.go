package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"remote": map[string]any{
			"baseUrl": "http://localhost:8080",
		},
		"session": map[string]any{
			"userId":      3,
			"cacheTtl":    "600s",
			"refreshSpec": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REMOTE_BASEURL", want: "remote.baseUrl"},
		{envKey: "SESSION_USERID", want: "session.userId"},
		{envKey: "SESSION_CACHETTL", want: "session.cacheTtl"},
		{envKey: "SESSION_REFRESHSPEC", want: "session.refreshSpec"},
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
