package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "newswire",
		},
		"token": map[string]any{
			"accessTTL": "15m",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "matches camelCase leaf",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "matches camelCase leaf with abbreviation",
			rawKey: "POSTGRES_DBNAME",
			want:   "postgres.dbName",
		},
		{
			name:   "matches TTL suffix",
			rawKey: "TOKEN_ACCESSTTL",
			want:   "token.accessTTL",
		},
		{
			name:   "unknown segments fall back to lowercase",
			rawKey: "SUPERUSER_EMAIL",
			want:   "superuser.email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canonicalizeEnvKey(tt.rawKey, existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "accessttl", normalizeToken("accessTTL"))
	assert.Equal(t, "dbname", normalizeToken("db_name"))
}
