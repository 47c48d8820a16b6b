package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullSet(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_SIGN_KEY", "access-secret")
	t.Setenv("AUTH_REFRESH_TOKEN_SIGN_KEY", "refresh-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "vidora")
	t.Setenv("AUTH_ACCESS_TOKEN_DURATION", "15m")
	t.Setenv("AUTH_REFRESH_TOKEN_DURATION", "240h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/vidora")
	t.Setenv("STORAGE_BLOB_BUCKET", "vidora-media")
	t.Setenv("STORAGE_BLOB_REGION", "us-east-1")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("WORKERS_CLEANUP_INTERVAL", "1m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "access-secret", cfg.Auth.AccessTokenSignKey)
	assert.Equal(t, "refresh-secret", cfg.Auth.RefreshTokenSignKey)
	assert.Equal(t, "vidora", cfg.Auth.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 240*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, "postgres://u:p@localhost:5432/vidora", cfg.Storage.DB.DSN)
	assert.Equal(t, "vidora-media", cfg.Storage.Blob.Bucket)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.CleanupInterval)
}

func TestParseEnv_MalformedDuration(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			Auth: Auth{
				AccessTokenSignKey:   "a",
				RefreshTokenSignKey:  "r",
				TokenIssuer:          "vidora",
				AccessTokenDuration:  15 * time.Minute,
				RefreshTokenDuration: 240 * time.Hour,
			},
			Storage: Storage{
				DB:   DB{DSN: "postgres://localhost/vidora"},
				Blob: Blob{Bucket: "media", Region: "us-east-1"},
			},
			Server: Server{HTTPAddress: ":8080"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("identical sign keys", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.RefreshTokenSignKey = cfg.Auth.AccessTokenSignKey
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
	})

	t.Run("missing issuer", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.TokenIssuer = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing bucket", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Blob.Bucket = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090"},
		{name: "empty host", input: ":8080"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}
