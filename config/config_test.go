package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("S3_ENDPOINT", "http://127.0.0.1:9000")
	t.Setenv("S3_ACCESS_KEY", "access")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("KAFKA_BROKERS", "127.0.0.1:9092")
	t.Setenv("KAFKA_GROUP_ID", "thumbnails")
	t.Setenv("KAFKA_TOPIC", "image-created")
}

func TestNew_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.UsePreforkMode)
	assert.Equal(t, "images", cfg.S3.Bucket)
	assert.Equal(t, 10*time.Second, cfg.S3.CfgLoadTimeout)
	assert.Equal(t, 2*time.Second, cfg.Thumbnails.CommitTimeout)
	assert.Equal(t, 15*time.Second, cfg.Thumbnails.ProcessTimeout)
	assert.Equal(t, 8*time.Second, cfg.Thumbnails.CPUTimeout)
	assert.Equal(t, 5*time.Second, cfg.Thumbnails.ShutdownTimeout)
	assert.False(t, cfg.Swagger.Enabled)
}

func TestNew_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SWAGGER_ENABLED", "true")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "photos", cfg.S3.Bucket)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Swagger.Enabled)
}
