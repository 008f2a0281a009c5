package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_HOST", "DB_PORT", "REDIS_HOST", "KAFKA_BROKER", "KAFKA_TOPIC", "CACHE_TTL", "PUBLIC_BASE_URL", "KAFKA_GROUP_ID", "RESERVATION_SVC_URL", "ACTIVITY_SVC_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "reservation-events", cfg.KafkaTopic)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, "activity-svc-consumer", cfg.KafkaGroupID)
	assert.Equal(t, "http://localhost:8081", cfg.ReservationSvcURL)
	assert.Equal(t, "http://localhost:8083", cfg.ActivitySvcURL)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.EventsEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("CACHE_TTL", "30s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.EventsEnabled())
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "reservations", DBSSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=reservations sslmode=disable", cfg.PostgresDSN())
}

func TestNewKafkaWriter(t *testing.T) {
	writer := NewKafkaWriter(Config{KafkaBroker: "kafka:9092", KafkaTopic: "reservation-events"})
	defer writer.Close()

	assert.Equal(t, "reservation-events", writer.Topic)
	assert.Equal(t, KafkaBatchTimeout, writer.BatchTimeout)
	assert.LessOrEqual(t, writer.BatchTimeout, 50*time.Millisecond)
	assert.False(t, writer.Async)
}
