package config

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
    t.Helper()
    t.Setenv("MONGO_URI", "mongodb://localhost:27017")
    t.Setenv("JWT_SECRET", "s3cret")
    t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
    for _, k := range []string{"APP_ENV", "APP_PORT", "PORT", "MONGO_DB", "ACCESS_TOKEN_TTL_MIN", "CORS_ORIGINS", "EVENT_BROKER", "EVENT_TOPIC", "BOOKING_CONSUMER_ENABLED"} {
        t.Setenv(k, "")
    }
}

func TestLoad_Defaults(t *testing.T) {
    setRequired(t)

    cfg := Load()

    assert.Equal(t, "dev", cfg.Env)
    assert.Equal(t, "5000", cfg.Port)
    assert.Equal(t, "refrigerator_tools", cfg.MongoDB)
    assert.Equal(t, 60, cfg.AccessTTLMin)
    assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
    assert.Equal(t, BrokerNone, cfg.Events.Broker)
    assert.Equal(t, "booking.events", cfg.Events.Topic)
    assert.False(t, cfg.Events.ConsumerEnabled)
}

func TestLoad_Overrides(t *testing.T) {
    setRequired(t)
    t.Setenv("APP_PORT", "8080")
    t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
    t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
    t.Setenv("EVENT_BROKER", "Kafka")
    t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
    t.Setenv("BOOKING_CONSUMER_ENABLED", "yes")

    cfg := Load()

    assert.Equal(t, "8080", cfg.Port)
    assert.Equal(t, 15, cfg.AccessTTLMin)
    assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
    assert.Equal(t, BrokerKafka, cfg.Events.Broker)
    assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
    assert.True(t, cfg.Events.ConsumerEnabled)
}

func TestLoad_SecretAlias(t *testing.T) {
    t.Setenv("MONGO_URI", "mongodb://localhost:27017")
    t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
    t.Setenv("JWT_SECRET", "")
    t.Setenv("ACCESS_TOKEN_SECRET", "legacy")

    assert.Equal(t, "legacy", Load().JWTSecret)
}

func TestLoadEventsConfig_UnknownBroker(t *testing.T) {
    t.Setenv("EVENT_BROKER", "nats")
    assert.Equal(t, BrokerNone, LoadEventsConfig().Broker)
}

func TestEnvInt_RejectsNonPositive(t *testing.T) {
    t.Setenv("X_TTL", "-5")
    assert.Equal(t, 60, envInt("X_TTL", 60))
    t.Setenv("X_TTL", "abc")
    assert.Equal(t, 60, envInt("X_TTL", 60))
}

func TestLoadCLI_StoreOptional(t *testing.T) {
    t.Setenv("MONGO_URI", "")
    t.Setenv("JWT_SECRET", "s3cret")
    t.Setenv("LOG_LEVEL", "")

    cfg := LoadCLI()

    assert.Empty(t, cfg.MongoURI)
    assert.Equal(t, "s3cret", cfg.JWTSecret)
    assert.Equal(t, "warn", cfg.LogLevel)
}

func TestEnvBool(t *testing.T) {
    t.Setenv("X_FLAG", "on")
    assert.True(t, envBool("X_FLAG", false))
    t.Setenv("X_FLAG", "NO")
    assert.False(t, envBool("X_FLAG", true))
    t.Setenv("X_FLAG", "maybe")
    assert.True(t, envBool("X_FLAG", true))
    t.Setenv("X_FLAG", "")
    assert.False(t, envBool("X_FLAG", false))
}
