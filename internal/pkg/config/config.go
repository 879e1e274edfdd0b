package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, gateway keys), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	PayOS      PayOSConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Fulfilment FulfilmentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Idempotency-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

// PayOSConfig holds the merchant credentials for the hosted checkout.
type PayOSConfig struct {
	BaseURL     string        `envconfig:"PAYOS_BASE_URL" default:"https://api-merchant.payos.vn"`
	ClientID    string        `envconfig:"PAYOS_CLIENT_ID" required:"true"`
	APIKey      string        `envconfig:"PAYOS_API_KEY" required:"true"`
	ChecksumKey string        `envconfig:"PAYOS_CHECKSUM_KEY" required:"true"`
	ReturnURL   string        `envconfig:"PAYOS_RETURN_URL" required:"true"`
	CancelURL   string        `envconfig:"PAYOS_CANCEL_URL" required:"true"`
	Timeout     time.Duration `envconfig:"PAYOS_TIMEOUT" default:"10s"`
}

// RedisConfig: empty Addr disables checkout replay.
type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL        time.Duration `envconfig:"REDIS_IDEMPOTENCY_LOCK_TTL" default:"30s"`
	IdempotencyTTL time.Duration `envconfig:"REDIS_IDEMPOTENCY_TTL" default:"24h"`
}

// KafkaConfig: empty Brokers disables the outbox relay.
type KafkaConfig struct {
	Brokers       []string      `envconfig:"KAFKA_BROKERS"`
	Topic         string        `envconfig:"KAFKA_TOPIC" default:"smartbus.fare-events"`
	RelayInterval time.Duration `envconfig:"KAFKA_RELAY_INTERVAL" default:"2s"`
	BatchSize     int32         `envconfig:"KAFKA_RELAY_BATCH_SIZE" default:"50"`
	// processing rows older than this are claimed again
	RelayLease time.Duration `envconfig:"KAFKA_RELAY_LEASE" default:"1m"`
}

type FulfilmentConfig struct {
	// upper bound on tickets in a single checkout
	MaxItemsPerOrder int `envconfig:"FULFILMENT_MAX_ITEMS_PER_ORDER" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Ho_Chi_Minh",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-do-not-use",
			Duration: "1h",
		},
		PayOS: PayOSConfig{
			BaseURL:     "http://127.0.0.1:0",
			ClientID:    "test-client",
			APIKey:      "test-api-key",
			ChecksumKey: "test-checksum-key",
			ReturnURL:   "http://localhost:3000/payment/success",
			CancelURL:   "http://localhost:3000/payment/cancel",
			Timeout:     2 * time.Second,
		},
		Redis: RedisConfig{
			LockTTL:        5 * time.Second,
			IdempotencyTTL: time.Hour,
		},
		Kafka: KafkaConfig{
			Topic:         "smartbus.fare-events.test",
			RelayInterval: 100 * time.Millisecond,
			BatchSize:     10,
			RelayLease:    time.Minute,
		},
		Fulfilment: FulfilmentConfig{
			MaxItemsPerOrder: 20,
		},
	}
}
