package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	RateLimit  RateLimitConfig
	Dispatcher DispatcherConfig
	Functions  FunctionsConfig
	Stripe     StripeConfig
	Referral   ReferralConfig
	Mail       MailConfig
	Relay      RelayConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64       `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst             int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	IdleTTL           time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

// DispatcherConfig drives the scheduled follow-up dispatcher.
type DispatcherConfig struct {
	Interval        time.Duration `envconfig:"DISPATCH_INTERVAL" default:"1m"`
	BatchSize       int32         `envconfig:"DISPATCH_BATCH_SIZE" default:"100"`
	Lease           time.Duration `envconfig:"DISPATCH_LEASE" default:"5m"`
	ItemTimeout     time.Duration `envconfig:"DISPATCH_ITEM_TIMEOUT" default:"10s"`
	DuplicateWindow time.Duration `envconfig:"FOLLOWUP_DUPLICATE_WINDOW" default:"24h"`
}

type FunctionsConfig struct {
	CronSecret string `envconfig:"FUNCTIONS_CRON_SECRET" required:"true"`
}

type StripeConfig struct {
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	Tolerance     time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
}

type ReferralConfig struct {
	CommissionCents int64  `envconfig:"REFERRAL_COMMISSION_CENTS" default:"2500"`
	Currency        string `envconfig:"REFERRAL_COMMISSION_CURRENCY" default:"usd"`
}

type MailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"TalentBridge"`
	FromAddress    string `envconfig:"MAIL_FROM_ADDRESS" default:"no-reply@talentbridge.local"`
}

type RelayConfig struct {
	Interval    time.Duration `envconfig:"RELAY_INTERVAL" default:"15s"`
	BatchSize   int32         `envconfig:"RELAY_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"RELAY_MAX_ATTEMPTS" default:"5"`
	Backoff     time.Duration `envconfig:"RELAY_BACKOFF" default:"1m"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// KafkaConfig leaves Brokers empty to disable activity events.
type KafkaConfig struct {
	Brokers       []string `envconfig:"KAFKA_BROKERS" default:""`
	ActivityTopic string   `envconfig:"KAFKA_ACTIVITY_TOPIC" default:"talentbridge.activity"`
	GroupID       string   `envconfig:"KAFKA_GROUP_ID" default:"talentbridge-gamification"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
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
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
			IdleTTL:           time.Minute,
		},
		Dispatcher: DispatcherConfig{
			Interval:        time.Minute,
			BatchSize:       100,
			Lease:           5 * time.Minute,
			ItemTimeout:     10 * time.Second,
			DuplicateWindow: 24 * time.Hour,
		},
		Functions: FunctionsConfig{
			CronSecret: "test-cron-secret",
		},
		Stripe: StripeConfig{
			WebhookSecret: "whsec_test_secret",
			Tolerance:     5 * time.Minute,
		},
		Referral: ReferralConfig{
			CommissionCents: 2500,
			Currency:        "usd",
		},
		Mail: MailConfig{
			FromName:    "TalentBridge",
			FromAddress: "no-reply@talentbridge.local",
		},
		Relay: RelayConfig{
			Interval:    15 * time.Second,
			BatchSize:   50,
			MaxAttempts: 5,
			Backoff:     time.Minute,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Kafka: KafkaConfig{
			ActivityTopic: "talentbridge.activity",
			GroupID:       "talentbridge-gamification",
		},
	}
}
