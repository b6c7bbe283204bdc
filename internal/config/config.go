// Package config loads the service settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"master_booking/internal/ratelimit"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"production" validate:"required,oneof=development staging production test"`

	Server    ServerConfig
	Logger    LoggerConfig
	Gin       GinConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	AWS       AWSConfig
	Stripe    StripeConfig
	Email     EmailConfig
	OpenAI    OpenAIConfig
	Scheduler SchedulerConfig

	InternalAPIKey string `env:"INTERNAL_API_KEY"`
}

type ServerConfig struct {
	Addr            string        `env:"SERVER_ADDR"             env-default:":8080" validate:"required"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"15s"   validate:"gt=0"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"   validate:"gt=0"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"   validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info" validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `env:"GIN_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

type CORSConfig struct {
	// AllowedOrigins replaces the built-in allow-list when set.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:","`
}

type RateLimitConfig struct {
	Store      string        `env:"RATE_LIMIT_STORE"   env-default:"memory" validate:"required,oneof=memory redis dynamodb"`
	Window     time.Duration `env:"RATE_LIMIT_WINDOW"  env-default:"60s"    validate:"gt=0"`
	Default    int           `env:"RATE_LIMIT_DEFAULT" env-default:"100"    validate:"min=1"`
	Auth       int           `env:"RATE_LIMIT_AUTH"    env-default:"5"      validate:"min=1"`
	Payment    int           `env:"RATE_LIMIT_PAYMENT" env-default:"10"     validate:"min=1"`
	Webhook    int           `env:"RATE_LIMIT_WEBHOOK" env-default:"1000"   validate:"min=1"`
	MaxEntries int           `env:"RATE_LIMIT_MAX_KEYS" env-default:"10000"  validate:"min=1"`
	DynamoDB   string        `env:"RATE_LIMIT_TABLE"   env-default:"rate_limits"`
}

// Rules converts the configured limits into limiter rules.
func (c RateLimitConfig) Rules() map[ratelimit.Class]ratelimit.Rule {
	return map[ratelimit.Class]ratelimit.Rule{
		ratelimit.ClassDefault: {Limit: c.Default, Window: c.Window},
		ratelimit.ClassAuth:    {Limit: c.Auth, Window: c.Window},
		ratelimit.ClassPayment: {Limit: c.Payment, Window: c.Window},
		ratelimit.ClassWebhook: {Limit: c.Webhook, Window: c.Window},
	}
}

type PostgresConfig struct {
	URL         string `env:"DATABASE_URL"`
	MaxConns    int32  `env:"DB_MAX_CONNS"    env-default:"10"    validate:"min=1"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" env-default:"false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"   env-default:"0" validate:"min=0"`
}

type AWSConfig struct {
	Region           string        `env:"AWS_REGION"            env-default:"eu-west-2"                      validate:"required"`
	AccessKeyID      string        `env:"AWS_ACCESS_KEY_ID"     env-default:"local"`
	SecretAccessKey  string        `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	DynamoDBEndpoint string        `env:"DYNAMODB_ENDPOINT"`
	S3Endpoint       string        `env:"S3_ENDPOINT"`
	PartnerBucket    string        `env:"PARTNER_DOCS_BUCKET"   env-default:"partner-docs"                   validate:"required"`
	StoragePublicURL string        `env:"STORAGE_PUBLIC_URL"    env-default:"https://storage.wearemaster.com" validate:"url"`
	UploadURLTTL     time.Duration `env:"UPLOAD_URL_TTL"        env-default:"15m"                            validate:"gt=0"`
}

type StripeConfig struct {
	SecretKey         string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret     string `env:"STRIPE_WEBHOOK_SECRET"`
	MasterClubPriceID string `env:"STRIPE_MASTER_CLUB_PRICE_ID"`
	GatewayMock       string `env:"PAYMENT_GATEWAY_MOCK"`
}

// MockEnabled reports whether the payment gateway should fake provider calls.
func (c StripeConfig) MockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.GatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	From         string `env:"EMAIL_FROM"      env-default:"Master <hello@wearemaster.com>" validate:"required"`
	OpsAddress   string `env:"EMAIL_OPS_TO"    env-default:"hello@wearemaster.com"          validate:"required,email"`
	SiteURL      string `env:"SITE_URL"        env-default:"https://wearemaster.com"        validate:"url"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL"`
	Model   string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini" validate:"required"`
}

type SchedulerConfig struct {
	Enabled          bool          `env:"RECOVERY_ENABLED"  env-default:"true"`
	RecoveryInterval time.Duration `env:"RECOVERY_INTERVAL" env-default:"15m" validate:"gt=0"`
	BatchSize        int           `env:"RECOVERY_BATCH"    env-default:"50"  validate:"min=1"`
}

// IsDevelopment reports whether local origins are allowed.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Load reads the environment and validates the result.
// Secrets are optional here; operations that need one report it when called.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
