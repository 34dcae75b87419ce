package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment once at startup. Secrets and
// connection targets are required; tuning knobs carry defaults. An empty
// REDIS_ADDR or AMQP_URL selects the in-process fallback.

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Identity  IdentityConfig
	Payment   PaymentConfig
	Redis     RedisConfig
	Lock      LockConfig
	Messaging MessagingConfig
	Outbox    OutboxConfig
	Reconcile ReconcileConfig
	Tracing   TracingConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Dhaka"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dhaka"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"21600"` // 6*60*60
}

// JWT backs the local identity provider used in development and e2e runs.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" default:"local-development-secret"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderJWT      = "jwt"
)

type IdentityConfig struct {
	Provider          string `envconfig:"IDENTITY_PROVIDER" default:"firebase"`
	FirebaseProjectID string `envconfig:"FIREBASE_PROJECT_ID"`
	// base64 encoded service account JSON
	FirebaseCredentials string `envconfig:"FIREBASE_CREDENTIALS_BASE64"`
}

type PaymentConfig struct {
	StripeSecret string `envconfig:"STRIPE_SECRET"`
	Currency     string `envconfig:"PAYMENT_CURRENCY" default:"bdt"`
	SiteDomain   string `envconfig:"SITE_DOMAIN" default:"http://localhost:5173"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type LockConfig struct {
	TTL time.Duration `envconfig:"LOCK_TTL" default:"30s"`
}

type MessagingConfig struct {
	AMQPURL  string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"decor.events"`
}

type OutboxConfig struct {
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type ReconcileConfig struct {
	Interval  time.Duration `envconfig:"RECONCILE_INTERVAL" default:"5m"`
	BatchSize int32         `envconfig:"RECONCILE_BATCH_SIZE" default:"20"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"decor-booking"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
			TimeZone: "Asia/Dhaka",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Dhaka",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 21600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Identity: IdentityConfig{
			Provider: IdentityProviderJWT,
		},
		Payment: PaymentConfig{
			Currency:   "bdt",
			SiteDomain: "http://localhost:5173",
		},
		Lock: LockConfig{
			TTL: 5 * time.Second,
		},
		Messaging: MessagingConfig{
			Exchange: "decor.events",
		},
		Outbox: OutboxConfig{
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
		},
		Reconcile: ReconcileConfig{
			Interval:  time.Minute,
			BatchSize: 10,
		},
	}
}
