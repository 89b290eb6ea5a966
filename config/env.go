package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// AppConfig holds every tunable the server reads from the environment.
type AppConfig struct {
	Port   string `env:"PORT, default=8081"`
	AppEnv string `env:"APP_ENV, default=development"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST, default=localhost"`
	DBPort      string `env:"DB_PORT, default=5432"`
	DBUser      string `env:"DB_USER, default=postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME, default=kartify"`

	RedisURL string `env:"REDIS_URL, default=redis://localhost:6379"`

	// One signing secret per platform. A token minted for one platform
	// must fail verification under another platform's secret.
	AdminJWTSecret  string `env:"ADMIN_JWT_SECRET, default=myjwtadminsecret"`
	DeviceJWTSecret string `env:"DEVICE_JWT_SECRET, default=myjwtdevicesecret"`
	ClientJWTSecret string `env:"CLIENT_JWT_SECRET, default=myjwtclientsecret"`

	TokenExpiry       time.Duration `env:"TOKEN_EXPIRY, default=168h"`
	MaxLoginRetry     int           `env:"MAX_LOGIN_RETRY_LIMIT, default=3"`
	LoginReactiveTime time.Duration `env:"LOGIN_REACTIVE_TIME, default=20m"`
	ResetCodeExpiry   time.Duration `env:"RESET_CODE_EXPIRY, default=20m"`

	// AllowUserWithoutRole preserves the legacy authorization policy:
	// a user with zero role assignments passes every permission check.
	// Set to false to deny such users instead.
	AllowUserWithoutRole bool `env:"ALLOW_USER_WITHOUT_ROLE, default=true"`

	ResetPasswordWithEmail bool `env:"RESET_PASSWORD_WITH_EMAIL, default=true"`
	ResetPasswordWithSMS   bool `env:"RESET_PASSWORD_WITH_SMS, default=false"`

	AppBaseURL      string `env:"APP_BASE_URL, default=http://localhost:8081"`
	ResendAPIKey    string `env:"RESEND_API_KEY"`
	ResendFromEmail string `env:"RESEND_FROM_EMAIL, default=noreply@kartify.shop"`
	SMSGatewayURL   string `env:"SMS_GATEWAY_URL"`
	SMSGatewayKey   string `env:"SMS_GATEWAY_KEY"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
}

// App is the loaded configuration, populated by LoadEnv at startup.
var App AppConfig

// LoadEnv reads .env (when present) and populates App from the
// environment.
func LoadEnv() error {
	_ = godotenv.Load()
	return envconfig.Process(context.Background(), &App)
}
