package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, OAuth credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	OAuth  OAuthConfig
	App    AppConfig
	Mail   MailConfig
	Notify NotifyConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3001"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
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

// JWTConfig signs the session token that carries the caller identity.
type JWTConfig struct {
	Secret   string `envconfig:"SESSION_SECRET" required:"true"`
	Duration string `envconfig:"SESSION_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type OAuthConfig struct {
	ClientID     string   `envconfig:"GOOGLE_CLIENT_ID" required:"true"`
	ClientSecret string   `envconfig:"GOOGLE_CLIENT_SECRET" required:"true"`
	CallbackURL  string   `envconfig:"OAUTH_CALLBACK_URL" default:"http://localhost:3000/auth/callback"`
	Scopes       []string `envconfig:"OAUTH_SCOPES" default:"openid,profile,email"`
	UserInfoURL  string   `envconfig:"OAUTH_USERINFO_URL" default:"https://openidconnect.googleapis.com/v1/userinfo"`
}

// AppConfig holds the browser facing URLs used for redirects and email links.
type AppConfig struct {
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3001"`
}

type MailConfig struct {
	// "smtp" delivers through the SMTP relay, "log" only writes the message to the log
	Driver   string `envconfig:"MAIL_DRIVER" default:"log"`
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"MAIL_FROM" default:"no-reply@purchase-approval.local"`
}

type NotifyConfig struct {
	Workers     int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize   int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"100"`
	SendTimeout time.Duration `envconfig:"NOTIFY_SEND_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads a .env file when one exists and then processes the environment.
func LoadConfig() (Config, error) {
	// variables already present in the environment win over .env entries
	_ = godotenv.Load()

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
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-session-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		OAuth: OAuthConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			CallbackURL:  "http://localhost:8889/auth/callback",
			Scopes:       []string{"openid", "profile", "email"},
			UserInfoURL:  "http://localhost:8889/userinfo",
		},
		App: AppConfig{
			FrontendURL: "http://localhost:3001",
		},
		Mail: MailConfig{
			Driver: "log",
			From:   "no-reply@purchase-approval.local",
		},
		Notify: NotifyConfig{
			Workers:     1,
			QueueSize:   16,
			SendTimeout: 2 * time.Second,
		},
	}
}
