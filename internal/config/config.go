package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Community CommunityConfig `yaml:"community"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds authentication and OAuth settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"asklocal"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"15m"`
	RefreshTokenTTL    time.Duration `yaml:"refresh_token_ttl"    env:"AUTH_REFRESH_TOKEN_TTL"    env-default:"720h"`
	PasswordHashCost   int           `yaml:"password_hash_cost"   env:"AUTH_PASSWORD_HASH_COST"   env-default:"12"`
	KakaoClientID      string        `yaml:"kakao_client_id"      env:"AUTH_KAKAO_CLIENT_ID"`
	KakaoClientSecret  string        `yaml:"kakao_client_secret"  env:"AUTH_KAKAO_CLIENT_SECRET"`
	KakaoRedirectURI   string        `yaml:"kakao_redirect_uri"   env:"AUTH_KAKAO_REDIRECT_URI"`
	NaverClientID      string        `yaml:"naver_client_id"      env:"AUTH_NAVER_CLIENT_ID"`
	NaverClientSecret  string        `yaml:"naver_client_secret"  env:"AUTH_NAVER_CLIENT_SECRET"`
	NaverRedirectURI   string        `yaml:"naver_redirect_uri"   env:"AUTH_NAVER_REDIRECT_URI"`
	GoogleClientID     string        `yaml:"google_client_id"     env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `yaml:"google_redirect_uri"  env:"AUTH_GOOGLE_REDIRECT_URI"`
}

// CommunityConfig holds Q&A and gamification settings.
type CommunityConfig struct {
	// AdoptPoints is the fixed award granted to an answer author on adoption.
	AdoptPoints int `yaml:"adopt_points" env:"COMMUNITY_ADOPT_POINTS" env-default:"20"`
	// InboxCap bounds the per-user notification backlog; oldest entries are
	// evicted first.
	InboxCap int `yaml:"inbox_cap" env:"COMMUNITY_INBOX_CAP" env-default:"50"`
	// ToastAutoDismiss is the auto-dismiss delay clients apply to
	// notification toasts.
	ToastAutoDismiss      time.Duration `yaml:"toast_auto_dismiss"     env:"COMMUNITY_TOAST_AUTO_DISMISS"     env-default:"3s"`
	NotificationRetention time.Duration `yaml:"notification_retention" env:"COMMUNITY_NOTIFICATION_RETENTION" env-default:"720h"`
	MaxTitleLen           int           `yaml:"max_title_len"          env:"COMMUNITY_MAX_TITLE_LEN"          env-default:"200"`
	MaxBodyLen            int           `yaml:"max_body_len"           env:"COMMUNITY_MAX_BODY_LEN"           env-default:"10000"`
	PageSizeDefault       int           `yaml:"page_size_default"      env:"COMMUNITY_PAGE_SIZE_DEFAULT"      env-default:"20"`
	PageSizeMax           int           `yaml:"page_size_max"          env:"COMMUNITY_PAGE_SIZE_MAX"          env-default:"100"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// AllowedProviders returns the list of configured OAuth providers.
// A provider is considered configured if all its required credentials are present.
func (c AuthConfig) AllowedProviders() []string {
	var providers []string
	if c.KakaoClientID != "" && c.KakaoClientSecret != "" {
		providers = append(providers, "kakao")
	}
	if c.NaverClientID != "" && c.NaverClientSecret != "" {
		providers = append(providers, "naver")
	}
	if c.GoogleClientID != "" && c.GoogleClientSecret != "" {
		providers = append(providers, "google")
	}
	return providers
}

// IsProviderAllowed checks if the given provider string is configured.
func (c AuthConfig) IsProviderAllowed(provider string) bool {
	return slices.Contains(c.AllowedProviders(), provider)
}
