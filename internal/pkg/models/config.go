package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Push     PushConfig
	Logger   LoggerConfig
}

// AppConfig represents application metadata configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig represents PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig represents NATS configuration
type NATSConfig struct {
	URL string `json:"url"`
}

// NSQConfig represents NSQ configuration
type NSQConfig struct {
	Address string `json:"address"`
}

// JWTConfig represents JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // minutes
	Issuer     string `json:"issuer"`
}

// OTPConfig represents OTP issuance configuration
type OTPConfig struct {
	TTLMinutes       int `json:"ttl_minutes"`
	SweepSeconds     int `json:"sweep_seconds"`
	RateLimitMax     int `json:"rate_limit_max"`
	RateWindowMinute int `json:"rate_window_minute"`
	NotifyTimeoutSec int `json:"notify_timeout_sec"`
}

// PushConfig represents FCM push delivery configuration
type PushConfig struct {
	Endpoint  string `json:"endpoint"`
	ServerKey string `json:"server_key"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
