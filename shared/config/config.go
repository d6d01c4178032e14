package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	ServerName  string
	Version     string
	Environment string
	HTTPPort    int
	HealthPort  int

	Postgres PostgresConfig
	Redis    RedisConfig
	RocketMQ RocketMQConfig
	Consul   ConsulConfig
	Auth     AuthConfig
	Log      LogConfig
}

type PostgresConfig struct {
	Address  string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Address      string
	Port         int
	Password     string
	Database     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
}

type RocketMQConfig struct {
	NameServers []string
	GroupName   string
	MaxRetries  int
}

type ConsulConfig struct {
	Address    string
	Scheme     string
	Datacenter string
	Enabled    bool
}

type AuthConfig struct {
	JwtSecret      string
	ExpireAccessH  int
	ExpireRefreshH int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// LoadConfig builds the configuration from environment variables. When
// CONFIG_FILE points at a YAML file, values from the file are loaded into
// the environment first so the same keys work either way.
func LoadConfig(serviceName string) *AppConfig {
	loadFileIntoEnv()

	return &AppConfig{
		ServerName:  serviceName,
		Version:     getEnv("APP_VERSION", "1.0.0"),
		Environment: getEnv("APP_ENV", "development"),
		HTTPPort:    getEnvInt("APP_PORT", 8080),
		HealthPort:  getEnvInt("HEALTH_PORT", 8081),

		Postgres: PostgresConfig{
			Address:  getEnv("PG_ADDR", "localhost"),
			Port:     getEnvInt("PG_PORT", 5432),
			User:     getEnv("PG_USER", "marketplace"),
			Password: getEnv("PG_PASSWD", "marketplace-passwd"),
			DBName:   getEnv("PG_DBNAME", "marketplace"),
			SSLMode:  getEnv("PG_SSLMODE", "disable"),
		},

		Redis: RedisConfig{
			Address:      getEnv("REDIS_ADDR", "localhost"),
			Port:         getEnvInt("REDIS_PORT", 6379),
			Password:     getEnv("REDIS_PASSWORD", ""),
			Database:     getEnvInt("REDIS_DATABASE", 0),
			DialTimeout:  time.Duration(getEnvInt("REDIS_DIAL_TIMEOUT_MS", 5000)) * time.Millisecond,
			ReadTimeout:  time.Duration(getEnvInt("REDIS_READ_TIMEOUT_MS", 3000)) * time.Millisecond,
			WriteTimeout: time.Duration(getEnvInt("REDIS_WRITE_TIMEOUT_MS", 3000)) * time.Millisecond,
			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
		},

		RocketMQ: RocketMQConfig{
			NameServers: splitCSV(getEnv("ROCKETMQ_NAME_SERVERS", "")),
			GroupName:   getEnv("ROCKETMQ_GROUP", "marketplace"),
			MaxRetries:  getEnvInt("ROCKETMQ_MAX_RETRIES", 2),
		},

		Consul: ConsulConfig{
			Address:    getEnv("CONSUL_ADDRESS", "localhost:8500"),
			Scheme:     getEnv("CONSUL_SCHEME", "http"),
			Datacenter: getEnv("CONSUL_DATACENTER", "dc1"),
			Enabled:    getEnvBool("CONSUL_ENABLED", false),
		},

		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", "vendor-elite-secret"),
			ExpireAccessH:  getEnvInt("JWT_EXPIRE_ACCESS_H", 24),
			ExpireRefreshH: getEnvInt("JWT_EXPIRE_REFRESH_H", 168),
		},

		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", true),
		},
	}
}

func loadFileIntoEnv() {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return
	}
	for _, key := range v.AllKeys() {
		envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if os.Getenv(envKey) == "" {
			os.Setenv(envKey, v.GetString(key))
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
