package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
	Minio       MinioConfig
	Session     SessionConfig
	CORS        CORSConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // базовый адрес, по которому отдаются картинки
}

type SessionConfig struct {
	CookieName   string
	TTL          time.Duration
	SecureCookie bool
	// попыток входа в секунду с одного IP
	LoginRate  float64
	LoginBurst int
}

type CORSConfig struct {
	AllowOrigins []string
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"

	envJWTSecret = "JWT_SECRET"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if err = cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	log.Info("config parsed")

	return cfg, nil
}

// applyEnv переносит секреты и адреса внешних сервисов из окружения
func (cfg *Config) applyEnv() error {
	var err error

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	if v := os.Getenv(envMinioEndpoint); v != "" {
		cfg.Minio.Endpoint = v
	}
	if v := os.Getenv(envMinioAccessKey); v != "" {
		cfg.Minio.AccessKey = v
	}
	if v := os.Getenv(envMinioSecretKey); v != "" {
		cfg.Minio.SecretKey = v
	}

	if v := os.Getenv(envJWTSecret); v != "" {
		cfg.JWT.Token = v
	}
	if cfg.JWT.Token == "" {
		return fmt.Errorf("%s is not set", envJWTSecret)
	}
	return nil
}

func (cfg *Config) applyDefaults() {
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session_id"
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.JWT.ExpiresIn <= 0 {
		cfg.JWT.ExpiresIn = cfg.Session.TTL
	}
	if cfg.Session.LoginRate <= 0 {
		cfg.Session.LoginRate = 1
	}
	if cfg.Session.LoginBurst <= 0 {
		cfg.Session.LoginBurst = 5
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "book-office-services-images"
	}
	if cfg.Minio.PublicURL == "" {
		scheme := "http"
		if cfg.Minio.UseSSL {
			scheme = "https"
		}
		cfg.Minio.PublicURL = scheme + "://" + cfg.Minio.Endpoint
	}
}
