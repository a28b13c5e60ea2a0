// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// MinJWTSecretLength — минимальная длина секрета HMAC в байтах (256 бит).
const MinJWTSecretLength = 32

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	MongoConnection `yaml:"mongo_connection"`
	RedisConnection `yaml:"redis_connection"`
	RabbitMQ        `yaml:"rabbitmq"`
	JWTToken        `yaml:"jwttoken"`
	RateLimit       `yaml:"rate_limit"`
	Workload        `yaml:"workload"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// MongoConnection структура для настройки подключения к MongoDB
type MongoConnection struct {
	MongoURI        string `yaml:"uri" env:"MONGO_URI" env-required:"true"`
	MongoDatabase   string `yaml:"database" env:"MONGO_DATABASE" env-default:"trainer_workload"`
	MongoCollection string `yaml:"collection" env-default:"trainer_workloads"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кеширование сводок.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
	SummaryTTL   time.Duration `yaml:"summary_ttl" env-default:"1h"`
}

// RabbitMQ структура для настройки брокера сообщений
type RabbitMQ struct {
	RabbitMQURL    string        `yaml:"url" env:"RABBITMQ_URL" env-required:"true"`
	Exchange       string        `yaml:"exchange" env-default:"workload"`
	Queue          string        `yaml:"queue" env-default:"trainer.workload"`
	RoutingKey     string        `yaml:"routing_key" env-default:"workload"`
	DLQueue        string        `yaml:"dlq" env-default:"trainer.workload.dlq"`
	DLRoutingKey   string        `yaml:"dlq_routing_key" env-default:"workload.dlq"`
	Workers        int           `yaml:"workers" env-default:"10"`
	Prefetch       int           `yaml:"prefetch" env-default:"10"`
	ConnectRetries int           `yaml:"connect_retries" env-default:"10"`
	RetryDelay     time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// JWTToken структура для работы с jwt-токеном.
// Пустой секрет отключает проверку токенов.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// RateLimit структура для настройки ограничения частоты запросов
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"50"`
	Burst int     `yaml:"burst" env-default:"100"`
}

// Workload структура для настроек учёта нагрузки
type Workload struct {
	DeleteEmpty bool `yaml:"delete_empty" env:"WORKLOAD_DELETE_EMPTY"`
}

// MustLoad функция для загрузки конфига из файла CONFIG_PATH.
// Перед чтением подгружает переменные из .env, если файл есть.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает и проверяет конфиг по указанному пути.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.JWTSecretKey != "" && len(c.JWTSecretKey) < MinJWTSecretLength {
		return fmt.Errorf("jwt_secret_key must be at least %d bytes", MinJWTSecretLength)
	}
	if c.Workers <= 0 {
		return errors.New("rabbitmq.workers must be positive")
	}
	if c.RPS <= 0 || c.Burst <= 0 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}

// CacheEnabled сообщает, настроен ли Redis.
func (c *Config) CacheEnabled() bool {
	return c.AddressRedis != ""
}

// AuthEnabled сообщает, включена ли проверка JWT.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecretKey != ""
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"MongoConnection:\n"+
			"  Database: %s\n"+
			"  Collection: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  SummaryTTL: %s\n"+
			"RabbitMQ:\n"+
			"  Exchange: %s\n"+
			"  Queue: %s\n"+
			"  DLQ: %s\n"+
			"  Workers: %d\n"+
			"JWTToken:\n"+
			"  Enabled: %t\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n"+
			"Workload:\n"+
			"  DeleteEmpty: %t\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.MongoDatabase,
		c.MongoCollection,
		c.AddressRedis,
		c.DB,
		c.SummaryTTL,
		c.Exchange,
		c.Queue,
		c.DLQueue,
		c.Workers,
		c.AuthEnabled(),
		c.RPS,
		c.Burst,
		c.DeleteEmpty,
	)
}
