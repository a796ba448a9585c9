package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Generator GeneratorConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Env   string
	Level string
}

// GeneratorConfig holds the knobs for keyword extraction and question generation.
type GeneratorConfig struct {
	TopN            int
	MaxTopN         int
	MaxTextLength   int
	KeywordCacheTTL time.Duration
	Batch           BatchConfig
}

type BatchConfig struct {
	MaxSize     int
	Concurrency int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("server.body_limit", 2*1024*1024)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("generator.top_n", 5)
	v.SetDefault("generator.max_top_n", 20)
	v.SetDefault("generator.max_text_length", 100000)
	v.SetDefault("generator.keyword_cache_ttl", 600)
	v.SetDefault("generator.batch.max_size", 20)
	v.SetDefault("generator.batch.concurrency", 4)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  v.GetDuration("server.idle_timeout") * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Generator: GeneratorConfig{
			TopN:            v.GetInt("generator.top_n"),
			MaxTopN:         v.GetInt("generator.max_top_n"),
			MaxTextLength:   v.GetInt("generator.max_text_length"),
			KeywordCacheTTL: v.GetDuration("generator.keyword_cache_ttl") * time.Second,
			Batch: BatchConfig{
				MaxSize:     v.GetInt("generator.batch.max_size"),
				Concurrency: v.GetInt("generator.batch.concurrency"),
			},
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = v.GetInt("server_port")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if topN := os.Getenv("GENERATOR_TOP_N"); topN != "" {
		config.Generator.TopN = v.GetInt("generator_top_n")
	}

	return config
}

// Default returns the configuration used when no file or environment is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}
