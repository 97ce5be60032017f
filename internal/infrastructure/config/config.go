package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "blogsummarizer/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Archive  sharedConfig.ArchiveConfig  `mapstructure:"archive"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Scraper  sharedConfig.ScraperConfig  `mapstructure:"scraper"`
	Lexicon  sharedConfig.LexiconConfig  `mapstructure:"lexicon"`
	Store    sharedConfig.StoreConfig    `mapstructure:"store"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error: defaults plus BLOGSUM_* variables are enough
// to run against local backends.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("BLOGSUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects driver names the composition root cannot wire.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database.driver %q (want postgres, mysql or sqlite)", c.Database.Driver)
	}

	switch c.Archive.Driver {
	case "mongo", "redis":
	default:
		return fmt.Errorf("unsupported archive.driver %q (want mongo or redis)", c.Archive.Driver)
	}

	if len(c.Scraper.Selectors) == 0 {
		return fmt.Errorf("scraper.selectors must not be empty")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 60)

	// Primary store defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.database", "blogsummarizer")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "blogsummarizer.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Secondary store defaults
	v.SetDefault("archive.driver", "mongo")
	v.SetDefault("archive.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("archive.mongo.database", "blogSummarizer")
	v.SetDefault("archive.mongo.collection", "blogs")
	v.SetDefault("archive.key_prefix", "blogsum:blog:")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Scraper defaults
	v.SetDefault("scraper.timeout_seconds", 15)
	v.SetDefault("scraper.user_agent", "blogsummarizer/1.0")
	v.SetDefault("scraper.selectors", []string{"article p"})
	v.SetDefault("scraper.max_body_bytes", 5<<20)

	// Lexicon defaults (empty path means the embedded data file)
	v.SetDefault("lexicon.path", "")

	// Store defaults
	v.SetDefault("store.parallel_writes", false)
	v.SetDefault("store.write_timeout_seconds", 10)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
}
