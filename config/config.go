package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int    `yaml:"port"`
	Mode         string `yaml:"mode"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// MySQLConfig holds the main datastore settings.
type MySQLConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	DBName       string `yaml:"dbname"`
	MaxOpenConns int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	// Catalog cache TTL in seconds, 0 disables caching.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" mapstructure:"cache_ttl_seconds"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours" mapstructure:"expire_hours"`
}

type Logger struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// MQConfig configures the RabbitMQ producer pool used for order events.
// An empty Host disables event publishing.
type MQConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Exchange        string `yaml:"exchange"`
	ChannelPoolSize int    `yaml:"channel_pool_size" mapstructure:"channel_pool_size"`
}

// AWSConfig carries the S3 credentials for product image uploads.
type AWSConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
}

// AdminSeed is the bootstrap admin account created at startup when missing.
type AdminSeed struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Phone    string `yaml:"phone"`
}

type RateLimitRule struct {
	RPS   int `yaml:"rps" mapstructure:"rps"`
	Burst int `yaml:"burst" mapstructure:"burst"`
}

type RateLimitsConfig struct {
	Global RateLimitRule `yaml:"global" mapstructure:"global"`
	Order  RateLimitRule `yaml:"order" mapstructure:"order"`
}

type Database struct {
	Mysql MySQLConfig `yaml:"mysql"`
	Redis RedisConfig `yaml:"redis"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   Database         `yaml:"database"`
	JWT        JWTConfig        `yaml:"jwt"`
	Logger     Logger           `yaml:"log" mapstructure:"log"`
	MQ         MQConfig         `yaml:"mq"`
	AWS        AWSConfig        `yaml:"aws"`
	Admin      AdminSeed        `yaml:"admin"`
	RateLimits RateLimitsConfig `yaml:"rate_limits" mapstructure:"rate_limits"`
}

func InitConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %v", err)
	}

	var globalConfig Config
	if err := viper.Unmarshal(&globalConfig); err != nil {
		return nil, fmt.Errorf("parse config file: %v", err)
	}

	applyDefaults(&globalConfig)

	return &globalConfig, nil
}

// LoadConfig loads config/config.yaml, falling back to the path relative to
// a binary started from cmd/<name>.
func LoadConfig() (*Config, error) {
	cfg, err := InitConfig("config/config.yaml")
	if err != nil {
		cfg, err = InitConfig("../../config/config.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %v", err)
		}
	}

	return cfg, nil
}

// applyDefaults fills zero values so a sparse config file still yields a
// runnable server.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "debug"
	}
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 6
	}
	if cfg.Database.Mysql.MaxOpenConns <= 0 {
		cfg.Database.Mysql.MaxOpenConns = 50
	}
	if cfg.Database.Mysql.MaxIdleConns <= 0 {
		cfg.Database.Mysql.MaxIdleConns = 10
	}
	if cfg.Database.Redis.CacheTTLSeconds < 0 {
		cfg.Database.Redis.CacheTTLSeconds = 0
	}
	if cfg.MQ.ChannelPoolSize <= 0 {
		cfg.MQ.ChannelPoolSize = 8
	}
	if cfg.MQ.Exchange == "" {
		cfg.MQ.Exchange = "ecom.events"
	}
	if cfg.RateLimits.Global.RPS == 0 {
		cfg.RateLimits.Global.RPS = 1000
	}
	if cfg.RateLimits.Global.Burst == 0 {
		cfg.RateLimits.Global.Burst = 2000
	}
	if cfg.RateLimits.Order.RPS == 0 {
		cfg.RateLimits.Order.RPS = 500
	}
	if cfg.RateLimits.Order.Burst == 0 {
		cfg.RateLimits.Order.Burst = 1000
	}
}
