package config

import (
	"Frontend/models"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"strings"
	"time"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultAddr       = ":3000"
	DefaultStorageKey = "apiConfig"
	DefaultFilePath   = "data/storage.json"
	DefaultRedisKey   = "harness:"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // file | redis | mysql
	Path   string `yaml:"path"`
	Key    string `yaml:"key"`
	Prefix string `yaml:"prefix"`
}

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type ClientConfig struct {
	//0代表不設定逾時
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Client   ClientConfig   `yaml:"client"`
}

// 讀取設定檔，檔案不存在時使用預設值
func LoadConfig(filename string) (Config, error) {
	var config Config
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyDefaults(&config)
			return config, nil
		}
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode %s: %w", filename, err)
	}

	ApplyDefaults(&config)
	return config, nil
}

// 設定檔路徑，可由環境變數HARNESS_CONFIG覆寫
func Path() string {
	if p := strings.TrimSpace(os.Getenv("HARNESS_CONFIG")); p != "" {
		return p
	}
	return DefaultConfigPath
}

func ApplyDefaults(config *Config) {
	config.Server.Addr = strings.TrimSpace(config.Server.Addr)
	if config.Server.Addr == "" {
		config.Server.Addr = DefaultAddr
	}
	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))
	if config.Storage.Driver == "" {
		config.Storage.Driver = "file"
	}
	if config.Storage.Key == "" {
		config.Storage.Key = DefaultStorageKey
	}
	if config.Storage.Path == "" {
		config.Storage.Path = DefaultFilePath
	}
	if config.Storage.Prefix == "" {
		config.Storage.Prefix = DefaultRedisKey
	}
	if config.Client.Timeout < 0 {
		config.Client.Timeout = 0
	}
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

func SetupMySQLConnection(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.Setting{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func SetupRedisConnection(config Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.Database,
	})
}
