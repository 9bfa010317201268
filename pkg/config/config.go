package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-bank/pkg/mysql"
)

// Store 實作種類
const (
	StoreTypeMutex  = "mutex"  // RWMutex 保護的 map (預設)
	StoreTypeSerial = "serial" // 單一 goroutine 事件迴圈
)

// Seed 來源種類
const (
	SeedSourceStatic = "static" // 設定檔內列出的帳戶 (預設)
	SeedSourceMySQL  = "mysql"  // 啟動時從 MySQL accounts 表唯讀載入
)

// Config 是整個服務的設定
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	Seed   SeedConfig   `yaml:"seed"`
	MySQL  mysql.Config `yaml:"mysql"`
}

// ServerConfig HTTP 伺服器設定
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// AllowedOrigins CORS 白名單，空列表表示不開放跨來源
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig 日誌設定
type LogConfig struct {
	Level string `yaml:"level"` // debug / info / warn / error
}

// StoreConfig 記憶體 Store 實作選擇
type StoreConfig struct {
	Type string `yaml:"type"` // mutex / serial
}

// SeedConfig 啟動時初始帳戶來源
type SeedConfig struct {
	Source   string        `yaml:"source"` // static / mysql
	Accounts []SeedAccount `yaml:"accounts"`
}

// SeedAccount 設定檔內的一筆初始帳戶
type SeedAccount struct {
	Identifier string  `yaml:"identifier"`
	Balance    float64 `yaml:"balance"`
}

// Load 讀取並解析 YAML 設定檔，補全預設值後回傳
//
// 參數:
//
//	path: 設定檔路徑
//
// 回傳:
//
//	Config: 完整設定
//	error: 讀檔、解析或內容不合法的錯誤
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults 補全未設定的欄位
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Store.Type == "" {
		c.Store.Type = StoreTypeMutex
	}
	if c.Seed.Source == "" {
		c.Seed.Source = SeedSourceStatic
	}
	c.MySQL.ApplyDefaults()
}

func (c *Config) validate() error {
	switch c.Store.Type {
	case StoreTypeMutex, StoreTypeSerial:
	default:
		return fmt.Errorf("invalid store type: %q", c.Store.Type)
	}
	switch c.Seed.Source {
	case SeedSourceStatic, SeedSourceMySQL:
	default:
		return fmt.Errorf("invalid seed source: %q", c.Seed.Source)
	}
	return nil
}
