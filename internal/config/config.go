package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Game     GameConfig     `yaml:"game"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
	StaticDir      string `yaml:"static_dir"` // 浏览器端静态资源目录，留空则不提供
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 牌桌配置
type GameConfig struct {
	MinBet int `yaml:"min_bet"`
	MaxBet int `yaml:"max_bet"`

	// 庄家行动的节奏延迟（毫秒），只影响观感
	RevealDelay int `yaml:"reveal_delay"`
	DrawDelay   int `yaml:"draw_delay"`
	SettleDelay int `yaml:"settle_delay"`
}

// RevealDelayDuration 返回庄家亮牌后的等待时长
func (c *GameConfig) RevealDelayDuration() time.Duration {
	return time.Duration(c.RevealDelay) * time.Millisecond
}

// DrawDelayDuration 返回庄家每张牌之间的等待时长
func (c *GameConfig) DrawDelayDuration() time.Duration {
	return time.Duration(c.DrawDelay) * time.Millisecond
}

// SettleDelayDuration 返回结算前的等待时长
func (c *GameConfig) SettleDelayDuration() time.Duration {
	return time.Duration(c.SettleDelay) * time.Millisecond
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string           `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig    `yaml:"rate_limit"`
	MessageLimit   MessageLimitConfig `yaml:"message_limit"`
}

// RateLimitConfig 连接速率限制配置
type RateLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
	MaxPerMinute int `yaml:"max_per_minute"`
	BanDuration  int `yaml:"ban_duration"` // 秒
}

// BanDurationTime 返回封禁时长
func (c *RateLimitConfig) BanDurationTime() time.Duration {
	return time.Duration(c.BanDuration) * time.Second
}

// MessageLimitConfig 消息速率限制配置
type MessageLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults 填充未设置的字段
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 2121
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = 1024
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Game.MinBet == 0 {
		c.Game.MinBet = 1
	}
	if c.Game.MaxBet == 0 {
		c.Game.MaxBet = 10000
	}
	if c.Game.RevealDelay == 0 {
		c.Game.RevealDelay = 600
	}
	if c.Game.DrawDelay == 0 {
		c.Game.DrawDelay = 800
	}
	if c.Game.SettleDelay == 0 {
		c.Game.SettleDelay = 500
	}
	if c.Security.RateLimit.MaxPerSecond == 0 {
		c.Security.RateLimit.MaxPerSecond = 10
	}
	if c.Security.RateLimit.MaxPerMinute == 0 {
		c.Security.RateLimit.MaxPerMinute = 100
	}
	if c.Security.RateLimit.BanDuration == 0 {
		c.Security.RateLimit.BanDuration = 60
	}
	if c.Security.MessageLimit.MaxPerSecond == 0 {
		c.Security.MessageLimit.MaxPerSecond = 30
	}
}
