package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`    // 服务器配置
	Database  DatabaseConfig            `mapstructure:"database"`  // PostgreSQL配置
	Sync      SyncConfig                `mapstructure:"sync"`      // 同步调度配置
	Broadcast BroadcastConfig           `mapstructure:"broadcast"` // 转播分析配置
	Upstreams map[string]UpstreamConfig `mapstructure:"upstreams"` // 多上游独立配置（espn/sleeper/mlmodel）
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// DatabaseConfig PostgreSQL数据库配置
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// SyncConfig 同步调度配置
type SyncConfig struct {
	Cron          string `mapstructure:"cron"`           // 定时同步Cron表达式，空则不启用
	DefaultSeason int    `mapstructure:"default_season"` // 手动触发同步时的默认赛季
}

// BroadcastConfig 转播分析配置
type BroadcastConfig struct {
	TeamsPath        string `mapstructure:"teams_path"`         // 球队配置文件路径（teams.yaml）
	PromoteSingleTBD bool   `mapstructure:"promote_single_tbd"` // TBD分组仅剩一场时是否提升为已确认
}

// UpstreamConfig 单个上游的独立配置
type UpstreamConfig struct {
	BaseURL    string `mapstructure:"base_url"`    // API基础地址
	CoreURL    string `mapstructure:"core_url"`    // ESPN专属：core API地址（战绩接口与scoreboard不同域名）
	Timeout    int    `mapstructure:"timeout"`     // 请求超时（秒）
	RetryCount int    `mapstructure:"retry_count"` // 重试次数
	Proxy      string `mapstructure:"proxy"`       // 代理地址
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if m, ok := cfg.Upstreams["mlmodel"]; ok {
		if v := os.Getenv("MLMODEL_BASE_URL"); v != "" {
			m.BaseURL = v
		}
		if v := os.Getenv("MLMODEL_PROXY"); v != "" {
			m.Proxy = v
		}
		cfg.Upstreams["mlmodel"] = m
	}
	if e, ok := cfg.Upstreams["espn"]; ok {
		if v := os.Getenv("ESPN_PROXY"); v != "" {
			e.Proxy = v
		}
		cfg.Upstreams["espn"] = e
	}
}
