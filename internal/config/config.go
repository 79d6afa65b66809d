package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 应用配置
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"5005"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DatabaseURL 为空时由 DB_* 拼接
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME" envDefault:"seriesdb"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	// 页面
	SiteName     string `env:"SITE_NAME" envDefault:"SeriesDB"`
	SiteURL      string `env:"SITE_URL" envDefault:"http://localhost:5005"`
	SiteLang     string `env:"SITE_LANG" envDefault:"en"`
	SiteKeywords string `env:"SITE_KEYWORDS" envDefault:"tv, series, 剧集"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"./web/static"`

	// 缓存
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"512"`
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("CACHE_SIZE 必须大于 0，当前为 %d", cfg.CacheSize)
	}

	return cfg, nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
