package config

import (
	"fmt"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host     string `yaml:"host" env:"BLOG_REDIS_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"BLOG_REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"BLOG_REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"BLOG_REDIS_DB" env-default:"0"`
	Enabled  bool   `yaml:"enabled" env:"BLOG_REDIS_ENABLED" env-default:"true"`
}

// GetAddress возвращает адрес Redis.
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
