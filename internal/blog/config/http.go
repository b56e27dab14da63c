package config

import (
	"fmt"
)

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"BLOG_HTTP_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"BLOG_HTTP_PORT" env-default:"8080"`
}

// GetAddress возвращает адрес для HTTP сервера.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
