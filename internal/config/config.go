package config

import (
	"fmt"
)

type Config struct {
	Server Server `json:"server"`

	// Database Configuration
	Database Database `json:"database"`

	// Notification Configuration
	Notification Notification `json:"notification"`

	// Logging Configuration
	Logging Logging `json:"logging"`
}

// Server contains server-related configuration
type Server struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// Database contains database connection configuration
type Database struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// Notification contains notification read-side configuration
type Notification struct {
	// Endpoint is the websocket endpoint advertised in unread responses.
	// A bare path is resolved against the request host into a ws/wss URL.
	Endpoint          string `json:"endpoint"`
	Workers           int    `json:"workers"`             // read-event broadcaster workers
	ChannelBufferSize int    `json:"channel_buffer_size"` // broadcaster channel buffer
}

// Logging contains logging configuration
type Logging struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}
