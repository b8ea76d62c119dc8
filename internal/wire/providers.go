package wire

import (
	"os"
	"strconv"

	"gorm.io/gorm"

	"notistack/internal/config"
	"notistack/internal/dbmysql"
	"notistack/internal/notif"
)

// Application bundles everything the server entrypoint needs.
type Application struct {
	Config      *config.Config
	DB          *gorm.DB
	Handler     *notif.HTTPHandler
	Service     *notif.NotificationService
	Broadcaster *notif.Broadcaster
}

func ProvideConfig() *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:         getEnvOrDefault("SERVER_HOST", ""),
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: config.Database{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "notistack"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "notistack_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		Notification: config.Notification{
			Endpoint:          getEnvOrDefault("NOTIFICATION_ENDPOINT", "/notifications/live"),
			Workers:           getEnvIntOrDefault("NOTIFICATION_WORKERS", 5),
			ChannelBufferSize: getEnvIntOrDefault("NOTIFICATION_BUFFER_SIZE", 1000),
		},
		Logging: config.Logging{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		},
	}
}

func ProvideDatabaseConnection(cfg *config.Config) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg)
}

func ProvideNotificationStore(db *gorm.DB) notif.NotificationStore {
	return dbmysql.NewNotificationStore(db)
}

// ProvideRegistry is the startup-time list of notifiable types, in the
// order bundle responses present them. Renderers are registered by the
// owning subsystems; types without one serve their stored details.
func ProvideRegistry() *notif.Registry {
	return notif.NewRegistry(
		notif.RegistryEntry{Key: "forum_topic"},
		notif.RegistryEntry{Key: "chat_channel"},
		notif.RegistryEntry{Key: "blog_post"},
	)
}

func ProvideBroadcaster(cfg *config.Config) *notif.Broadcaster {
	return notif.NewBroadcaster(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
