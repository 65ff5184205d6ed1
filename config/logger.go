package config

import "blog-front/internal/logger"

// InitLogger configures the global logger from the loaded logging section.
func InitLogger(service string) {
	logger.Init(GetConfig().Logging.Level, service)
}
