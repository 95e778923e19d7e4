package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if value := os.Getenv(env); value != "" {
		return value
	}
	log.Debugw("config", "env", env, "status", "using default")
	return def
}

// Must return the value of an env var, the process is terminated when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalw("config", "env", env, "ERROR", "required env var is empty")
	}
	return value
}
