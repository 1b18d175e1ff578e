package env

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Load reads a .env file into the process environment. A missing file is not an error,
// values already set in the environment win.
func Load(log *zap.SugaredLogger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Debugw("env", "status", ".env not loaded, using system environment", "reason", err)
	}
}

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value, ok := os.LookupEnv(env)
	if !ok || value == "" {
		log.Debugw("env", "key", env, "default", def)
		return def
	}
	log.Debugw("env", "key", env, "value", value)
	return value
}

// Must return the result of searching an env var, panics if it is empty
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Errorw("env", "key", env, "ERROR", "required env var is empty")
		panic("required env var " + env + " is empty")
	}
	return value
}
