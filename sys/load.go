package sys

import (
	"github.com/ribgsilva/memo-api/platform/env"
	"go.uber.org/zap"
)

// LoadConfigs reads every setting shared by the apps from env vars, falling back to defaults
func LoadConfigs(log *zap.SugaredLogger) Config {
	var c Config
	c.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	c.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	c.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	c.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	c.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	c.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	c.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+c.Http.Port)
	c.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "sqlite")
	c.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "./zatumemo_database.db")
	c.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	c.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	c.Cache.Enabled = env.BoolDefault(log, "CACHE_ENABLED", "f")
	c.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	c.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	c.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	c.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	c.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	c.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	c.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "memo-api")
	c.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	c.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	c.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	c.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	c.Bridge.URL = env.OrDefault(log, "BRIDGE_URL", "")
	c.Bridge.Timeout = env.DurationDefault(log, "BRIDGE_TIMEOUT", "10s")
	return c
}
