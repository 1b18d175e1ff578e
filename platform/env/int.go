package env

import (
	"strconv"

	"go.uber.org/zap"
)

// IntDefault reads env as an int. An unset or unparsable value yields def.
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	raw := OrDefault(log, env, def)
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	} else if raw != def {
		log.Warnw("env", "key", env, "value", raw, "ERROR", err, "fallback", def)
	}

	i, err := strconv.Atoi(def)
	if err != nil {
		log.Errorw("env", "key", env, "default", def, "ERROR", err)
	}
	return i
}
