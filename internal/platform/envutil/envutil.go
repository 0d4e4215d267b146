package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

// String returns the trimmed value of name, or def when unset or blank.
func String(name, def string, log *logger.Logger) string {
	if log != nil {
		log = log.With("env_var", name)
	}
	v, ok := os.LookupEnv(name)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		if log != nil {
			log.Debug("Environment variable not found, using default", "default", def)
		}
		return def
	}
	if log != nil {
		log.Debug("Environment variable found, using environment", "value", v)
	}
	return v
}

func Int(name string, def int, log *logger.Logger) int {
	if log != nil {
		log = log.With("env_var", name)
	}
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		if log != nil {
			log.Warn("Environment variable could not be parsed as int, using default", "provided", v, "default", def, "error", err)
		}
		return def
	}
	return i
}

func Bool(name string, def bool, log *logger.Logger) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		if log != nil {
			log.Warn("Environment variable could not be parsed as bool, using default", "env_var", name, "provided", v, "default", def)
		}
		return def
	}
}

// List splits a comma-separated variable, dropping empty entries.
func List(name string, def []string, log *logger.Logger) []string {
	raw := String(name, "", log)
	if raw == "" {
		return def
	}
	out := make([]string, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Secret is String without logging the value.
func Secret(name, def string, log *logger.Logger) string {
	v := strings.TrimSpace(os.Getenv(name))
	if log != nil {
		log.Debug("Secret environment variable lookup", "env_var", name, "set", v != "")
	}
	if v == "" {
		return def
	}
	return v
}

func Float(name string, def float64, log *logger.Logger) float64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		if log != nil {
			log.Warn("Environment variable could not be parsed as float, using default", "env_var", name, "provided", v, "default", def, "error", err)
		}
		return def
	}
	return f
}
