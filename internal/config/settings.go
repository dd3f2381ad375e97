// Package config provides process settings and gameplay tuning.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Settings holds process-level configuration shared by the binaries.
type Settings struct {
	SSHHost        string
	SSHPort        string
	SSHHostKeyPath string

	WebHost        string
	WebPort        string
	SSHDisplayHost string

	LogLevel string
	LogFile  string

	TuningPath string
	Seed       int64
}

// envKeys maps setting keys to the environment variables that override them.
var envKeys = map[string]string{
	"ssh.host":        "SSH_HOST",
	"ssh.port":        "SSH_PORT",
	"ssh.hostKey":     "SSH_HOST_KEY",
	"web.host":        "WEB_HOST",
	"web.port":        "WEB_PORT",
	"web.displayHost": "SSH_DISPLAY_HOST",
	"log.level":       "LOG_LEVEL",
	"log.file":        "STARFALL_LOG_FILE",
	"game.tuning":     "STARFALL_TUNING",
	"game.seed":       "STARFALL_SEED",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ssh.host", "::")
	v.SetDefault("ssh.port", "2222")
	v.SetDefault("ssh.hostKey", "/app/keys/host_key")
	v.SetDefault("web.host", "0.0.0.0")
	v.SetDefault("web.port", "8080")
	v.SetDefault("web.displayHost", "your-server.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("game.tuning", "")
	v.SetDefault("game.seed", 0)
}

// Load builds Settings from defaults, an optional config file named by
// STARFALL_CONFIG, and environment variables, in increasing priority.
func Load() (Settings, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Settings{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.BindEnv("config", "STARFALL_CONFIG"); err != nil {
		return Settings{}, fmt.Errorf("failed to bind STARFALL_CONFIG: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return Settings{
		SSHHost:        v.GetString("ssh.host"),
		SSHPort:        v.GetString("ssh.port"),
		SSHHostKeyPath: v.GetString("ssh.hostKey"),
		WebHost:        v.GetString("web.host"),
		WebPort:        v.GetString("web.port"),
		SSHDisplayHost: v.GetString("web.displayHost"),
		LogLevel:       v.GetString("log.level"),
		LogFile:        v.GetString("log.file"),
		TuningPath:     v.GetString("game.tuning"),
		Seed:           v.GetInt64("game.seed"),
	}, nil
}

// ParseLogLevel converts the configured level name to a zerolog level.
// Unknown names fall back to info.
func ParseLogLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
