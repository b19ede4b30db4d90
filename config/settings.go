package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const settingsFileName = "anvogue.json"

// Settings holds the tunable application settings. They load from an
// optional anvogue.json next to the binary, with ANVOGUE_* environment
// variables taking precedence. A double underscore separates nesting
// levels so single underscores survive in key names:
// ANVOGUE_SERVER__PORT=9090 overrides server.port,
// ANVOGUE_RATE_LIMIT__REQUESTS=120 overrides rate_limit.requests.
type Settings struct {
	Server struct {
		Port        string   `koanf:"port" validate:"required,numeric"`
		CORSOrigins []string `koanf:"cors_origins" validate:"required,min=1,dive,url"`
	} `koanf:"server"`

	RateLimit struct {
		Requests int           `koanf:"requests" validate:"required,min=1"`
		Window   time.Duration `koanf:"window" validate:"required"`
	} `koanf:"rate_limit"`

	Cache struct {
		TTL time.Duration `koanf:"ttl" validate:"required"`
	} `koanf:"cache"`

	Search struct {
		PageSize int `koanf:"page_size" validate:"required,min=1,max=100"`
	} `koanf:"search"`
}

var App Settings

// LoadSettings populates App. A missing settings file is not an error;
// defaults plus environment overrides apply.
func LoadSettings() error {
	k := koanf.New(".")

	defaults()

	if err := k.Load(file.Provider(settingsFileName), json.Parser()); err != nil {
		log.Debugf("no %s found, using defaults: %v", settingsFileName, err)
	}

	err := k.Load(env.Provider("ANVOGUE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "ANVOGUE_")), "__", ".")
	}), nil)
	if err != nil {
		return err
	}

	var loaded Settings
	if err := k.Unmarshal("", &loaded); err != nil {
		return err
	}
	merge(&loaded)

	return validator.New().Struct(&App)
}

func defaults() {
	App.Server.Port = "8081"
	App.Server.CORSOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}
	App.RateLimit.Requests = 60
	App.RateLimit.Window = time.Minute
	App.Cache.TTL = 5 * time.Minute
	App.Search.PageSize = 8
}

// merge copies loaded values over the defaults, field by field, skipping
// zero values so partial settings files work.
func merge(loaded *Settings) {
	if loaded.Server.Port != "" {
		App.Server.Port = loaded.Server.Port
	}
	if len(loaded.Server.CORSOrigins) > 0 {
		App.Server.CORSOrigins = loaded.Server.CORSOrigins
	}
	if loaded.RateLimit.Requests > 0 {
		App.RateLimit.Requests = loaded.RateLimit.Requests
	}
	if loaded.RateLimit.Window > 0 {
		App.RateLimit.Window = loaded.RateLimit.Window
	}
	if loaded.Cache.TTL > 0 {
		App.Cache.TTL = loaded.Cache.TTL
	}
	if loaded.Search.PageSize > 0 {
		App.Search.PageSize = loaded.Search.PageSize
	}
}
