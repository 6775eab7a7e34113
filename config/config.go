// Package config loads settings from a local .env file, BRANDKIT_
// environment variables and an optional brandkit.toml, in that order of
// increasing precedence below explicit flags.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/metrics"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "brandkit"

// EnvKeyReplacer turns configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings on the global viper
// instance and reads brandkit.toml when present.
func Setup() error {
	_ = godotenv.Load()

	viper.SetConfigName(envPrefix)
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/brandkit")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for key := range Default {
		viper.MustBindEnv(key)
	}

	viper.SetTypeByDefaultValue(true)
	for key, field := range Default {
		viper.SetDefault(key, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Settings is the typed view of the configuration the server needs.
type Settings struct {
	HTTPPort       string
	AllowedOrigins []string
	DevMode        bool
	Database       Database
	RegenDebounce  time.Duration
	Metrics        metrics.Config
}

type Database struct {
	Type     string
	Host     string
	User     string
	Password string
	Name     string
	SSLMode  string
	InMemory bool
}

// ConnStr builds the driver connection string.
func (d Database) ConnStr() string {
	return datastore.BuildDBConnStr(d.Host, d.Password, d.User, d.Name, d.SSLMode)
}

// Load reads the current settings from viper.
func Load() Settings {
	return Settings{
		HTTPPort:       viper.GetString(HTTPPort),
		AllowedOrigins: splitList(viper.GetStringSlice(AllowedOrigins)),
		DevMode:        viper.GetBool(DevMode),
		Database: Database{
			Type:     viper.GetString(DBType),
			Host:     viper.GetString(DBHost),
			User:     viper.GetString(DBUser),
			Password: viper.GetString(DBPassword),
			Name:     viper.GetString(DBName),
			SSLMode:  viper.GetString(DBSSLMode),
			InMemory: viper.GetBool(DBInMemory),
		},
		RegenDebounce: viper.GetDuration(RegenDebounce),
		Metrics: metrics.Config{
			Enabled:  viper.GetBool(OTelEnabled),
			Endpoint: viper.GetString(OTelEndpoint),
			Insecure: viper.GetBool(OTelInsecure),
		},
	}
}

// splitList accepts both list values and a single comma separated entry,
// the form environment variables arrive in.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
