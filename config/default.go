package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Field is a configuration entry with its factory default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides this field.
func (f Field) Env() string {
	return strings.ToUpper(envPrefix + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f Field) String() string {
	return fmt.Sprintf("%s (%s) = %v", f.Key, f.Env(), f.Value)
}

var defaults = []Field{
	{HTTPPort, ":8080", "Address the HTTP server listens on"},
	{AllowedOrigins, []string{"http://localhost:3000", "http://localhost:5173"}, "Origins allowed by CORS"},
	{DevMode, false, "Allow every origin and log at debug level; enable with serve --dev"},
	{DBType, "postgres", "database/sql driver name"},
	{DBHost, "localhost", "Database host, optionally with port"},
	{DBUser, "postgres", "Database user"},
	{DBPassword, "", "Database password"},
	{DBName, "brandkit", "Database name"},
	{DBSSLMode, "disable", "PostgreSQL sslmode"},
	{DBInMemory, false, "Keep data in process memory instead of PostgreSQL"},
	{LogLevel, "info", "logrus level"},
	{LogJSON, false, "Emit JSON logs"},
	{RegenDebounce, 300 * time.Millisecond, "Quiet period before palettes are regenerated"},
	{OTelEnabled, false, "Export metrics over OTLP/gRPC"},
	{OTelEndpoint, "", "OTLP collector endpoint"},
	{OTelInsecure, true, "Disable TLS towards the collector"},
}

// Default maps every key to its field.
var Default = lo.SliceToMap(defaults, func(f Field) (string, Field) { return f.Key, f })

// Fields returns every field sorted by key.
func Fields() []Field {
	fields := lo.Values(Default)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}
