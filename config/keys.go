package config

// Configuration keys. Each maps to a BRANDKIT_ environment variable with
// dots replaced by underscores.
const (
	HTTPPort       = "http.port"
	AllowedOrigins = "cors.allowed_origins"
	DevMode        = "dev_mode"

	DBType     = "db.type"
	DBHost     = "db.host"
	DBUser     = "db.user"
	DBPassword = "db.password"
	DBName     = "db.name"
	DBSSLMode  = "db.sslmode"
	DBInMemory = "db.in_memory"

	LogLevel = "log.level"
	LogJSON  = "log.json"

	RegenDebounce = "regen.debounce"

	OTelEnabled  = "otel.enabled"
	OTelEndpoint = "otel.endpoint"
	OTelInsecure = "otel.insecure"
)
