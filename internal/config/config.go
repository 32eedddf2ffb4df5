// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, the record store, web protection, and
// observability. An optional dotenv file is read first; variables already set
// in the process environment take precedence over it.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported record store drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// MongoConfig defines the MongoDB document store connection.
type MongoConfig struct {
	URI        string        // MONGO_URI, "<password>" is replaced by MONGO_PASSWORD
	Database   string        // MONGO_DATABASE
	Collection string        // MONGO_COLLECTION
	Timeout    time.Duration // MONGO_TIMEOUT, connect/ping budget
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Driver string // sqlite|mongo
	DBPath string // SQLite path
	Mongo  MongoConfig
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "feedback-api")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	ShutdownTimeout   time.Duration // graceful drain budget
	MaxHeaderBytes    int           // bytes
	MaxBodyBytes      int64         // request body cap
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel         string // debug|info|warn|error|fatal|panic
	LogPretty        bool   // pretty console logs in dev
	SwaggerEnabled   bool   // enable Swagger UI route
	APIBasePath      string // base path for API routes
	ExposeErrorStack bool   // include stack traces in error bodies
	GzipEnabled      bool   // gzip-compress responses

	// Record store
	Store StoreConfig

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the dotenv file (ENV_FILE, default ".env") when present, then
// configuration from environment variables, applies defaults, normalizes
// values, and validates the result.
func Load() (Config, error) {
	if err := loadEnvFile(getenv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	ginMode := strings.ToLower(getenv("GIN_MODE", "release"))
	switch ginMode {
	case "debug", "release", "test":
	default:
		ginMode = "release"
	}

	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		MaxBodyBytes:      int64(getint("MAX_BODY_BYTES", 1<<20)),
		GinMode:           ginMode,

		// Logging / Docs
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:        getbool("LOG_PRETTY", false),
		SwaggerEnabled:   getbool("SWAGGER_ENABLED", false),
		APIBasePath:      normalizeBasePath(getenv("API_BASE_PATH", "/")),
		ExposeErrorStack: getbool("EXPOSE_ERROR_STACK", ginMode != "release"),
		GzipEnabled:      getbool("GZIP_ENABLED", true),

		// Record store
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(getenv("STORE_DRIVER", DriverSQLite))),
			DBPath: getenv("DB_PATH", "feedback.db"),
			Mongo: MongoConfig{
				URI:        mongoURI(getenv("MONGO_URI", "mongodb://localhost:27017"), getenv("MONGO_PASSWORD", "")),
				Database:   getenv("MONGO_DATABASE", "foodapi"),
				Collection: getenv("MONGO_COLLECTION", "feedbacks"),
				Timeout:    getdur("MONGO_TIMEOUT", 10*time.Second),
			},
		},

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "feedback-api"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 ||
		cfg.IdleTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if cfg.MaxBodyBytes <= 0 {
		return cfg, errors.New("MAX_BODY_BYTES must be > 0")
	}
	switch cfg.Store.Driver {
	case DriverSQLite:
		if strings.TrimSpace(cfg.Store.DBPath) == "" {
			return cfg, errors.New("DB_PATH must not be empty")
		}
	case DriverMongo:
		if strings.TrimSpace(cfg.Store.Mongo.URI) == "" {
			return cfg, errors.New("MONGO_URI must not be empty")
		}
		if strings.TrimSpace(cfg.Store.Mongo.Database) == "" || strings.TrimSpace(cfg.Store.Mongo.Collection) == "" {
			return cfg, errors.New("MONGO_DATABASE and MONGO_COLLECTION must not be empty")
		}
		if cfg.Store.Mongo.Timeout <= 0 {
			return cfg, errors.New("MONGO_TIMEOUT must be > 0")
		}
	default:
		return cfg, errors.New("STORE_DRIVER must be one of: sqlite, mongo")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.IdempotencyTTL <= 0 {
		return cfg, errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// loadEnvFile merges a dotenv file into the process environment. A missing
// file is not an error; existing variables are never overwritten.
func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// mongoURI substitutes the "<password>" placeholder so the connection string
// can be committed without the secret.
func mongoURI(uri, password string) string {
	if password == "" {
		return uri
	}
	return strings.ReplaceAll(uri, "<password>", password)
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
