package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Secrets and connection strings are required;
// everything else falls back to a development default.
type Config struct {
    Env          string   // application environment (e.g. "dev", "prod")
    Port         string   // HTTP port to listen on
    MongoURI     string   // MongoDB connection string
    MongoDB      string   // database holding the six collections
    JWTSecret    string   // secret used to sign JWTs
    AccessTTLMin int      // access token time‑to‑live in minutes
    StripeKey    string   // Stripe secret API key
    CORSOrigins  []string // allowed CORS origins
    LogLevel     string   // debug | info | warn | error
    LogFormat    string   // text | json
    Events       EventsConfig
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:          getenv("APP_ENV", "dev"),
        Port:         getenv("APP_PORT", getenv("PORT", "5000")),
        MongoURI:     must("MONGO_URI"),
        MongoDB:      getenv("MONGO_DB", "refrigerator_tools"),
        JWTSecret:    mustAny("JWT_SECRET", "ACCESS_TOKEN_SECRET"),
        AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 60),
        StripeKey:    must("STRIPE_SECRET_KEY"),
        CORSOrigins:  splitCSV(getenv("CORS_ORIGINS", "*")),
        LogLevel:     getenv("LOG_LEVEL", "info"),
        LogFormat:    getenv("LOG_FORMAT", "text"),
        Events:       LoadEventsConfig(),
    }
}

// LoadCLI is the subset used by the admin CLI: the store and the token
// secret, without the payment key.  MONGO_URI is optional here; commands
// that touch the store check it themselves.
func LoadCLI() Config {
    return Config{
        MongoURI:     getenv("MONGO_URI", ""),
        MongoDB:      getenv("MONGO_DB", "refrigerator_tools"),
        JWTSecret:    mustAny("JWT_SECRET", "ACCESS_TOKEN_SECRET"),
        AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 60),
        LogLevel:     getenv("LOG_LEVEL", "warn"),
        LogFormat:    getenv("LOG_FORMAT", "text"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustAny is like must() but accepts the first non-empty of several names.
func mustAny(keys ...string) string {
    for _, k := range keys {
        if v := os.Getenv(k); v != "" {
            return v
        }
    }
    log.Fatalf("missing required env var: %s", strings.Join(keys, " or "))
    return ""
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envInt(k string, d int) int {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.Atoi(v); err == nil && n > 0 {
        return n
    }
    return d
}

func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    switch v {
    case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
        return true
    case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
        return false
    }
    return d
}

func splitCSV(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if t := strings.TrimSpace(p); t != "" {
            out = append(out, t)
        }
    }
    return out
}
