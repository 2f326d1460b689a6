package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in the
// application: strings for identifiers and addresses, ints for costs and
// durations.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    MongoURI      string // MongoDB connection string
    MongoDB       string // MongoDB database name
    BcryptCost    int    // bcrypt cost for password hashing
    SessionTTLMin int    // Redis session TTL in minutes; 0 means no expiry
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),           // environment (dev/test/prod)
        Port:          must("APP_PORT"),          // port to bind the HTTP server
        MongoURI:      must("MONGO_URI"),         // MongoDB connection string
        MongoDB:       must("MONGO_DB"),          // database holding users/contacts/counters
        BcryptCost:    mustInt("BCRYPT_COST"),    // bcrypt cost factor
        SessionTTLMin: optInt("SESSION_TTL_MIN"), // only used by the Redis session store
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// optInt reads an optional integer variable, returning 0 when unset. A set
// but malformed value is still fatal so typos do not pass silently.
func optInt(key string) int {
    s := os.Getenv(key)
    if s == "" {
        return 0
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
