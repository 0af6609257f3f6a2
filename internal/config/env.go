package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"

	defaultMySQLDSN    = "root:@tcp(127.0.0.1:3306)/ats?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	defaultPostgresDSN = "postgres://postgres@127.0.0.1:5432/ats?sslmode=disable"
	DevJWTSecret       = "super-secret-key-change-me"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDriver string
	DBDSN    string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	CORSAllowedOrigins []string

	LogLevel string
	LogJSON  bool
}

// LoadEnv reads an optional config.yaml (from configPaths, "." by default) and the
// environment; environment variables win.
func LoadEnv(configPaths ...string) (Env, error) {
	v := viper.New()

	v.SetDefault("app.addr", ":8080")
	v.SetDefault("app.gin_mode", "")
	v.SetDefault("db.driver", DriverMySQL)
	v.SetDefault("jwt.secret", DevJWTSecret)
	v.SetDefault("jwt.access_ttl", "1h")
	v.SetDefault("jwt.refresh_ttl", "120h")
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	bindings := map[string]string{
		"app.addr":             "APP_ADDR",
		"app.gin_mode":         "GIN_MODE",
		"db.driver":            "DB_DRIVER",
		"db.dsn":               "DB_DSN",
		"jwt.secret":           "JWT_SECRET",
		"jwt.access_ttl":       "ACCESS_TOKEN_TTL",
		"jwt.refresh_ttl":      "REFRESH_TOKEN_TTL",
		"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
		"log.level":            "LOG_LEVEL",
		"log.json":             "LOG_JSON",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Env{}, err
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(os.ExpandEnv(p))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Env{}, fmt.Errorf("read config file: %w", err)
		}
	}

	env := Env{
		AppAddr:   strings.TrimSpace(v.GetString("app.addr")),
		GinMode:   strings.TrimSpace(v.GetString("app.gin_mode")),
		DBDriver:  strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
		DBDSN:     strings.TrimSpace(v.GetString("db.dsn")),
		JWTSecret: v.GetString("jwt.secret"),
		LogLevel:  v.GetString("log.level"),
		LogJSON:   v.GetBool("log.json"),
	}
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}

	switch env.DBDriver {
	case DriverMySQL:
		if env.DBDSN == "" {
			env.DBDSN = defaultMySQLDSN
		}
	case DriverPostgres, "postgres":
		env.DBDriver = DriverPostgres
		if env.DBDSN == "" {
			env.DBDSN = defaultPostgresDSN
		}
	default:
		return Env{}, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", env.DBDriver, DriverMySQL, DriverPostgres)
	}

	var err error
	if env.AccessTTL, err = parseTTL(v.GetString("jwt.access_ttl")); err != nil {
		return Env{}, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
	}
	if env.RefreshTTL, err = parseTTL(v.GetString("jwt.refresh_ttl")); err != nil {
		return Env{}, fmt.Errorf("REFRESH_TOKEN_TTL: %w", err)
	}

	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
		}
	}

	return env, nil
}

// parseTTL accepts Go durations ("1h") or a plain number of seconds ("3600").
func parseTTL(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("must be positive, got %d", secs)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
