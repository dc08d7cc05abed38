package config

import (
	"strings"
	"time"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	LogLevel  string
	LogPretty bool
}

// StorageConfig selects the slot backend holding the document.
type StorageConfig struct {
	Driver      string // file, memory, postgres, mongo
	Key         string
	Path        string // directory of the file driver
	PostgresDSN string
	MongoURI    string
	MongoDB     string
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig throttles login attempts per client IP.
type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

// SeedConfig holds the passwords given to the fixture users on first start.
type SeedConfig struct {
	Passwords       map[string]string
	DefaultPassword string
}

// Load reads .env.<APP_ENV> if present, then the environment, into a Config.
func Load() *Config {
	env := utils.Getenv("APP_ENV", "development")
	if err := godotenv.Load(".env." + env); err != nil {
		utils.LogDebug("No env file loaded, using environment variables", map[string]interface{}{"file": ".env." + env})
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "kampala-finance")
	v.SetDefault("APP_ENV", env)
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", env == "development")
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("STORAGE_KEY", models.DefaultStorageKey)
	v.SetDefault("STORAGE_PATH", "./data")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "kampala")
	v.SetDefault("DB_PASSWORD", "kampala")
	v.SetDefault("DB_NAME", "kampala_finance")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_NAME", "kampala_finance")
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("SESSION_TTL_MINUTES", 30)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5500")
	v.SetDefault("RATE_LIMIT_LOGIN_PER_MINUTE", 10)
	v.SetDefault("RATE_LIMIT_LOGIN_BURST", 5)
	v.SetDefault("SEED_DEFAULT_PASSWORD", "")

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:      v.GetString("APP_NAME"),
			Env:       v.GetString("APP_ENV"),
			Port:      v.GetString("PORT"),
			LogLevel:  v.GetString("LOG_LEVEL"),
			LogPretty: v.GetBool("LOG_PRETTY"),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Key:         v.GetString("STORAGE_KEY"),
			Path:        v.GetString("STORAGE_PATH"),
			PostgresDSN: postgresDSN(v),
			MongoURI:    v.GetString("MONGODB_URI"),
			MongoDB:     v.GetString("MONGODB_NAME"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			SessionTTL: time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: v.GetInt("RATE_LIMIT_LOGIN_PER_MINUTE"),
			LoginBurst:     v.GetInt("RATE_LIMIT_LOGIN_BURST"),
		},
		Seed: SeedConfig{
			Passwords:       seedPasswords(v),
			DefaultPassword: v.GetString("SEED_DEFAULT_PASSWORD"),
		},
	}
}

// postgresDSN builds a lib/pq connection string from the DB_* variables.
func postgresDSN(v *viper.Viper) string {
	if dsn := v.GetString("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return "host=" + v.GetString("DB_HOST") +
		" port=" + v.GetString("DB_PORT") +
		" user=" + v.GetString("DB_USER") +
		" password=" + v.GetString("DB_PASSWORD") +
		" dbname=" + v.GetString("DB_NAME") +
		" sslmode=" + v.GetString("DB_SSLMODE")
}

// seedPasswords reads SEED_PASSWORD_<USER> for the fixture users.
func seedPasswords(v *viper.Viper) map[string]string {
	out := map[string]string{}
	for _, username := range []string{"john", "mary", "manager", "chef"} {
		if p := v.GetString("SEED_PASSWORD_" + strings.ToUpper(username)); p != "" {
			out[username] = p
		}
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
