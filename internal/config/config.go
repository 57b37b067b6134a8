package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// BindAddr is the address the HTTP server listens on.
	BindAddr string
	// BrandDomain is the host this instance serves. Lookup results whose
	// domain differs from it trigger a cross-domain redirect.
	BrandDomain string
	// SessionSecret signs the cookie session carrying sign-in step state.
	SessionSecret string
	// LookupURL is the endpoint of the check_domain remote procedure.
	// When it points at this instance, the service answers its own lookups.
	LookupURL string
	// LookupTimeout bounds a single lookup call at the transport level.
	LookupTimeout time.Duration
	// AuthSubmitURL is where the password form posts its credentials.
	// Password verification is the authentication collaborator's job.
	AuthSubmitURL string
	// LangDir is the directory holding per-locale string packs.
	LangDir string
	// DefaultLocale is used when Accept-Language matches nothing.
	DefaultLocale string

	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		BindAddr:      getenv("SIGNIN_BIND_ADDR", ":8080"),
		BrandDomain:   os.Getenv("SIGNIN_BRAND_DOMAIN"),
		SessionSecret: os.Getenv("SIGNIN_SESSION_SECRET"),
		LookupURL:     getenv("SIGNIN_LOOKUP_URL", "http://127.0.0.1:8080/local/signin/service/check_domain"),
		LookupTimeout: getdur("SIGNIN_LOOKUP_TIMEOUT", 5*time.Second),
		AuthSubmitURL: getenv("SIGNIN_AUTH_SUBMIT_URL", "/login/index.php"),
		LangDir:       getenv("SIGNIN_LANG_DIR", "lang"),
		DefaultLocale: getenv("SIGNIN_DEFAULT_LOCALE", "en"),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
	}

	if cfg.BrandDomain == "" || cfg.SessionSecret == "" {
		log.Fatal("Required environment variables SIGNIN_BRAND_DOMAIN or SIGNIN_SESSION_SECRET are not set.")
	}
	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s is not a valid duration: %v", key, err)
	}
	return d
}
