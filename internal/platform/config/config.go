package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverPostgres  = "postgres"
	StoreDriverSQLite    = "sqlite"
	StoreDriverFirestore = "firestore"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string
	LogFormat    string // "json" or "text"

	// Store
	StoreDriver         string
	DatabaseURL         string
	SQLitePath          string
	FirebaseProjectID   string
	FirebaseCredentials string // file path, inline JSON or base64 JSON
	RunMigrations       bool

	// Messaging gateway
	GatewayEndpoint      string
	GatewayUser          string
	GatewayPass          string
	GatewaySenderID      string
	GatewayTemplate      string
	GatewayPriority      string
	GatewayMessageType   string
	GatewaySuccessMarker string
	RelayURL             string
	DispatchTimeout      time.Duration

	// HTTP surface
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "30-M"
	PosthogAPIKey      string

	// Scheduler
	RenewalReminderCron string // empty disables the job
	RenewalReminderDays int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "data/erp.db")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CREDENTIALS", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("GATEWAY_ENDPOINT", "https://bhashsms.com/api/sendmsg.php")
	viper.SetDefault("GATEWAY_USER", "")
	viper.SetDefault("GATEWAY_PASS", "")
	viper.SetDefault("GATEWAY_SENDER_ID", "BUZWAP")
	viper.SetDefault("GATEWAY_TEMPLATE", "transaction_alert")
	viper.SetDefault("GATEWAY_PRIORITY", "wa")
	viper.SetDefault("GATEWAY_MESSAGE_TYPE", "normal")
	viper.SetDefault("GATEWAY_SUCCESS_MARKER", "success")
	viper.SetDefault("RELAY_URL", "")
	viper.SetDefault("DISPATCH_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "30-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("RENEWAL_REMINDER_CRON", "")
	viper.SetDefault("RENEWAL_REMINDER_DAYS", 7)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		LogLevel:             viper.GetString("LOG_LEVEL"),
		LogFormat:            strings.ToLower(viper.GetString("LOG_FORMAT")),
		StoreDriver:          strings.ToLower(viper.GetString("STORE_DRIVER")),
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		SQLitePath:           viper.GetString("SQLITE_PATH"),
		FirebaseProjectID:    viper.GetString("FIREBASE_PROJECT_ID"),
		FirebaseCredentials:  viper.GetString("FIREBASE_CREDENTIALS"),
		RunMigrations:        viper.GetBool("RUN_MIGRATIONS"),
		GatewayEndpoint:      viper.GetString("GATEWAY_ENDPOINT"),
		GatewayUser:          viper.GetString("GATEWAY_USER"),
		GatewayPass:          viper.GetString("GATEWAY_PASS"),
		GatewaySenderID:      viper.GetString("GATEWAY_SENDER_ID"),
		GatewayTemplate:      viper.GetString("GATEWAY_TEMPLATE"),
		GatewayPriority:      viper.GetString("GATEWAY_PRIORITY"),
		GatewayMessageType:   viper.GetString("GATEWAY_MESSAGE_TYPE"),
		GatewaySuccessMarker: viper.GetString("GATEWAY_SUCCESS_MARKER"),
		RelayURL:             viper.GetString("RELAY_URL"),
		RateLimit:            viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:        viper.GetString("POSTHOG_API_KEY"),
		RenewalReminderCron:  viper.GetString("RENEWAL_REMINDER_CRON"),
		RenewalReminderDays:  viper.GetInt("RENEWAL_REMINDER_DAYS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreDriverSQLite:
	case StoreDriverFirestore:
		if cfg.FirebaseProjectID == "" {
			log.Println("Warning: FIREBASE_PROJECT_ID not set. Firestore will rely on ambient credentials.")
		}
	default:
		log.Printf("Warning: Unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}

	timeoutStr := viper.GetString("DISPATCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for DISPATCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.DispatchTimeout = timeout

	if cfg.GatewaySuccessMarker == "" {
		cfg.GatewaySuccessMarker = "success"
	}
	if cfg.GatewayUser == "" && cfg.RelayURL == "" {
		log.Println("Warning: neither GATEWAY_USER nor RELAY_URL is set. Notifications will fail.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.RenewalReminderDays <= 0 {
		cfg.RenewalReminderDays = 7
	}

	return cfg, nil
}
