package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Mongo configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB  int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Gemini settings for the extraction oracle and knowledge responder.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Google Calendar service account credentials file.
	GoogleServiceAccountKey string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_KEY"`
	CalendarTimezone        string `mapstructure:"CALENDAR_TIMEZONE"`

	// Booking policy.
	WorkingHoursStart     int `mapstructure:"WORKING_HOURS_START"`
	WorkingHoursEnd       int `mapstructure:"WORKING_HOURS_END"`
	LessonDurationMinutes int `mapstructure:"LESSON_DURATION_MINUTES"`

	// Dialogue sessions.
	SessionBackend    string `mapstructure:"SESSION_BACKEND"` // "memory" or "redis"
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Lesson reminders.
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`

	// Static token guarding the diagnostic admin endpoints.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "driveline")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_DB", 1)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_KEY", "google-service-account.json")
	viper.SetDefault("CALENDAR_TIMEZONE", "America/Toronto")
	viper.SetDefault("WORKING_HOURS_START", 9)
	viper.SetDefault("WORKING_HOURS_END", 18)
	viper.SetDefault("LESSON_DURATION_MINUTES", 60)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 120)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
