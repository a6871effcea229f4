package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"depot/internal/adapters/out/callsystem"
	"depot/internal/core/domain/model/kernel"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN renders the connection string for gorm's postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type RegionConfig struct {
	City         string   `env:"REGION_CITY" envDefault:"Elliot Lake"`
	CityAliases  []string `env:"REGION_CITY_ALIASES" envSeparator:"," envDefault:"Elliott Lake"`
	ProvinceCode string   `env:"REGION_PROVINCE_CODE" envDefault:"ON"`
	ProvinceName string   `env:"REGION_PROVINCE_NAME" envDefault:"Ontario"`
	PostalPrefix string   `env:"REGION_POSTAL_PREFIX" envDefault:"P5A"`
}

func (c RegionConfig) Region() (kernel.Region, error) {
	return kernel.NewRegion(c.City, c.CityAliases, c.ProvinceCode, c.ProvinceName, c.PostalPrefix)
}

type OCRConfig struct {
	Languages []string      `env:"OCR_LANGUAGES" envSeparator:"," envDefault:"eng"`
	Timeout   time.Duration `env:"OCR_TIMEOUT" envDefault:"30s"`
}

type CallSystemConfig struct {
	BaseURL   string        `env:"CALL_SYSTEM_URL"`
	AccountID string        `env:"CALL_SYSTEM_ACCOUNT"`
	Token     string        `env:"CALL_SYSTEM_TOKEN"`
	From      string        `env:"CALL_SYSTEM_FROM"`
	Message   string        `env:"CALL_SYSTEM_MESSAGE" envDefault:"You have a parcel waiting for pickup at the depot."`
	Timeout   time.Duration `env:"CALL_TIMEOUT" envDefault:"15s"`

	// ArrivalCalls makes intake call the recipient as soon as a parcel is received.
	ArrivalCalls bool `env:"ARRIVAL_CALLS" envDefault:"false"`
}

// Enabled reports whether a call system is configured. Without one calls are only logged.
func (c CallSystemConfig) Enabled() bool {
	return c.BaseURL != ""
}

func (c CallSystemConfig) Client() callsystem.Config {
	return callsystem.Config{
		BaseURL:   c.BaseURL,
		AccountID: c.AccountID,
		Token:     c.Token,
		From:      c.From,
		Message:   c.Message,
		Timeout:   c.Timeout,
	}
}

type ReminderConfig struct {
	Enabled   bool   `env:"REMINDER_ENABLED" envDefault:"true"`
	Schedule  string `env:"REMINDER_SCHEDULE" envDefault:"0 0 10 * * *"`
	AfterDays int    `env:"REMINDER_AFTER_DAYS" envDefault:"5"`
}

type Config struct {
	HTTP       HTTPConfig
	DB         DBConfig
	Region     RegionConfig
	OCR        OCRConfig
	CallSystem CallSystemConfig
	Reminder   ReminderConfig
}

// LoadConfig reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.Reminder.AfterDays < 0 {
		return cfg, errors.New("REMINDER_AFTER_DAYS must not be negative")
	}
	if cfg.CallSystem.Enabled() {
		if err := cfg.CallSystem.Client().Validate(); err != nil {
			return cfg, fmt.Errorf("invalid call system config: %w", err)
		}
	}

	return cfg, nil
}
