package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jobmonitor/internal/domain"
	"jobmonitor/internal/secrets"
)

type Company struct {
	Name     string          `yaml:"name"`
	URL      string          `yaml:"url"`
	Priority domain.Priority `yaml:"priority"`
}

type Telegram struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type Email struct {
	Enabled  bool   `yaml:"enabled"`
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Password string `yaml:"password"`
}

type Digest struct {
	WindowStart string `yaml:"window_start"`
	WindowEnd   string `yaml:"window_end"`
}

type Config struct {
	Companies []Company `yaml:"companies"`

	StateFile       string `yaml:"state_file"`
	StateExpiryDays int    `yaml:"state_expiry_days"`

	// Pointer so an explicit 0 (freshness check off) is distinguishable
	// from the field being absent.
	MaxJobAgeDays *int `yaml:"max_job_age_days"`

	CompanyDelaySeconds int `yaml:"company_delay_seconds"`

	Digest   Digest   `yaml:"digest"`
	Telegram Telegram `yaml:"telegram"`
	Email    Email    `yaml:"email"`
}

func (c Config) MaxAgeDays() int {
	if c.MaxJobAgeDays == nil {
		return 2
	}
	return *c.MaxJobAgeDays
}

// Load reads the YAML config, applies defaults and overlays secrets
// from the environment (a .env file is honored) and, failing that, the
// OS keychain. Env always wins over file values.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config read: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse: %w", err)
	}

	applyDefaults(&cfg)
	if err := overlaySecrets(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.StateFile == "" {
		cfg.StateFile = "job_state.json"
	}
	if cfg.StateExpiryDays == 0 {
		cfg.StateExpiryDays = 90
	}
	if cfg.CompanyDelaySeconds == 0 {
		cfg.CompanyDelaySeconds = 2
	}
	if cfg.Digest.WindowStart == "" {
		cfg.Digest.WindowStart = "09:00"
	}
	if cfg.Digest.WindowEnd == "" {
		cfg.Digest.WindowEnd = "09:30"
	}
	for i := range cfg.Companies {
		if cfg.Companies[i].Priority == "" {
			cfg.Companies[i].Priority = domain.PriorityMedium
		}
	}
}

func overlaySecrets(cfg *Config) error {
	if token := secrets.Lookup("TELEGRAM_BOT_TOKEN", secrets.AccountTelegramToken); token != "" {
		cfg.Telegram.Enabled = true
		cfg.Telegram.BotToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = id
	}

	if pw := secrets.Lookup("EMAIL_PASSWORD", secrets.AccountEmailPassword); pw != "" {
		cfg.Email.Enabled = true
		cfg.Email.Password = pw
	}
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		cfg.Email.From = from
		cfg.Email.To = from
	}
	return nil
}
