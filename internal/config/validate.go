package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jobmonitor/internal/domain"
)

// Validate fails startup on a config the monitor cannot safely run
// with. Everything past this point treats config as trusted.
func Validate(cfg Config) error {
	var errs []string

	if len(cfg.Companies) == 0 {
		errs = append(errs, "companies must list at least one entry")
	}
	for i, c := range cfg.Companies {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Sprintf("companies[%d].name is required", i))
		}
		if strings.TrimSpace(c.URL) == "" {
			errs = append(errs, fmt.Sprintf("companies[%d].url is required", i))
		}
		switch c.Priority {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		default:
			errs = append(errs, fmt.Sprintf("companies[%d].priority must be low, medium or high", i))
		}
	}

	if cfg.StateExpiryDays < 0 {
		errs = append(errs, "state_expiry_days must be >= 0")
	}
	if cfg.MaxJobAgeDays != nil && *cfg.MaxJobAgeDays < 0 {
		errs = append(errs, "max_job_age_days must be >= 0")
	}

	if _, err := ParseClock(cfg.Digest.WindowStart); err != nil {
		errs = append(errs, fmt.Sprintf("digest.window_start: %v", err))
	}
	if _, err := ParseClock(cfg.Digest.WindowEnd); err != nil {
		errs = append(errs, fmt.Sprintf("digest.window_end: %v", err))
	}

	if cfg.Telegram.Enabled {
		if strings.TrimSpace(cfg.Telegram.BotToken) == "" {
			errs = append(errs, "telegram.bot_token is required when telegram.enabled=true")
		}
		if cfg.Telegram.ChatID == 0 {
			errs = append(errs, "telegram.chat_id is required when telegram.enabled=true")
		}
	}

	if cfg.Email.Enabled {
		if strings.TrimSpace(cfg.Email.SMTPHost) == "" {
			errs = append(errs, "email.smtp_host is required when email.enabled=true")
		}
		if cfg.Email.SMTPPort == 0 {
			errs = append(errs, "email.smtp_port is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.From) == "" {
			errs = append(errs, "email.from is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.To) == "" {
			errs = append(errs, "email.to is required when email.enabled=true")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// ParseClock parses an "HH:MM" wall-clock value.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("want HH:MM, got %q", s)
	}
	return t, nil
}
