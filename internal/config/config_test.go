package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmonitor/internal/domain"
)

const sampleYAML = `
companies:
  - name: Acme
    url: https://acme.com/careers
    priority: high
  - name: Globex
    url: https://globex.com/jobs
telegram:
  enabled: false
email:
  enabled: false
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "job_state.json", cfg.StateFile)
	assert.Equal(t, 90, cfg.StateExpiryDays)
	assert.Equal(t, 2, cfg.MaxAgeDays())
	assert.Equal(t, 2, cfg.CompanyDelaySeconds)
	assert.Equal(t, "09:00", cfg.Digest.WindowStart)
	assert.Equal(t, "09:30", cfg.Digest.WindowEnd)
	assert.Equal(t, domain.PriorityHigh, cfg.Companies[0].Priority)
	assert.Equal(t, domain.PriorityMedium, cfg.Companies[1].Priority, "missing priority defaults to medium")
}

func TestExplicitZeroMaxAgeDisablesFreshness(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML+"\nmax_job_age_days: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxAgeDays())
}

func TestEnvOverridesEnableChannels(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "4567")
	t.Setenv("EMAIL_PASSWORD", "hunter2")
	t.Setenv("EMAIL_FROM", "me@example.com")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.True(t, cfg.Telegram.Enabled)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, int64(4567), cfg.Telegram.ChatID)

	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, "hunter2", cfg.Email.Password)
	assert.Equal(t, "me@example.com", cfg.Email.From)
	assert.Equal(t, "me@example.com", cfg.Email.To)
}

func TestBadChatIDFailsLoad(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load(writeConfig(t, sampleYAML))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))

	bad := cfg
	bad.Companies = nil
	assert.Error(t, Validate(bad))

	bad = cfg
	bad.Digest.WindowStart = "9am"
	assert.Error(t, Validate(bad))

	bad = cfg
	bad.Telegram.Enabled = true
	assert.Error(t, Validate(bad), "telegram without token/chat_id fails")

	bad = cfg
	bad.Email.Enabled = true
	assert.Error(t, Validate(bad), "email without smtp settings fails")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
