package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobmonitor"

const (
	AccountTelegramToken = "telegram_bot_token"
	AccountEmailPassword = "email_password"
)

// Lookup resolves a secret: process environment first (CI-friendly),
// then the OS keychain. Empty string means neither source has it.
func Lookup(envKey, keyringAccount string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if v, err := keyring.Get(KeyringService, keyringAccount); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}

// Set stores a secret in the OS keychain.
func Set(keyringAccount, value string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, value)
}

// Delete removes a secret from the OS keychain.
func Delete(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}
