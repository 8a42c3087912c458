package bootstrap

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	appconfig "github.com/wolfman30/smilebright-dental/internal/config"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

// ErrSessionSecretRequired is returned in production when SESSION_SECRET is unset.
var ErrSessionSecretRequired = errors.New("bootstrap: SESSION_SECRET is required in production")

// ResolveSessionSecret returns the configured visitor signing secret. Outside
// production a random per-process secret is generated, so visitor cookies do
// not survive a restart.
func ResolveSessionSecret(cfg *appconfig.Config, logger *logging.Logger) (string, error) {
	if cfg != nil {
		if secret := strings.TrimSpace(cfg.SessionSecret); secret != "" {
			return secret, nil
		}
		if cfg.IsProduction() {
			return "", ErrSessionSecretRequired
		}
	}
	if logger == nil {
		logger = logging.Default()
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	logger.Warn("SESSION_SECRET not set; using an ephemeral secret")
	return hex.EncodeToString(buf), nil
}
