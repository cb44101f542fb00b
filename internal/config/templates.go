package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# MannWallet Configuration

[analytics]
# Emotional spend ratio above which the high emotional spending insight fires
emotional_spend_threshold = 0.40
# Default analysis window: all, today, this-week, this-month, this-quarter
default_window = "this-month"
# Presentation locale token (labels only, never engine logic)
locale = "en-IN"

[alerts]
# How many days ahead to look for stressful calendar events
lookahead_days = 14

[server]
# HTTP API listen address
addr = "127.0.0.1:8642"

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"

[notifications]
# Enable alert notifications
enabled = false
# Notification level: all, high_only, off
level = "high_only"

[notifications.webhook]
enabled = false
url = ""

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
file = true
`

// createTemplateConfig writes a commented starter config so first runs leave
// something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
