package mailer

import (
	"fmt"
	"os"
)

const (
	DefaultSubject = "Colonoscopy Depth Evaluation Results"
	DefaultBody    = "Here are the latest evaluation results in the attached Excel file."
)

// LoadEnv overlays environment-provided transport settings onto the config.
// The credential is environment-only so it never ends up in a config file.
func (c *Config) LoadEnv() {
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("SMTP_SENDER"); v != "" {
		c.Sender = v
	}
	if v := os.Getenv("SMTP_RECIPIENT"); v != "" {
		c.Recipient = v
	}
	c.Password = os.Getenv("SMTP_PASSWORD")
}

func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 465
	}
	if c.Subject == "" {
		c.Subject = DefaultSubject
	}
	if c.Body == "" {
		c.Body = DefaultBody
	}
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("mail host is required")
	}
	if c.Sender == "" {
		return fmt.Errorf("mail sender is required")
	}
	if c.Recipient == "" {
		return fmt.Errorf("mail recipient is required")
	}
	return nil
}
