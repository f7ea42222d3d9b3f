package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/endovision/depth-rater/internal/mailer"
	"github.com/endovision/depth-rater/internal/trialset"
	"github.com/endovision/depth-rater/pkg/config/env"
)

const defaultConfigPath = "survey.yaml"

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

// SurveyConfig is the application configuration loaded from the survey YAML
// file, with transport credentials overlaid from the environment.
type SurveyConfig struct {
	Trees      trialset.Config `yaml:"trees"`
	Models     [2]string       `yaml:"models"`
	ExportPath string          `yaml:"export_path"`
	Mail       mailer.Config   `yaml:"mail"`
}

func (as *AppConfig) Load() (*SurveyConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/survey_server/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	path := os.Getenv("SURVEY_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey config %s: %w", path, err)
	}

	var cfg SurveyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse survey config %s: %w", path, err)
	}

	if cfg.Models[0] == "" || cfg.Models[1] == "" {
		cfg.Models = [2]string{"DepthPro", "EndoDac"}
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "evaluation_results.xlsx"
	}

	cfg.Mail.LoadEnv()
	cfg.Mail.ApplyDefaults()

	if err := cfg.Trees.Validate(); err != nil {
		return nil, fmt.Errorf("survey trees misconfigured: %w", err)
	}
	if err := cfg.Mail.Validate(); err != nil {
		// Delivery failures are non-fatal by design; a broken mail setup
		// only disables the email step.
		slog.Warn("Mail transport not fully configured, delivery will fail", "error", err)
	}

	return &cfg, nil
}
