// Package main Depth Rater API
// @title Depth Rater API
// @version 1.0
// @description A human-rater survey service for qualitative comparison of endoscopy depth-estimation models
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/endovision/depth-rater/internal/export"
	"github.com/endovision/depth-rater/internal/mailer"
	"github.com/endovision/depth-rater/internal/router"
	"github.com/endovision/depth-rater/internal/server"
	"github.com/endovision/depth-rater/internal/session"
	"github.com/endovision/depth-rater/internal/trialset"
	pkgserver "github.com/endovision/depth-rater/pkg/server"
	"github.com/endovision/depth-rater/web"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.FileFS("/", "index.html", web.FS)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load survey configuration", "error", err)
		os.Exit(1)
		return
	}

	// sanity check the survey trees before accepting raters
	items, err := trialset.Scan(cfg.Trees)
	if err != nil {
		slog.Error("Failed to scan survey trees", "error", err)
		os.Exit(1)
		return
	}
	slog.Info("Survey trees scanned", "items", len(items), "categories", len(cfg.Trees.Categories))

	surveyRouter := router.NewSurveyRouter(
		s.Echo,
		cfg.Trees,
		cfg.Models,
		session.NewStore(),
		export.NewXlsxExporter(cfg.ExportPath),
		mailer.NewSMTPMailer(cfg.Mail),
	)
	surveyRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
