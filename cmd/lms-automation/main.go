package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/lms-automation/internal/backup"
	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/driver"
	"github.com/MKhiriev/lms-automation/internal/installer"
	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/MKhiriev/lms-automation/internal/overlay"
	"github.com/MKhiriev/lms-automation/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fallback, _ := logger.NewLogger("lms-automation", config.Log{})
		fallback.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewLogger("lms-automation", cfg.Log)
	if err != nil {
		fallback, _ := logger.NewLogger("lms-automation", config.Log{})
		fallback.Fatal().Err(err).Msg("error creating logger")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Backup.SourceDir != "" {
		runBackup(ctx, cfg, log)
		return
	}

	if err = runDriver(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("driver run error")
	}
}

func runBackup(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) {
	report, err := backup.New(cfg.Backup, log).Run(ctx, cfg.Backup.SourceDir, cfg.Backup.DefaultRoot)
	if !backup.Succeeded(err) {
		log.Fatal().Err(err).Strs("copied", report.Copied).Msg("backup failed")
	}

	fmt.Println(report.Folder)
}

func runDriver(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	edgeInstaller, err := installer.NewEdgeInstaller(cfg.Driver, log)
	if err != nil {
		return fmt.Errorf("create driver installer: %w", err)
	}

	bootstrapper := driver.NewBootstrapper(cfg.Driver, edgeInstaller, driver.NewSeleniumOpener(os.Stderr, log), log)
	session, err := bootstrapper.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if quitErr := session.Quit(); quitErr != nil {
			log.Error().Err(quitErr).Msg("error closing EdgeDriver session")
		}
	}()

	if _, err = overlay.Inject(session); err != nil {
		return err
	}
	if cfg.Overlay.Message != "" {
		if err = overlay.Show(session, cfg.Overlay.Message); err != nil {
			return err
		}
	}

	log.Info().Msg("session is ready, press Ctrl+C to quit")
	<-ctx.Done()

	return nil
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
