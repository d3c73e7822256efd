package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hashlab/api/routes"
	"hashlab/internal/config"
	"hashlab/internal/dao"
	"hashlab/internal/database"
	"hashlab/internal/models"
	"hashlab/internal/notification"
	"hashlab/internal/services"
	apperrors "hashlab/pkg/errors"
	"hashlab/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type ServerOpts struct {
	Port       int
	Ip         string
	DataDir    string
	ConfigPath string
}

func NewServerCommand() *cobra.Command {
	ServerConfig := &ServerOpts{}

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the hashlab server",
		Long:  `Start the hashlab HTTP server serving the JSON API and the web page`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.LoadConfig(ServerConfig.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = ServerConfig.Port
			}
			if cmd.Flags().Changed("ip") {
				cfg.Host = ServerConfig.Ip
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = ServerConfig.DataDir
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cfg.Verbose = true
				cfg.LogLevel = logrus.DebugLevel.String()
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	serverCmd.Flags().IntVarP(&ServerConfig.Port, "port", "p", 5000, "Port to run the server on")
	serverCmd.Flags().StringVarP(&ServerConfig.Ip, "ip", "i", "0.0.0.0", "IP address to bind the server to")
	serverCmd.Flags().StringVarP(&ServerConfig.DataDir, "data-dir", "d", ".", "Directory holding the artifact files")
	serverCmd.Flags().StringVarP(&ServerConfig.ConfigPath, "config", "c", "", "Directory containing hashlab.yaml")

	return serverCmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	log := logger.Default()
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	artifactDao, err := openStore(cfg)
	if err != nil {
		return err
	}

	var attackOpts []services.AttackOptFunc
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		discordClient, err := notification.NewNotificationClient()
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Discord client")
		} else {
			defer discordClient.Close()
			attackOpts = append(attackOpts, services.WithNotifier(discordClient))
			log.Info("Discord notifications enabled")
		}
	} else {
		log.Info("DISCORD_TOKEN not set - Discord notifications disabled")
	}

	if cfg.StorageDriver == config.DriverFile {
		startWatcher(ctx, cfg.DataDir, services.NewHashService(artifactDao), log)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.InitRouter(artifactDao, cfg, attackOpts...),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.WithFields(logger.Fields{
			"addr":    cfg.Addr(),
			"storage": cfg.StorageDriver,
		}).Info("hashlab server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config) (dao.ArtifactDAO, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return dao.NewGormArtifactDAO(db), nil
	case config.DriverFile:
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		return dao.NewFileArtifactDAO(cfg.DataDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownDriver, cfg.StorageDriver)
	}
}

// startWatcher logs artifact edits made outside the API, such as a real
// cracking tool writing result.txt.
func startWatcher(ctx context.Context, dataDir string, hashService services.HashServiceMethods, log *logger.Logger) {
	watcher := services.NewArtifactWatcher(dataDir)
	watcher.OnChange(func(name string, op fsnotify.Op) {
		if name != models.HashesArtifact || !op.Has(fsnotify.Create|fsnotify.Write) {
			return
		}
		if current, err := hashService.CurrentHash(); err == nil {
			log.WithField("hash", current).Debug("Stored hash changed")
		}
	})

	go func() {
		if err := watcher.Watch(ctx); err != nil {
			log.WithError(err).Warn("Artifact watcher stopped")
		}
	}()
}
