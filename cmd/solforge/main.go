package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/lumenwire/solforge/pkg/server"
)

var configPath = flag.String("config", "config.yaml", "configuration file path")

func main() {
	flag.Parse()

	log := logrus.StandardLogger().WithField("type", "solforge/main")

	// viper.ReadInConfig only returns ConfigFileNotFoundError if it has to
	// search for a default config file because one hasn't been explicitly
	// set, so we check for an explicitly set file ourselves.
	if _, err := os.Stat(*configPath); err == nil {
		viper.SetConfigFile(*configPath)
	} else if !os.IsNotExist(err) {
		log.WithError(err).Error("failed to check if config exists")
		os.Exit(1)
	}

	err := viper.ReadInConfig()
	_, isConfigNotFound := err.(viper.ConfigFileNotFoundError)
	if err != nil && !isConfigNotFound {
		log.WithError(err).Error("failed to load config")
		os.Exit(1)
	}

	viper.SetEnvPrefix("solforge")
	viper.AutomaticEnv()

	cfg := server.LoadConfig()
	srv := server.New(cfg)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case sig := <-shutdownCh:
		log.WithField("signal", sig).Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Error("failed to shut down cleanly")
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server stopped unexpectedly")
			os.Exit(1)
		}
	}
}
