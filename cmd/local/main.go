package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/suggest-messages-lambda/internal/config"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/container"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/router"
)

func main() {
	envErr := loadDotEnv(".env")

	c := container.New()
	log := config.Logger
	if envErr != nil {
		log.WithError(envErr).Warn("Failed to load .env file")
	}

	srv := &http.Server{
		Addr:              c.Settings.HTTPAddr,
		Handler:           router.New(c.RouterConfig()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("Starting local server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server exited with error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Server stopped")
}
