package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/pkg/configuration"
)

func main() {
	conf := configuration.Use()
	log := conf.Logger()
	if conf.GoAppEnvironment == configuration.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := NewApp(conf)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	srv := &http.Server{
		Addr:              conf.SocketAddress,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("API server starting on %s", conf.SocketAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
