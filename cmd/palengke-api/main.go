package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/palengke-dev/palengke/internal/config"
	"github.com/palengke-dev/palengke/internal/logger"
	"github.com/palengke-dev/palengke/internal/router"
	"github.com/palengke-dev/palengke/internal/setup"
)

func main() {
	log.SetFlags(log.Lshortfile)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()
	cfg := config.MustLoad(configFolder)

	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = fmt.Sprint(cfg.Public.Server.Port)
	}

	srv := &http.Server{Addr: ":" + httpPort, Handler: r}

	go func() {
		logger.Log.Info("server started", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.Server.ShutdownTimeout*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("shutdown failed", "error", err)
	}
}
