package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/sitecms/internal/client/config"
	"github.com/dmitrijs2005/sitecms/internal/client/web"
	"github.com/dmitrijs2005/sitecms/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	if err := web.NewServer(cfg, logger).Run(ctx); err != nil {
		logger.Error(ctx, "web server stopped", "error", err)
		os.Exit(1)
	}

}
