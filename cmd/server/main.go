package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/sitecms/internal/logging"
	"github.com/dmitrijs2005/sitecms/internal/server"
	"github.com/dmitrijs2005/sitecms/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
