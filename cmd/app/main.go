package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/bootstrap"
	"github.com/Domenick1991/airdesk/internal/console"

	// CONFIG_PATH and file overrides may come from .env
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.Resolve()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}
	defer app.Close()

	if err := console.NewMenu(app.Store, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("console error: %v", err)
	}
}
