package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/bootstrap"

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

	if err := bootstrap.Run(ctx, cfg, app.Flights, app.Store); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
