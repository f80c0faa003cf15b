package main

import (
	"context"
	"log"

	"notekeeper-be/internal/bootstrap"
	"notekeeper-be/internal/config"
	"notekeeper-be/internal/server"
	"notekeeper-be/internal/tracer"
	"notekeeper-be/pkg/database"
)

func main() {
	// 1. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Background audit consumer
	go func() {
		if err := container.AuditConsumer.Run(context.Background()); err != nil {
			log.Printf("Background audit consumer error: %v", err)
		}
	}()

	// 6. Serve
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
