package main

import (
	"context"
	"log"

	"featuregate-be/internal/bootstrap"
	"featuregate-be/internal/config"
	"featuregate-be/internal/server"
	"featuregate-be/internal/tracer"
	"featuregate-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg, nil)

	// Audit consumer runs in the background for the process lifetime.
	if err := container.AuditConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background audit consumer error: %v", err)
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
