package main

import (
	"fmt"
	"log"

	"labelcheck/internal/config"
	"labelcheck/internal/handler"
	"labelcheck/internal/router"
	"labelcheck/internal/service"
	"labelcheck/internal/verify"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize verification engine
	engine := verify.NewEngine()

	// Initialize services
	verifySvc := service.NewVerificationService(engine, cfg.Verify.MaxBatchSize, cfg.Verify.BatchConcurrency)

	// Initialize handlers
	verifyH := handler.NewVerifyHandler(verifySvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, verifyH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
