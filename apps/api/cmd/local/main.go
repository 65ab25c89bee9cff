//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cyphera/cyphera-expense/apps/api/server"
	_ "github.com/cyphera/cyphera-expense/docs"
	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load("../../.env")
	if err != nil {
		// Variables may come straight from the environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	server.StartBackgroundWorkers(ctx)

	port := os.Getenv(constants.EnvPort)
	if port == "" {
		port = constants.DefaultPort
	}

	logger.Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
