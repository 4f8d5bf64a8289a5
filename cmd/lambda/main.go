package main

import (
	"context"
	"log"
	"time"

	"github.com/JuanSebastianGarcia23/calzado/infrastructure/config"
	"github.com/JuanSebastianGarcia23/calzado/infrastructure/di"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

// container is built once per execution environment and reused by every
// warm invocation
var container *di.Container

// init runs during cold start
func init() {
	coldStartTime := time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	container.Logger.Info("Lambda cold start completed",
		zap.Duration("duration", time.Since(coldStartTime)),
		zap.String("table", cfg.DynamoDBTable),
		zap.String("storage", cfg.StorageBackend),
	)
}

func main() {
	defer container.Logger.Sync()

	lambda.Start(container.Handler.Handle)
}
