package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/bootstrap"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/database"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/lambdaapi"
)

var (
	logger   *zap.Logger
	dbClient *database.DBClient
	uploader *lambdaapi.Uploader
)

func init() {
	cfg, log, err := bootstrap.Environment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize environment: %v", err))
	}
	logger = log

	dbClient, err = database.NewPostgresClient(cfg.DB, logger)
	if err != nil {
		logger.Fatal("Failed to initialize DB client", zap.Error(err))
	}

	repo := database.NewProductRepository(dbClient.GetDB())
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("Failed to ensure products schema", zap.Error(err))
	}
	uploader = lambdaapi.NewUploader(repo, cfg.AppEnv, cfg.CatalogSeed, logger)
}

func main() {
	defer logger.Sync()
	defer dbClient.Close()
	lambda.Start(uploader.Handle)
}
