package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/bootstrap"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/lambdaapi"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/notify"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/storefront"
)

var (
	logger       *zap.Logger
	handler      *lambdaapi.Handler
	closeStorage func()
)

func init() {
	cfg, log, err := bootstrap.Environment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize environment: %v", err))
	}
	logger = log

	c, err := bootstrap.Catalog(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	storage, closeFn, err := bootstrap.CartStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Redis client", zap.Error(err))
	}
	closeStorage = closeFn

	service := storefront.NewService(c, storage, cfg.CartStorageKey, notify.NewLogNotifier(logger), logger)
	handler = lambdaapi.NewHandler(service, logger)
}

func main() {
	defer logger.Sync()
	defer closeStorage()
	lambda.Start(handler.Cart)
}
