package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/bootstrap"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/cart"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/lambdaapi"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/storefront"
)

var (
	logger  *zap.Logger
	handler *lambdaapi.Handler
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

	// Product reads never touch a cart.
	service := storefront.NewService(c, cart.NewMemoryStorage(), cfg.CartStorageKey, nil, logger)
	handler = lambdaapi.NewHandler(service, logger)
}

func main() {
	defer logger.Sync()
	lambda.Start(handler.Products)
}
