package lambdaapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/catalog"
)

// LocalCSVFile is read in place of the S3 object when running locally.
const LocalCSVFile = "products.csv"

// UploadEvent is either an S3 notification, an inline CSV payload or a request to
// generate a synthetic catalog.
type UploadEvent struct {
	Records  []events.S3EventRecord `json:"Records,omitempty"`
	CSVData  string                 `json:"csv_data,omitempty"`
	Generate int                    `json:"generate,omitempty"`
}

// Uploader imports products into the catalog store.
type Uploader struct {
	sink   catalog.Sink
	appEnv string
	seed   int64
	logger *zap.Logger
}

// NewUploader returns an uploader writing to sink. seed drives generated uploads.
func NewUploader(sink catalog.Sink, appEnv string, seed int64, logger *zap.Logger) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Uploader{sink: sink, appEnv: appEnv, seed: seed, logger: logger}
}

// Handle reads the products carried by event and upserts them in one batch.
func (u *Uploader) Handle(ctx context.Context, event UploadEvent) error {
	products, err := u.products(event)
	if err != nil {
		return err
	}

	c, err := catalog.New(products)
	if err != nil {
		return fmt.Errorf("rejected upload: %w", err)
	}
	if err := u.sink.StoreProducts(ctx, c.Products()); err != nil {
		return fmt.Errorf("failed to store products: %w", err)
	}

	u.logger.Info("products uploaded", zap.Int("products", c.Len()))
	return nil
}

func (u *Uploader) products(event UploadEvent) ([]models.Product, error) {
	switch {
	case len(event.Records) > 0:
		s3 := event.Records[0].S3
		u.logger.Info("processing S3 event",
			zap.String("bucket", s3.Bucket.Name), zap.String("key", s3.Object.Key))

		if u.appEnv != "local" {
			return nil, errors.New("S3 download is not available outside the local environment")
		}
		u.logger.Info("reading local CSV for S3 simulation", zap.String("file", LocalCSVFile))
		f, err := os.Open(LocalCSVFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read local %s for S3 simulation: %w", LocalCSVFile, err)
		}
		defer f.Close()
		return catalog.ParseCSV(f, u.logger)

	case event.CSVData != "":
		u.logger.Info("processing direct CSV data payload")
		return catalog.ParseCSV(strings.NewReader(event.CSVData), u.logger)

	case event.Generate > 0:
		u.logger.Info("generating catalog", zap.Int("products", event.Generate), zap.Int64("seed", u.seed))
		return catalog.Generate(event.Generate, u.seed), nil
	}
	return nil, errors.New("no S3 event record, CSV data or generate count found in the payload")
}
