package provision

import (
  "context"
  "encoding/json"
  "fmt"
  "os"

  log "github.com/sirupsen/logrus"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
  "github.com/Irina-Kasatkina/fish-shop/pkg/worker"
)

// Commerce is the slice of the backend the provisioning flow needs.
type Commerce interface {
  CreateProduct(ctx context.Context, params models.CreateProductParams) (*models.Product, error)
  UploadImage(ctx context.Context, imageURL string) (string, error)
  LinkImage(ctx context.Context, productId models.ProductId, imageId string) error
}

// SourceRecord is one entry of the catalog source file.
type SourceRecord struct {
  Id          int64  `json:"id"`
  Name        string `json:"name"`
  Description string `json:"description"`
  Price       int64  `json:"price"`
  ImageURL    string `json:"image_url"`
}

type Loader struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Workers uint8
}

type Dependencies struct {
  Commerce Commerce
}

func NewLoader(config Config, deps Dependencies) *Loader {
  if config.Workers == 0 {
    config.Workers = worker.DefaultCount
  }
  return &Loader{
    config: config,
    deps:   deps,
  }
}

func ReadSourceRecords(path string) ([]SourceRecord, error) {
  content, err := os.ReadFile(path)
  if err != nil {
    return nil, fmt.Errorf("os.ReadFile: %w", err)
  }

  var records []SourceRecord

  if err = json.Unmarshal(content, &records); err != nil {
    return nil, fmt.Errorf("json.Unmarshal: %w", err)
  }

  return records, nil
}

// CreateProducts creates one shop product per source record.
func (l *Loader) CreateProducts(ctx context.Context, records []SourceRecord) ([]models.Product, error) {
  created := make([]models.Product, 0, len(records))

  for _, record := range records {
    product, err := l.deps.Commerce.CreateProduct(ctx, models.CreateProductParams{
      Id:          record.Id,
      Name:        record.Name,
      Description: record.Description,
      Price:       record.Price,
    })
    if err != nil {
      return nil, fmt.Errorf("l.deps.Commerce.CreateProduct: %q: %w", record.Name, err)
    }

    log.
      WithField("product.id", product.Id).
      WithField("product.name", product.Name).
      Info("shop product created")

    created = append(created, *product)
  }

  return created, nil
}
