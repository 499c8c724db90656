package provision

import (
  "context"
  "errors"
  "fmt"
  "sync"

  log "github.com/sirupsen/logrus"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
  "github.com/Irina-Kasatkina/fish-shop/pkg/validator"
  "github.com/Irina-Kasatkina/fish-shop/pkg/worker"
)

var errNoImageSource = errors.New("no image source for product")

type LinkReport struct {
  Linked   int
  Skipped  int
  Failures []LinkFailure
}

type LinkFailure struct {
  ProductId models.ProductId
  Name      string
  Err       error
}

// LinkImages associates source images with created products by name.
// The match policy is fixed for catalog compatibility: exact string
// equality, the first matching source record wins, duplicate names in the
// source list resolve to the first occurrence. Products are handled
// independently, so one failed upload never blocks the rest of the batch.
func (l *Loader) LinkImages(ctx context.Context, products []models.Product, records []SourceRecord) LinkReport {
  pool := worker.NewPool(ctx, l.config.Workers)

  var (
    mu     sync.Mutex
    report LinkReport
  )

  for _, product := range products {
    product := product

    pool.Push(func(ctx context.Context) error {
      err := l.linkProductImage(ctx, product, records)

      mu.Lock()
      defer mu.Unlock()

      switch {
      case err == nil:
        report.Linked++

      case errors.Is(err, errNoImageSource):
        report.Skipped++

      default:
        log.
          WithField("product.id", product.Id).
          WithField("product.name", product.Name).
          Errorf("l.linkProductImage: %v", err)

        report.Failures = append(report.Failures, LinkFailure{
          ProductId: product.Id,
          Name:      product.Name,
          Err:       err,
        })
      }

      return nil
    })
  }

  pool.StopWait()

  return report
}

func (l *Loader) linkProductImage(ctx context.Context, product models.Product, records []SourceRecord) error {
  for _, record := range records {
    if record.Name != product.Name {
      continue
    }

    if err := validator.URL(record.ImageURL); err != nil {
      return fmt.Errorf("validator.URL: %q: %w", record.ImageURL, err)
    }

    imageId, err := l.deps.Commerce.UploadImage(ctx, record.ImageURL)
    if err != nil {
      return fmt.Errorf("l.deps.Commerce.UploadImage: %w", err)
    }

    if err = l.deps.Commerce.LinkImage(ctx, product.Id, imageId); err != nil {
      return fmt.Errorf("l.deps.Commerce.LinkImage: %w", err)
    }

    log.
      WithField("product.id", product.Id).
      WithField("product.name", product.Name).
      WithField("image.id", imageId).
      Info("product image linked")

    return nil
  }

  return errNoImageSource
}
