package main

import (
  "context"
  "flag"
  "net/http"
  "os"

  "github.com/go-resty/resty/v2"
  "github.com/joho/godotenv"
  log "github.com/sirupsen/logrus"

  "github.com/Irina-Kasatkina/fish-shop/internal/deps/commerce"
  "github.com/Irina-Kasatkina/fish-shop/internal/provision"
  "github.com/Irina-Kasatkina/fish-shop/pkg/logger"
)

func main() {
  ctx := context.Background()

  catalogPath := flag.String("catalog", "catalog.json", "path to the catalog source file")
  flag.Parse()

  if err := godotenv.Load(); err != nil {
    log.Warnf("godotenv.Load: %v", err)
  }

  logger.Init()

  commerceClient, err := commerce.NewClient(
    commerce.Config{
      ClientId:     os.Getenv("MOLTIN_CLIENT_ID"),
      ClientSecret: os.Getenv("MOLTIN_CLIENT_SECRET"),
    },
    commerce.Dependencies{
      Client: resty.NewWithClient(http.DefaultClient),
    })
  if err != nil {
    log.Fatalf("commerce.NewClient: %v", err)
  }

  loader := provision.NewLoader(provision.Config{}, provision.Dependencies{
    Commerce: commerceClient,
  })

  records, err := provision.ReadSourceRecords(*catalogPath)
  if err != nil {
    log.Fatalf("provision.ReadSourceRecords: %v", err)
  }

  if _, err = loader.CreateProducts(ctx, records); err != nil {
    log.Fatalf("loader.CreateProducts: %v", err)
  }

  // Images are matched against the full backend product list, so catalogs
  // provisioned in several runs still get their pictures.
  products, err := commerceClient.ListProducts(ctx)
  if err != nil {
    log.Fatalf("commerceClient.ListProducts: %v", err)
  }

  report := loader.LinkImages(ctx, products, records)

  log.
    WithField("linked", report.Linked).
    WithField("skipped", report.Skipped).
    WithField("failed", len(report.Failures)).
    Info("catalog images linked")
}
