package provision

import (
  "context"
  "errors"
  "sync"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

type fakeCommerce struct {
  mu sync.Mutex

  uploads []string
  links   map[models.ProductId]string

  failUploads map[string]error
}

func newFakeCommerce() *fakeCommerce {
  return &fakeCommerce{links: make(map[models.ProductId]string)}
}

func (f *fakeCommerce) CreateProduct(_ context.Context, params models.CreateProductParams) (*models.Product, error) {
  return &models.Product{
    Id:          models.ProductId(params.Name),
    Name:        params.Name,
    Description: params.Description,
    Price:       models.ProductPrice{Amount: params.Price},
  }, nil
}

func (f *fakeCommerce) UploadImage(_ context.Context, imageURL string) (string, error) {
  f.mu.Lock()
  defer f.mu.Unlock()

  if err := f.failUploads[imageURL]; err != nil {
    return "", err
  }

  f.uploads = append(f.uploads, imageURL)

  return "img-" + imageURL, nil
}

func (f *fakeCommerce) LinkImage(_ context.Context, productId models.ProductId, imageId string) error {
  f.mu.Lock()
  defer f.mu.Unlock()

  f.links[productId] = imageId

  return nil
}

func TestLinkImagesFirstMatchWins(t *testing.T) {
  t.Parallel()

  commerce := newFakeCommerce()

  loader := NewLoader(Config{Workers: 1}, Dependencies{Commerce: commerce})

  products := []models.Product{
    {Id: "p1", Name: "Salmon"},
    {Id: "p2", Name: "Tuna"},
  }

  records := []SourceRecord{
    {Name: "Tuna", ImageURL: "https://img.test/u1"},
    {Name: "Salmon", ImageURL: "https://img.test/u2"},
    {Name: "Salmon", ImageURL: "https://img.test/u3"},
  }

  report := loader.LinkImages(context.Background(), products, records)

  assert.Equal(t, 2, report.Linked)
  assert.Zero(t, report.Skipped)
  assert.Empty(t, report.Failures)

  assert.Equal(t, "img-https://img.test/u2", commerce.links["p1"], "the first Salmon record wins")
  assert.Equal(t, "img-https://img.test/u1", commerce.links["p2"])
  assert.NotContains(t, commerce.uploads, "https://img.test/u3", "later duplicates are never uploaded")
}

func TestLinkImagesSkipsUnmatchedProducts(t *testing.T) {
  t.Parallel()

  commerce := newFakeCommerce()

  loader := NewLoader(Config{Workers: 1}, Dependencies{Commerce: commerce})

  products := []models.Product{
    {Id: "p1", Name: "Cod"},
  }

  records := []SourceRecord{
    {Name: "Salmon", ImageURL: "https://img.test/u1"},
  }

  report := loader.LinkImages(context.Background(), products, records)

  assert.Zero(t, report.Linked)
  assert.Equal(t, 1, report.Skipped)
  assert.Empty(t, report.Failures)
  assert.Empty(t, commerce.uploads)
}

func TestLinkImagesIsolatesFailures(t *testing.T) {
  t.Parallel()

  errBoom := errors.New("boom")

  commerce := newFakeCommerce()
  commerce.failUploads = map[string]error{"https://img.test/u1": errBoom}

  loader := NewLoader(Config{Workers: 1}, Dependencies{Commerce: commerce})

  products := []models.Product{
    {Id: "p1", Name: "Salmon"},
    {Id: "p2", Name: "Tuna"},
  }

  records := []SourceRecord{
    {Name: "Salmon", ImageURL: "https://img.test/u1"},
    {Name: "Tuna", ImageURL: "https://img.test/u2"},
  }

  report := loader.LinkImages(context.Background(), products, records)

  assert.Equal(t, 1, report.Linked)
  assert.Zero(t, report.Skipped)

  require.Len(t, report.Failures, 1)
  assert.Equal(t, models.ProductId("p1"), report.Failures[0].ProductId)
  assert.ErrorIs(t, report.Failures[0].Err, errBoom)

  assert.Equal(t, "img-https://img.test/u2", commerce.links["p2"], "other products still get linked")
}
