package commerce

import (
  "context"
  "fmt"

  "github.com/samber/lo"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.request: %w", err)
  }

  out := productsResponse{}

  resp, err := req.
    SetResult(&out).
    Get(c.config.BaseURL + "/v2/products")
  if err != nil {
    return nil, fmt.Errorf("req.Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("list products: status: %s", resp.Status())
  }

  products := lo.FilterMap(out.Data, func(data productData, _ int) (models.Product, bool) {
    return makeProduct(data), data.Type == "product"
  })

  return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productId models.ProductId) (*models.Product, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.request: %w", err)
  }

  out := productResponse{}

  resp, err := req.
    SetResult(&out).
    Get(fmt.Sprintf("%s/v2/products/%s", c.config.BaseURL, productId))
  if err != nil {
    return nil, fmt.Errorf("req.Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("get product %s: status: %s", productId, resp.Status())
  }

  product := makeProduct(out.Data)

  return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, params models.CreateProductParams) (*models.Product, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.request: %w", err)
  }

  out := productResponse{}

  resp, err := req.
    SetBody(map[string]any{
      "data": map[string]any{
        "type":         "product",
        "name":         params.Name,
        "slug":         fmt.Sprintf("product-item-%d", params.Id),
        "sku":          fmt.Sprint(params.Id),
        "description":  params.Description,
        "manage_stock": false,
        "price": []map[string]any{
          {
            "amount":       params.Price,
            "currency":     c.config.Currency,
            "includes_tax": true,
          },
        },
        "status":         "live",
        "commodity_type": "physical",
      },
    }).
    SetResult(&out).
    Post(c.config.BaseURL + "/v2/products")
  if err != nil {
    return nil, fmt.Errorf("req.Post: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("create product %q: status: %s", params.Name, resp.Status())
  }

  product := makeProduct(out.Data)

  return &product, nil
}
