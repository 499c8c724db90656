package commerce

import (
  "context"
  "fmt"

  "github.com/samber/lo"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

// AddCartItem puts a product into the cart in the given quantity.
// Requests are unconditional: repeated identical calls add up on the backend.
func (c *Client) AddCartItem(ctx context.Context, cartId string, productId models.ProductId, quantity int64) (*models.Cart, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.request: %w", err)
  }

  out := cartItemsResponse{}

  resp, err := req.
    SetHeader("X-MOLTIN-CURRENCY", c.config.Currency).
    SetBody(map[string]any{
      "data": map[string]any{
        "id":       productId,
        "type":     "cart_item",
        "quantity": quantity,
      },
    }).
    SetResult(&out).
    Post(fmt.Sprintf("%s/v2/carts/%s/items", c.config.BaseURL, cartId))
  if err != nil {
    return nil, fmt.Errorf("req.Post: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("add cart item %s: status: %s", productId, resp.Status())
  }

  return makeCartSnapshot(cartId, out), nil
}

func (c *Client) RemoveCartItem(ctx context.Context, cartId string, productId models.ProductId) error {
  req, err := c.request(ctx)
  if err != nil {
    return fmt.Errorf("c.request: %w", err)
  }

  resp, err := req.
    Delete(fmt.Sprintf("%s/v2/carts/%s/items/%s", c.config.BaseURL, cartId, productId))
  if err != nil {
    return fmt.Errorf("req.Delete: %w", err)
  }
  if resp.IsError() {
    return fmt.Errorf("remove cart item %s: status: %s", productId, resp.Status())
  }

  return nil
}

// GetCart returns the cart with its backend computed tax inclusive total.
// Items are fetched separately with GetCartItems.
func (c *Client) GetCart(ctx context.Context, cartId string) (*models.Cart, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.request: %w", err)
  }

  out := cartResponse{}

  resp, err := req.
    SetResult(&out).
    Get(fmt.Sprintf("%s/v2/carts/%s", c.config.BaseURL, cartId))
  if err != nil {
    return nil, fmt.Errorf("req.Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("get cart %s: status: %s", cartId, resp.Status())
  }

  return &models.Cart{
    Id: out.Data.Id,
    Total: models.CartTotal{
      Amount:    out.Data.Meta.DisplayPrice.WithTax.Amount,
      Formatted: out.Data.Meta.DisplayPrice.WithTax.Formatted,
    },
  }, nil
}

func (c *Client) GetCartItems(ctx context.Context, cartId string) ([]models.CartItem, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.request: %w", err)
  }

  out := cartItemsResponse{}

  resp, err := req.
    SetResult(&out).
    Get(fmt.Sprintf("%s/v2/carts/%s/items", c.config.BaseURL, cartId))
  if err != nil {
    return nil, fmt.Errorf("req.Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("get cart items %s: status: %s", cartId, resp.Status())
  }

  items := lo.Map(out.Data, func(data cartItemData, _ int) models.CartItem {
    return makeCartItem(data)
  })

  return items, nil
}

func makeCartSnapshot(cartId string, out cartItemsResponse) *models.Cart {
  cart := models.Cart{
    Id: cartId,
    Items: lo.Map(out.Data, func(data cartItemData, _ int) models.CartItem {
      return makeCartItem(data)
    }),
  }

  if out.Meta != nil {
    cart.Total = models.CartTotal{
      Amount:    out.Meta.DisplayPrice.WithTax.Amount,
      Formatted: out.Meta.DisplayPrice.WithTax.Formatted,
    }
  }

  return &cart
}
