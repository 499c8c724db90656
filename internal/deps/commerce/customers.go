package commerce

import (
  "context"
  "fmt"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

// FindOrCreateCustomer looks a customer up by email and creates one when
// none exists yet. The boolean reports whether a record was created.
func (c *Client) FindOrCreateCustomer(ctx context.Context, name string, email string) (*models.Customer, bool, error) {
  req, err := c.request(ctx)
  if err != nil {
    return nil, false, fmt.Errorf("c.request: %w", err)
  }

  found := customersResponse{}

  resp, err := req.
    SetQueryParam("filter", fmt.Sprintf("eq(email,%s)", email)).
    SetResult(&found).
    Get(c.config.BaseURL + "/v2/customers")
  if err != nil {
    return nil, false, fmt.Errorf("req.Get: %w", err)
  }
  if resp.IsError() {
    return nil, false, fmt.Errorf("find customer: status: %s", resp.Status())
  }

  if len(found.Data) > 0 {
    customer := makeCustomer(found.Data[0])
    return &customer, false, nil
  }

  req, err = c.request(ctx)
  if err != nil {
    return nil, false, fmt.Errorf("c.request: %w", err)
  }

  created := customerResponse{}

  resp, err = req.
    SetBody(map[string]any{
      "data": map[string]any{
        "type":  "customer",
        "name":  name,
        "email": email,
      },
    }).
    SetResult(&created).
    Post(c.config.BaseURL + "/v2/customers")
  if err != nil {
    return nil, false, fmt.Errorf("req.Post: %w", err)
  }
  if resp.IsError() {
    return nil, false, fmt.Errorf("create customer: status: %s", resp.Status())
  }

  customer := makeCustomer(created.Data)

  return &customer, true, nil
}
