package commerce

import (
  "context"
  "fmt"
  "sync"
  "time"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"

  "github.com/Irina-Kasatkina/fish-shop/pkg/cache"
)

const (
  defaultBaseURL  = "https://api.moltin.com"
  defaultCurrency = "USD"

  // The token is refreshed when fewer than two minutes of its
  // lifetime remain.
  tokenRefreshWindow = 120 * time.Second
)

type Client struct {
  config Config
  deps   Dependencies

  mu              sync.Mutex
  token           string
  tokenExpiration time.Time

  // Image links are stable, so file lookups are memoized.
  images *cache.Cache[string, string]
}

type Config struct {
  BaseURL      string
  Currency     string
  ClientId     string `validate:"required"`
  ClientSecret string `validate:"required"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Client *resty.Client `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

func NewClient(config Config, deps Dependencies) (*Client, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  if config.BaseURL == "" {
    config.BaseURL = defaultBaseURL
  }
  if config.Currency == "" {
    config.Currency = defaultCurrency
  }

  return &Client{
    config: config,
    deps:   deps,
    images: cache.NewCache[string, string](),
  }, nil
}

type accessTokenResponse struct {
  AccessToken string `json:"access_token"`
  Expires     int64  `json:"expires"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
  c.mu.Lock()
  defer c.mu.Unlock()

  if time.Until(c.tokenExpiration) >= tokenRefreshWindow {
    return c.token, nil
  }

  token := accessTokenResponse{}

  resp, err := c.deps.Client.R().
    SetContext(ctx).
    SetFormData(map[string]string{
      "client_id":     c.config.ClientId,
      "client_secret": c.config.ClientSecret,
      "grant_type":    "client_credentials",
    }).
    SetResult(&token).
    Post(c.config.BaseURL + "/oauth/access_token")
  if err != nil {
    return "", fmt.Errorf("c.deps.Client.R().Post: %w", err)
  }
  if resp.IsError() {
    return "", fmt.Errorf("oauth access token: status: %s", resp.Status())
  }

  c.token = token.AccessToken
  c.tokenExpiration = time.Unix(token.Expires, 0)

  return c.token, nil
}

func (c *Client) request(ctx context.Context) (*resty.Request, error) {
  token, err := c.accessToken(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.accessToken: %w", err)
  }

  return c.deps.Client.R().
    SetContext(ctx).
    SetAuthToken(token), nil
}
