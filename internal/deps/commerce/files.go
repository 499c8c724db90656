package commerce

import (
  "context"
  "fmt"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

// UploadImage loads an image into the backend file store by its URL
// and returns the created file id.
func (c *Client) UploadImage(ctx context.Context, imageURL string) (string, error) {
  req, err := c.request(ctx)
  if err != nil {
    return "", fmt.Errorf("c.request: %w", err)
  }

  out := fileResponse{}

  resp, err := req.
    SetMultipartFormData(map[string]string{
      "file_location": imageURL,
    }).
    SetResult(&out).
    Post(c.config.BaseURL + "/v2/files")
  if err != nil {
    return "", fmt.Errorf("req.Post: %w", err)
  }
  if resp.IsError() {
    return "", fmt.Errorf("upload image: status: %s", resp.Status())
  }

  return out.Data.Id, nil
}

func (c *Client) GetImageURL(ctx context.Context, imageId string) (string, error) {
  if url, ok := c.images.Get(imageId); ok {
    return url, nil
  }

  req, err := c.request(ctx)
  if err != nil {
    return "", fmt.Errorf("c.request: %w", err)
  }

  out := fileResponse{}

  resp, err := req.
    SetResult(&out).
    Get(fmt.Sprintf("%s/v2/files/%s", c.config.BaseURL, imageId))
  if err != nil {
    return "", fmt.Errorf("req.Get: %w", err)
  }
  if resp.IsError() {
    return "", fmt.Errorf("get image %s: status: %s", imageId, resp.Status())
  }

  c.images.Set(imageId, out.Data.Link.Href)

  return out.Data.Link.Href, nil
}

// LinkImage attaches an uploaded file to a product as its main image.
func (c *Client) LinkImage(ctx context.Context, productId models.ProductId, imageId string) error {
  req, err := c.request(ctx)
  if err != nil {
    return fmt.Errorf("c.request: %w", err)
  }

  resp, err := req.
    SetBody(map[string]any{
      "data": map[string]any{
        "type": "main_image",
        "id":   imageId,
      },
    }).
    Post(fmt.Sprintf("%s/v2/products/%s/relationships/main-image", c.config.BaseURL, productId))
  if err != nil {
    return fmt.Errorf("req.Post: %w", err)
  }
  if resp.IsError() {
    return fmt.Errorf("link image %s to product %s: status: %s", imageId, productId, resp.Status())
  }

  return nil
}
