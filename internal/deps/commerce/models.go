package commerce

import "github.com/Irina-Kasatkina/fish-shop/internal/models"

// Wire envelopes of the commerce API. Every payload travels under "data".

type productsResponse struct {
  Data []productData `json:"data"`
}

type productResponse struct {
  Data productData `json:"data"`
}

type productData struct {
  Id            string                `json:"id"`
  Type          string                `json:"type"`
  Name          string                `json:"name"`
  Slug          string                `json:"slug"`
  Sku           string                `json:"sku"`
  Description   string                `json:"description"`
  Price         []productPriceData    `json:"price"`
  Relationships *productRelationships `json:"relationships,omitempty"`
}

type productPriceData struct {
  Amount      int64  `json:"amount"`
  Currency    string `json:"currency"`
  IncludesTax bool   `json:"includes_tax"`
}

type productRelationships struct {
  MainImage *relationship `json:"main_image,omitempty"`
}

type relationship struct {
  Data relationshipItem `json:"data"`
}

type relationshipItem struct {
  Type string `json:"type"`
  Id   string `json:"id"`
}

type fileResponse struct {
  Data fileData `json:"data"`
}

type fileData struct {
  Id   string   `json:"id"`
  Link fileLink `json:"link"`
}

type fileLink struct {
  Href string `json:"href"`
}

type cartResponse struct {
  Data cartData `json:"data"`
}

type cartData struct {
  Id   string   `json:"id"`
  Meta cartMeta `json:"meta"`
}

type cartMeta struct {
  DisplayPrice cartDisplayPrice `json:"display_price"`
}

type cartDisplayPrice struct {
  WithTax displayPrice `json:"with_tax"`
}

type displayPrice struct {
  Amount    int64  `json:"amount"`
  Currency  string `json:"currency"`
  Formatted string `json:"formatted"`
}

type cartItemsResponse struct {
  Data []cartItemData `json:"data"`
  Meta *cartMeta      `json:"meta,omitempty"`
}

type cartItemData struct {
  Id        string        `json:"id"`
  ProductId string        `json:"product_id"`
  Name      string        `json:"name"`
  Quantity  int64         `json:"quantity"`
  UnitPrice cartItemPrice `json:"unit_price"`
  Value     cartItemPrice `json:"value"`
}

type cartItemPrice struct {
  Amount int64 `json:"amount"`
}

type customersResponse struct {
  Data []customerData `json:"data"`
}

type customerResponse struct {
  Data customerData `json:"data"`
}

type customerData struct {
  Id    string `json:"id"`
  Name  string `json:"name"`
  Email string `json:"email"`
}

func makeProduct(data productData) models.Product {
  product := models.Product{
    Id:          data.Id,
    Name:        data.Name,
    Slug:        data.Slug,
    Sku:         data.Sku,
    Description: data.Description,
  }

  if len(data.Price) > 0 {
    price := data.Price[0]

    product.Price = models.ProductPrice{
      Amount:      price.Amount,
      Currency:    price.Currency,
      IncludesTax: price.IncludesTax,
    }
  }

  if data.Relationships != nil && data.Relationships.MainImage != nil {
    product.ImageId = data.Relationships.MainImage.Data.Id
  }

  return product
}

func makeCartItem(data cartItemData) models.CartItem {
  return models.CartItem{
    Id:        data.Id,
    ProductId: data.ProductId,
    Name:      data.Name,
    Quantity:  data.Quantity,
    UnitPrice: data.UnitPrice.Amount,
    LineValue: data.Value.Amount,
  }
}

func makeCustomer(data customerData) models.Customer {
  return models.Customer{
    Id:    data.Id,
    Name:  data.Name,
    Email: data.Email,
  }
}
