package models

import "github.com/Irina-Kasatkina/fish-shop/pkg/money"

type ProductId = string

type Product struct {
  Id          ProductId    `bson:"id" json:"id"`
  Name        string       `bson:"name" json:"name"`
  Slug        string       `bson:"slug" json:"slug"`
  Sku         string       `bson:"sku" json:"sku"`
  Description string       `bson:"description" json:"description"`
  Price       ProductPrice `bson:"price" json:"price"`
  ImageId     string       `bson:"image_id" json:"image_id"`
}

// ProductPrice keeps the backend amount in integer minor units.
type ProductPrice struct {
  Amount      int64  `bson:"amount" json:"amount"`
  Currency    string `bson:"currency" json:"currency"`
  IncludesTax bool   `bson:"includes_tax" json:"includes_tax"`
}

func (p ProductPrice) String() string {
  return money.String(p.Amount)
}

type CreateProductParams struct {
  Id          int64
  Name        string
  Description string
  Price       int64
}
