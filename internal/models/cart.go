package models

type Cart struct {
  Id    string     `bson:"id" json:"id"`
  Items []CartItem `bson:"items" json:"items"`
  Total CartTotal  `bson:"total" json:"total"`
}

type CartItem struct {
  Id        string    `bson:"id" json:"id"`
  ProductId ProductId `bson:"product_id" json:"product_id"`
  Name      string    `bson:"name" json:"name"`
  Quantity  int64     `bson:"quantity" json:"quantity"`
  UnitPrice int64     `bson:"unit_price" json:"unit_price"`
  LineValue int64     `bson:"line_value" json:"line_value"`
}

// CartTotal is reported by the commerce backend tax inclusive.
// The bot renders it as is and never recomputes tax itself.
type CartTotal struct {
  Amount    int64  `bson:"amount" json:"amount"`
  Formatted string `bson:"formatted" json:"formatted"`
}

func (c Cart) IsEmpty() bool {
  return len(c.Items) == 0
}
