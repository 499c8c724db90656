package telegram

import (
  "testing"

  "github.com/stretchr/testify/assert"

  "github.com/Irina-Kasatkina/fish-shop/internal/dialog"
  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

func TestMakeCartText(t *testing.T) {
  t.Parallel()

  cart := models.Cart{
    Items: []models.CartItem{
      {Name: "salmon", Quantity: 2, UnitPrice: 500, LineValue: 1000},
      {Name: "tuna", Quantity: 1, UnitPrice: 300, LineValue: 300},
    },
    Total: models.CartTotal{Amount: 1300},
  }

  text := makeCartText(cart)

  assert.Contains(t, text, "<b>Salmon</b>")
  assert.Contains(t, text, "$5.00 per unit")
  assert.Contains(t, text, "2 units for $10.00")
  assert.Contains(t, text, "$3.00 per unit")
  assert.Contains(t, text, "1 units for $3.00")
  assert.Contains(t, text, "<b>Total: $13.00</b> (tax included)")
}

func TestMakeCartTextPrefersBackendTotal(t *testing.T) {
  t.Parallel()

  cart := models.Cart{
    Items: []models.CartItem{
      {Name: "salmon", Quantity: 2, UnitPrice: 500, LineValue: 1000},
    },
    Total: models.CartTotal{Amount: 1000, Formatted: "$10.40"},
  }

  text := makeCartText(cart)

  assert.Contains(t, text, "<b>Total: $10.40</b>", "the backend total string is shown verbatim")
}

func TestMakeProductText(t *testing.T) {
  t.Parallel()

  directive := dialog.Directive{
    Product: &models.Product{
      Name:        "smoked salmon",
      Description: "<p>Cold smoked, sliced.</p>",
      Price:       models.ProductPrice{Amount: 1250, Currency: "USD"},
    },
    Message: "Added to your cart 🛒",
  }

  text := makeProductText(directive)

  assert.Contains(t, text, "<b>Smoked Salmon</b>")
  assert.Contains(t, text, "$12.50 per unit")
  assert.Contains(t, text, "Cold smoked, sliced.")
  assert.NotContains(t, text, "<p>")
  assert.Contains(t, text, "Added to your cart 🛒")
}

func TestMakeQuantityButtonText(t *testing.T) {
  t.Parallel()

  assert.Equal(t, "1 pc", makeQuantityButtonText(1))
  assert.Equal(t, "5 pcs", makeQuantityButtonText(5))
  assert.Equal(t, "10 pcs", makeQuantityButtonText(10))
}
