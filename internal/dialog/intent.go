package dialog

import (
  "fmt"
  "strings"

  set "github.com/deckarep/golang-set/v2"
  "github.com/spf13/cast"
  "golang.org/x/net/html"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
  "github.com/Irina-Kasatkina/fish-shop/pkg/stringer"
)

const (
  IntentStart          IntentKind = "start"
  IntentFreeText       IntentKind = "free_text"
  IntentProductSelect  IntentKind = "product_select"
  IntentQuantitySelect IntentKind = "quantity_select"
  IntentCartOpen       IntentKind = "cart_open"
  IntentCartItemDelete IntentKind = "cart_item_delete"
  IntentPayment        IntentKind = "payment"
  IntentBack           IntentKind = "back"
)

type IntentKind = string

type Intent struct {
  Kind      IntentKind
  Text      string
  ProductId models.ProductId
  Quantity  int64
}

const StartCommand = "/start"

// Reserved callback tokens rendered on keyboards.
const (
  TokenCart    = "cart"
  TokenBack    = "back"
  TokenPayment = "payment"
)

var reservedTokens = set.NewSet(TokenCart, TokenBack, TokenPayment)

// RawEvent is an inbound transport payload: either a plain message text
// or a keyboard callback token.
type RawEvent struct {
  Text     string
  Callback string
}

// Normalize converts a raw inbound event into a typed intent.
// Malformed callback tokens fail with ErrMalformedIntent; the caller is
// expected to fall back to a free text intent instead of dropping the event.
func Normalize(event RawEvent) (Intent, error) {
  if event.Callback != "" {
    return normalizeCallback(event.Callback)
  }
  return normalizeText(event.Text), nil
}

func FreeTextIntent(text string) Intent {
  return Intent{
    Kind: IntentFreeText,
    Text: text,
  }
}

func normalizeText(text string) Intent {
  text = html.UnescapeString(text)
  text = stringer.SanitizeString(text)

  if text == StartCommand {
    return Intent{Kind: IntentStart}
  }

  return FreeTextIntent(text)
}

func normalizeCallback(token string) (Intent, error) {
  token = stringer.Strip(token)

  if reservedTokens.Contains(token) {
    switch token {
    case TokenCart:
      return Intent{Kind: IntentCartOpen}, nil
    case TokenBack:
      return Intent{Kind: IntentBack}, nil
    case TokenPayment:
      return Intent{Kind: IntentPayment}, nil
    }
  }

  fields := strings.Fields(token)

  switch len(fields) {
  case 1:
    return Intent{
      Kind:      IntentProductSelect,
      ProductId: fields[0],
    }, nil

  case 2:
    quantity, err := cast.ToInt64E(fields[1])
    if err != nil {
      return Intent{}, fmt.Errorf("cast.ToInt64E: %q: %w", fields[1], ErrMalformedIntent)
    }

    return Intent{
      Kind:      IntentQuantitySelect,
      ProductId: fields[0],
      Quantity:  quantity,
    }, nil
  }

  return Intent{}, fmt.Errorf("token has %d fields: %w", len(fields), ErrMalformedIntent)
}
