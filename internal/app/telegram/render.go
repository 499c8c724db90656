package telegram

import (
  "context"
  "fmt"
  "strings"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"

  "github.com/Irina-Kasatkina/fish-shop/internal/dialog"
  "github.com/Irina-Kasatkina/fish-shop/internal/models"
  "github.com/Irina-Kasatkina/fish-shop/pkg/money"
  "github.com/Irina-Kasatkina/fish-shop/pkg/stringer"
)

// Quantity options offered on the product card. The machine accepts any
// positive integer, the keyboard just offers the common picks.
var quantityOptions = []int64{1, 5, 10}

func (b *Transport) render(ctx context.Context, bot *telegram.Bot, chatId models.ChatId, directive dialog.Directive) {
  var err error

  switch directive.Kind {
  case dialog.DirectiveMenu:
    err = b.renderMenu(ctx, bot, chatId, directive)

  case dialog.DirectiveProductDetail:
    err = b.renderProductDetail(ctx, bot, chatId, directive)

  case dialog.DirectiveCart:
    err = b.renderCart(ctx, bot, chatId, directive)

  case dialog.DirectivePromptEmail, dialog.DirectiveError:
    err = b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   directive.Message,
    })

  case dialog.DirectiveConfirm:
    err = b.renderConfirm(ctx, bot, chatId, directive)

  default:
    log.
      WithField("chat_id", chatId).
      WithField("directive", directive.Kind).
      Warn("directive skipped")

    return
  }

  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("directive", directive.Kind).
      Errorf("render failed: %v", err)
  }
}

func (b *Transport) renderMenu(ctx context.Context, bot *telegram.Bot, chatId models.ChatId, directive dialog.Directive) error {
  return b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text: `<b>Hello! I'm a fish shop bot 🐟</b>
Choose a product:`,
    Reply: b.newMenuKeyboard(bot, directive.Products),
  })
}

func (b *Transport) renderConfirm(ctx context.Context, bot *telegram.Bot, chatId models.ChatId, directive dialog.Directive) error {
  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   directive.Message,
  })
  if err != nil {
    return fmt.Errorf("b.sendMessage: %w", err)
  }

  return b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   `You are back in the shop menu 💬`,
    Reply:  b.newMenuKeyboard(bot, directive.Products),
  })
}

func (b *Transport) renderProductDetail(ctx context.Context, bot *telegram.Bot, chatId models.ChatId, directive dialog.Directive) error {
  text := makeProductText(directive)

  reply := newInlineKeyboard(bot, "product")
  for _, quantity := range quantityOptions {
    reply = reply.Row().Button(
      makeQuantityButtonText(quantity), []byte(fmt.Sprintf("%s %d", directive.Product.Id, quantity)),
      b.handleKeyboardSelect,
    )
  }
  reply = reply.
    Row().Button("Cart 🛒", []byte(dialog.TokenCart), b.handleKeyboardSelect).
    Row().Button("Back", []byte(dialog.TokenBack), b.handleKeyboardSelect)

  if directive.ImageURL != "" {
    return b.sendPhoto(ctx, sendPhotoParams{
      ChatId:   chatId,
      PhotoURL: directive.ImageURL,
      Caption:  text,
      Reply:    reply,
    })
  }

  return b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   text,
    Reply:  reply,
  })
}

func (b *Transport) renderCart(ctx context.Context, bot *telegram.Bot, chatId models.ChatId, directive dialog.Directive) error {
  cart := directive.Cart

  if cart.IsEmpty() {
    reply := newInlineKeyboard(bot, "cart").
      Row().Button("Back", []byte(dialog.TokenBack), b.handleKeyboardSelect)

    return b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   `Your cart is empty 🛒`,
      Reply:  reply,
    })
  }

  reply := newInlineKeyboard(bot, "cart")
  for _, item := range cart.Items {
    reply = reply.Row().Button(
      fmt.Sprintf("Remove %s ❌", item.Name), []byte(item.ProductId),
      b.handleKeyboardSelect,
    )
  }
  reply = reply.
    Row().Button("Pay 💳", []byte(dialog.TokenPayment), b.handleKeyboardSelect).
    Row().Button("Back", []byte(dialog.TokenBack), b.handleKeyboardSelect)

  return b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   makeCartText(*cart),
    Reply:  reply,
  })
}

func (b *Transport) newMenuKeyboard(bot *telegram.Bot, products []models.Product) tgmodels.ReplyMarkup {
  reply := newInlineKeyboard(bot, "menu")
  for _, product := range products {
    reply = reply.Row().Button(product.Name, []byte(product.Id), b.handleKeyboardSelect)
  }
  return reply.Row().Button("Cart 🛒", []byte(dialog.TokenCart), b.handleKeyboardSelect)
}

func makeProductText(directive dialog.Directive) string {
  product := directive.Product

  text := fmt.Sprintf(`<b>%s</b>
%s per unit

%s`,
    stringer.ToTitle(product.Name),
    product.Price.String(),
    stringer.StripTags(product.Description),
  )

  if directive.Message != "" {
    text += fmt.Sprintf("\n\n%s", directive.Message)
  }

  return text
}

func makeCartText(cart models.Cart) string {
  sb := strings.Builder{}

  for _, item := range cart.Items {
    sb.WriteString(fmt.Sprintf(`<b>%s</b>
%s per unit
%d units for %s

`,
      stringer.ToTitle(item.Name),
      money.String(item.UnitPrice),
      item.Quantity,
      money.String(item.LineValue),
    ))
  }

  total := cart.Total.Formatted
  if total == "" {
    total = money.String(cart.Total.Amount)
  }

  sb.WriteString(fmt.Sprintf("<b>Total: %s</b> (tax included)", total))

  return sb.String()
}

func makeQuantityButtonText(quantity int64) string {
  if quantity == 1 {
    return "1 pc"
  }
  return fmt.Sprintf("%d pcs", quantity)
}
