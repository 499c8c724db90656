package telegram

import (
  "context"
  "strings"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"

  "github.com/Irina-Kasatkina/fish-shop/internal/dialog"
)

func (b *Transport) registerHandlers(_ context.Context) {
  b.deps.Telegram.RegisterHandler(
    telegram.HandlerTypeMessageText, dialog.StartCommand,
    telegram.MatchTypeExact, b.handleMessage,
  )

  // Any non command text: checkout emails and other free text.
  b.deps.Telegram.RegisterHandlerMatchFunc(
    func(update *tgmodels.Update) bool {
      if update == nil || update.Message == nil {
        return false
      }
      return !strings.HasPrefix(update.Message.Text, "/")
    },
    b.handleMessage,
  )
}
