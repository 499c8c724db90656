package telegram

import (
  "context"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"

  "github.com/Irina-Kasatkina/fish-shop/internal/dialog"
  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

func (b *Transport) handleMessage(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      Warn("chat_id not found")

    return
  }

  b.processEvent(ctx, bot, chatId, dialog.RawEvent{
    Text: update.Message.Text,
  })
}

// handleKeyboardSelect routes inline keyboard callbacks back into the
// dialog machine with the raw callback token.
func (b *Transport) handleKeyboardSelect(ctx context.Context, bot *telegram.Bot, message tgmodels.MaybeInaccessibleMessage, data []byte) {
  chatId, ok := findChatIdInMaybeInaccessible(message)
  if !ok {
    log.
      WithField("inaccessible_message", message).
      Warn("chat_id not found")

    return
  }

  b.processEvent(ctx, bot, chatId, dialog.RawEvent{
    Callback: string(data),
  })
}

func (b *Transport) processEvent(ctx context.Context, bot *telegram.Bot, chatId models.ChatId, event dialog.RawEvent) {
  intent, err := dialog.Normalize(event)
  if err != nil {
    // A malformed token must not crash the conversation.
    log.
      WithField("chat_id", chatId).
      WithField("event.callback", event.Callback).
      Warnf("dialog.Normalize: %v", err)

    intent = dialog.FreeTextIntent(event.Callback)
  }

  state, err := b.deps.Sessions.Find(ctx, chatId)
  if err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.deps.Sessions.Find: %v", err)

    state = models.DialogStateStart
  }

  result, err := b.deps.Machine.Transition(ctx, chatId, state, intent)
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("state", state).
      WithField("intent", intent.Kind).
      Errorf("b.deps.Machine.Transition: %v", err)
  }

  // A failed transition reports the prior state back, so persisting the
  // result never advances the dialog on error.
  if err = b.deps.Sessions.Upsert(ctx, chatId, result.Next); err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("state", result.Next).
      Errorf("b.deps.Sessions.Upsert: %v", err)
  }

  b.render(ctx, bot, chatId, result.Directive)
}
