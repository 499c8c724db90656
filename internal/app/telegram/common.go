package telegram

import (
  "context"
  "fmt"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  tginline "github.com/go-telegram/ui/keyboard/inline"
  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
)

type sendMessageParams struct {
  ChatId int64
  Text   string
  Reply  tgmodels.ReplyMarkup
}

func (b *Transport) sendMessage(ctx context.Context, params sendMessageParams) error {
  _, err := b.deps.Telegram.SendMessage(ctx, &telegram.SendMessageParams{
    ChatID:      params.ChatId,
    Text:        params.Text,
    ParseMode:   tgmodels.ParseModeHTML,
    ReplyMarkup: params.Reply,
    LinkPreviewOptions: &tgmodels.LinkPreviewOptions{
      IsDisabled: lo.ToPtr(true),
    },
  })
  if err != nil {
    return fmt.Errorf("b.deps.Telegram.SendMessage: %w", err)
  }

  return nil
}

type sendPhotoParams struct {
  ChatId   int64
  PhotoURL string
  Caption  string
  Reply    tgmodels.ReplyMarkup
}

func (b *Transport) sendPhoto(ctx context.Context, params sendPhotoParams) error {
  _, err := b.deps.Telegram.SendPhoto(ctx, &telegram.SendPhotoParams{
    ChatID:      params.ChatId,
    Photo:       &tgmodels.InputFileString{Data: params.PhotoURL},
    Caption:     params.Caption,
    ParseMode:   tgmodels.ParseModeHTML,
    ReplyMarkup: params.Reply,
  })
  if err != nil {
    return fmt.Errorf("b.deps.Telegram.SendPhoto: %w", err)
  }

  return nil
}

func newInlineKeyboard(bot *telegram.Bot, prefix string) *tginline.Keyboard {
  return tginline.New(bot,
    tginline.OnError(func(err error) {
      log.Errorf("telegram.InlineKeyboard: %v", err)
    }),
    tginline.WithPrefix(prefix),
    tginline.NoDeleteAfterClick(),
  )
}

func findChatIdInUpdate(update *tgmodels.Update) (int64, bool) {
  if update != nil && update.Message != nil && update.Message.Chat.ID != 0 {
    return update.Message.Chat.ID, true
  }
  return 0, false
}

func findChatIdInMaybeInaccessible(msg tgmodels.MaybeInaccessibleMessage) (int64, bool) {
  if msg.Message != nil && msg.Message.Chat.ID != 0 {
    return msg.Message.Chat.ID, true
  }
  if msg.InaccessibleMessage != nil && msg.InaccessibleMessage.Chat.ID != 0 {
    return msg.InaccessibleMessage.Chat.ID, true
  }
  return 0, false
}
