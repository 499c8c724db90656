package telegram

import (
  "context"

  telegram "github.com/go-telegram/bot"

  "github.com/Irina-Kasatkina/fish-shop/internal/dialog"
)

// Transport adapts Telegram updates to the dialog state machine:
// normalize the event, read the session, run one transition, persist the
// next state tag and render the resulting directive.
type Transport struct {
  deps Dependencies
}

type Dependencies struct {
  Machine  *dialog.Machine
  Sessions dialog.Sessions
  Telegram *telegram.Bot
}

func NewTransport(deps Dependencies) *Transport {
  return &Transport{deps: deps}
}

func (b *Transport) Start(ctx context.Context) {
  b.registerHandlers(ctx)

  go b.deps.Telegram.Start(ctx)
}
