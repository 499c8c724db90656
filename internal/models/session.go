package models

import "time"

const (
  DialogStateStart         DialogState = "start"
  DialogStateMenu          DialogState = "menu"
  DialogStateProductDetail DialogState = "product_detail"
  DialogStateCart          DialogState = "cart"
  DialogStateWaitingEmail  DialogState = "waiting_email"
)

type DialogState = string

type ChatId = int64

// Session is the single persisted record per conversation: a chat id and
// the dialog state tag that determines which transition rules apply next.
type Session struct {
  ChatId    ChatId      `bson:"chat_id" json:"chat_id"`
  State     DialogState `bson:"state" json:"state"`
  UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}

// ParseDialogState maps stored values to a known state tag.
// Unknown or corrupted values fall back to the start state.
func ParseDialogState(value string) DialogState {
  switch value {
  case DialogStateMenu,
    DialogStateProductDetail,
    DialogStateCart,
    DialogStateWaitingEmail:
    return value
  }
  return DialogStateStart
}
