package mongodb

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

const (
  databaseName       = "fishshop"
  sessionsCollection = "sessions"
)

// SessionStore keeps one dialog state tag per chat id.
// An absent document reads as the start state.
type SessionStore struct {
  client *Client
}

func NewSessionStore(client *Client) *SessionStore {
  return &SessionStore{client: client}
}

func (s *SessionStore) Find(ctx context.Context, chatId models.ChatId) (models.DialogState, error) {
  res, err := s.client.Get(ctx, GetParams{
    CommonParams: CommonParams{
      Database:   databaseName,
      Collection: sessionsCollection,
      StructType: models.Session{},
    },
    Filters: map[string]any{
      "chat_id": chatId,
    },
  })
  if err != nil {
    if errors.Is(err, ErrNotFound) {
      return models.DialogStateStart, nil
    }
    return "", fmt.Errorf("s.client.Get: %w", err)
  }

  session, ok := res.(*models.Session)
  if !ok {
    return "", fmt.Errorf("cast %v with type: %[1]T to: %T failed", res, new(models.Session))
  }

  return models.ParseDialogState(session.State), nil
}

func (s *SessionStore) Upsert(ctx context.Context, chatId models.ChatId, state models.DialogState) error {
  session := models.Session{
    ChatId:    chatId,
    State:     state,
    UpdatedAt: time.Now(),
  }

  _, err := s.client.Upsert(ctx, UpdateParams{
    GetParams: GetParams{
      CommonParams: CommonParams{
        Database:   databaseName,
        Collection: sessionsCollection,
        StructType: models.Session{},
      },
      Filters: map[string]any{
        "chat_id": session.ChatId,
      },
    },
    Document: session,
  })
  if err != nil {
    return fmt.Errorf("s.client.Upsert: %w", err)
  }

  return nil
}
