package main

import (
  "context"
  "net/http"
  "os"
  "os/signal"
  "syscall"

  "github.com/go-resty/resty/v2"
  tgbot "github.com/go-telegram/bot"
  "github.com/joho/godotenv"
  log "github.com/sirupsen/logrus"

  tgtransport "github.com/Irina-Kasatkina/fish-shop/internal/app/telegram"
  "github.com/Irina-Kasatkina/fish-shop/internal/deps/commerce"
  "github.com/Irina-Kasatkina/fish-shop/internal/deps/storage/mongodb"
  "github.com/Irina-Kasatkina/fish-shop/internal/dialog"
  "github.com/Irina-Kasatkina/fish-shop/pkg/logger"
)

func main() {
  ctx := context.Background()

  if err := godotenv.Load(); err != nil {
    log.Warnf("godotenv.Load: %v", err)
  }

  logger.Init()

  log.Warn("fish shop bot initializing")

  mongoClient, err := mongodb.NewClient(ctx,
    mongodb.Config{
      Host: os.Getenv("MONGODB_HOST"),
      Port: os.Getenv("MONGODB_PORT"),
      Authentication: &mongodb.Authentication{
        User:     os.Getenv("MONGODB_USER"),
        Password: os.Getenv("MONGODB_PASSWORD"),
      },
    },
    mongodb.Dependencies{
      Client: http.DefaultClient,
    })
  if err != nil {
    log.Fatalf("mongodb.NewClient: %v", err)
  }

  commerceClient, err := commerce.NewClient(
    commerce.Config{
      ClientId:     os.Getenv("MOLTIN_CLIENT_ID"),
      ClientSecret: os.Getenv("MOLTIN_CLIENT_SECRET"),
    },
    commerce.Dependencies{
      Client: resty.NewWithClient(http.DefaultClient),
    })
  if err != nil {
    log.Fatalf("commerce.NewClient: %v", err)
  }

  telegramClient, err := tgbot.New(os.Getenv("TELEGRAM_BOT_TOKEN"))
  if err != nil {
    log.Fatalf("tgbot.New: %v", err)
  }

  machine := dialog.NewMachine(dialog.Dependencies{
    Commerce: commerceClient,
  })

  transport := tgtransport.NewTransport(tgtransport.Dependencies{
    Machine:  machine,
    Sessions: mongodb.NewSessionStore(mongoClient),
    Telegram: telegramClient,
  })

  transport.Start(ctx)

  log.Warn("fish shop bot started")

  exitSignal := make(chan os.Signal, 1)
  signal.Notify(exitSignal, syscall.SIGINT, syscall.SIGTERM)
  <-exitSignal
}
