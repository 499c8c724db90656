package logger

import (
  log "github.com/sirupsen/logrus"

  "github.com/Irina-Kasatkina/fish-shop/pkg/env"
)

type formatter struct {
  format log.Formatter
  fields map[string]any
}

func (f formatter) Format(entry *log.Entry) ([]byte, error) {
  for k, v := range f.fields {
    if _, exists := entry.Data[k]; !exists {
      entry.Data[k] = v
    }
  }
  return f.format.Format(entry)
}

func Init() {
  InitWithFields(map[string]any{})
}

func InitWithFields(fields map[string]any) {
  var (
    format log.Formatter
    caller bool
  )

  if env.IsProduction() {
    format = new(log.JSONFormatter)
    caller = true
  } else {
    format = new(log.TextFormatter)
    caller = false
  }

  log.SetFormatter(formatter{
    fields: fields,
    format: format,
  })
  log.SetLevel(log.InfoLevel)
  log.SetReportCaller(caller)
}
