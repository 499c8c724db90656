package validator

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
  t.Parallel()

  valid := []string{
    "a@b.co",
    "fisher_1+test@mail-host.example.com",
    "UPPER.case@Example.ORG",
  }
  for _, value := range valid {
    assert.NoError(t, Email(value), "value %q", value)
  }

  invalid := []string{
    "",
    "plain-text",
    "a@b",
    "a@@b.co",
    "a b@example.com",
    "a@.com",
  }
  for _, value := range invalid {
    assert.Error(t, Email(value), "value %q", value)
  }
}

func TestURL(t *testing.T) {
  t.Parallel()

  assert.NoError(t, URL("https://img.example.com/salmon.jpg"))
  assert.Error(t, URL("not a url"))
}
