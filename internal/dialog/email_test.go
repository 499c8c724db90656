package dialog

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
  t.Parallel()

  valid := map[string]string{
    "x@y.com":                            "x@y.com",
    "  fisher@example.com  ":             "fisher@example.com",
    "fisher_1+test@mail-host.example.io": "fisher_1+test@mail-host.example.io",
  }

  for text, want := range valid {
    email, err := ValidateEmail(text)
    require.NoError(t, err, "text %q", text)
    assert.Equal(t, want, email)
  }

  invalid := []string{
    "",
    "not-an-email",
    "a@b",
    "@example.com",
    "a b@example.com",
  }

  for _, text := range invalid {
    _, err := ValidateEmail(text)
    assert.ErrorIs(t, err, ErrEmailFormat, "text %q", text)
  }
}
