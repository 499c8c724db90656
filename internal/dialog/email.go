package dialog

import (
  "fmt"

  "github.com/Irina-Kasatkina/fish-shop/pkg/stringer"
  "github.com/Irina-Kasatkina/fish-shop/pkg/validator"
)

// ValidateEmail checks the checkout email syntactically.
// No deliverability verification is performed.
func ValidateEmail(text string) (string, error) {
  email := stringer.Strip(text)

  if err := validator.Email(email); err != nil {
    return "", fmt.Errorf("validator.Email: %w", ErrEmailFormat)
  }

  return email, nil
}
