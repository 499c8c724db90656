package validator

import (
  "fmt"
  "net/url"
  "regexp"
)

// Canonical syntactic check: ASCII letters, digits and _.+- in the local
// part, dot separated labels of letters, digits and - in the domain.
// Deliverability is not verified.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

func Email(value string) error {
  if !emailRegex.MatchString(value) {
    return fmt.Errorf("invalid email format: %q", value)
  }
  return nil
}

func URL(value string) error {
  _, err := url.ParseRequestURI(value)
  return err
}
