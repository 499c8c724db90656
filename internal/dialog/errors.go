package dialog

import "errors"

var (
  ErrMalformedIntent    = errors.New("malformed intent token")
  ErrInvalidQuantity    = errors.New("invalid quantity")
  ErrEmailFormat        = errors.New("invalid email format")
  ErrBackendUnavailable = errors.New("commerce backend unavailable")
)
