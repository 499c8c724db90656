package dialog

import (
  "context"
  "fmt"

  "github.com/spf13/cast"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

// Commerce is the commerce backend access layer consumed by the machine.
type Commerce interface {
  ListProducts(ctx context.Context) ([]models.Product, error)
  GetProduct(ctx context.Context, productId models.ProductId) (*models.Product, error)
  GetImageURL(ctx context.Context, imageId string) (string, error)
  AddCartItem(ctx context.Context, cartId string, productId models.ProductId, quantity int64) (*models.Cart, error)
  RemoveCartItem(ctx context.Context, cartId string, productId models.ProductId) error
  GetCart(ctx context.Context, cartId string) (*models.Cart, error)
  GetCartItems(ctx context.Context, cartId string) ([]models.CartItem, error)
  FindOrCreateCustomer(ctx context.Context, name string, email string) (*models.Customer, bool, error)
}

// Sessions is the keyed store holding the dialog state tag per chat.
// An absent entry reads as the start state.
type Sessions interface {
  Find(ctx context.Context, chatId models.ChatId) (models.DialogState, error)
  Upsert(ctx context.Context, chatId models.ChatId, state models.DialogState) error
}

const (
  DirectiveMenu          DirectiveKind = "menu"
  DirectiveProductDetail DirectiveKind = "product_detail"
  DirectiveCart          DirectiveKind = "cart"
  DirectivePromptEmail   DirectiveKind = "prompt_email"
  DirectiveConfirm       DirectiveKind = "confirm"
  DirectiveError         DirectiveKind = "error"
)

type DirectiveKind = string

// Directive tells the transport what to render. It is decoupled from any
// particular messenger: keyboards and formatting stay on the transport side.
type Directive struct {
  Kind     DirectiveKind
  Message  string
  Products []models.Product
  Product  *models.Product
  ImageURL string
  Cart     *models.Cart
}

// Result of a single transition: the state tag to persist and the directive
// to render. After a failed transition Next equals the prior state, so
// persisting it never advances the dialog.
type Result struct {
  Next      models.DialogState
  Directive Directive
}

type Machine struct {
  deps Dependencies
}

type Dependencies struct {
  Commerce Commerce
}

func NewMachine(deps Dependencies) *Machine {
  return &Machine{deps: deps}
}

// CartId derives the backend cart key from the chat id.
func CartId(chatId models.ChatId) string {
  return cast.ToString(chatId)
}

// Transition computes the next dialog state and the outbound directive for
// one inbound intent. Backend side effects happen here; any backend failure
// is wrapped into ErrBackendUnavailable and leaves the state unchanged.
func (m *Machine) Transition(ctx context.Context, chatId models.ChatId, state models.DialogState, intent Intent) (Result, error) {
  state = models.ParseDialogState(state)

  // The start command resets to the main menu from any state.
  if intent.Kind == IntentStart {
    return m.toMenu(ctx, state)
  }

  switch state {
  case models.DialogStateMenu:
    return m.handleMenu(ctx, chatId, state, intent)

  case models.DialogStateProductDetail:
    return m.handleProductDetail(ctx, chatId, state, intent)

  case models.DialogStateCart:
    return m.handleCart(ctx, chatId, state, intent)

  case models.DialogStateWaitingEmail:
    return m.handleWaitingEmail(ctx, chatId, state, intent)
  }

  // Start state: whatever arrives first behaves as the start command.
  return m.toMenu(ctx, state)
}

func (m *Machine) handleMenu(ctx context.Context, chatId models.ChatId, state models.DialogState, intent Intent) (Result, error) {
  switch intent.Kind {
  case IntentProductSelect:
    return m.toProductDetail(ctx, state, intent.ProductId)

  case IntentCartOpen:
    return m.toCart(ctx, chatId, state)
  }

  return m.defaultView(ctx, chatId, state)
}

func (m *Machine) handleProductDetail(ctx context.Context, chatId models.ChatId, state models.DialogState, intent Intent) (Result, error) {
  switch intent.Kind {
  case IntentQuantitySelect:
    if intent.Quantity <= 0 {
      return Result{
        Next: state,
        Directive: Directive{
          Kind:    DirectiveError,
          Message: "The quantity must be a positive number 👀",
        },
      }, fmt.Errorf("quantity %d: %w", intent.Quantity, ErrInvalidQuantity)
    }

    _, err := m.deps.Commerce.AddCartItem(ctx, CartId(chatId), intent.ProductId, intent.Quantity)
    if err != nil {
      return m.failure(state, fmt.Errorf("m.deps.Commerce.AddCartItem: %w", err))
    }

    result, err := m.toProductDetail(ctx, state, intent.ProductId)
    if err != nil {
      return result, err
    }

    result.Directive.Message = "Added to your cart 🛒"

    return result, nil

  case IntentCartOpen:
    return m.toCart(ctx, chatId, state)

  case IntentBack:
    return m.toMenu(ctx, state)
  }

  return m.defaultView(ctx, chatId, state)
}

func (m *Machine) handleCart(ctx context.Context, chatId models.ChatId, state models.DialogState, intent Intent) (Result, error) {
  switch intent.Kind {
  // Cart delete buttons carry the bare product id as their callback token,
  // so a product select received here means removal.
  case IntentCartItemDelete, IntentProductSelect:
    err := m.deps.Commerce.RemoveCartItem(ctx, CartId(chatId), intent.ProductId)
    if err != nil {
      return m.failure(state, fmt.Errorf("m.deps.Commerce.RemoveCartItem: %w", err))
    }

    return m.toCart(ctx, chatId, state)

  case IntentPayment:
    return Result{
      Next: models.DialogStateWaitingEmail,
      Directive: Directive{
        Kind:    DirectivePromptEmail,
        Message: "Please send us your email to finish the order ✉️",
      },
    }, nil

  case IntentBack:
    return m.toMenu(ctx, state)
  }

  return m.defaultView(ctx, chatId, state)
}

func (m *Machine) handleWaitingEmail(ctx context.Context, chatId models.ChatId, state models.DialogState, intent Intent) (Result, error) {
  if intent.Kind != IntentFreeText {
    return Result{
      Next: state,
      Directive: Directive{
        Kind:    DirectivePromptEmail,
        Message: "Please send us your email to finish the order ✉️",
      },
    }, nil
  }

  email, err := ValidateEmail(intent.Text)
  if err != nil {
    // Recovered locally: the re-prompt itself carries the notice.
    return Result{
      Next: state,
      Directive: Directive{
        Kind:    DirectivePromptEmail,
        Message: "This does not look like an email 😟\nPlease try again, e.g. fisher@example.com",
      },
    }, nil
  }

  _, _, err = m.deps.Commerce.FindOrCreateCustomer(ctx, CartId(chatId), email)
  if err != nil {
    return m.failure(state, fmt.Errorf("m.deps.Commerce.FindOrCreateCustomer: %w", err))
  }

  products, err := m.deps.Commerce.ListProducts(ctx)
  if err != nil {
    return m.failure(state, fmt.Errorf("m.deps.Commerce.ListProducts: %w", err))
  }

  return Result{
    Next: models.DialogStateMenu,
    Directive: Directive{
      Kind:     DirectiveConfirm,
      Message:  fmt.Sprintf("Thanks! The manager will contact you at %s 😉", email),
      Products: products,
    },
  }, nil
}

// defaultView re-emits the view of the current state without changing it.
// A product card cannot be rebuilt from the state tag alone, so the
// product detail state falls back to the main menu view.
func (m *Machine) defaultView(ctx context.Context, chatId models.ChatId, state models.DialogState) (Result, error) {
  if state == models.DialogStateCart {
    return m.toCart(ctx, chatId, state)
  }

  result, err := m.toMenu(ctx, state)
  if err != nil {
    return result, err
  }

  result.Next = state

  return result, nil
}

func (m *Machine) toMenu(ctx context.Context, state models.DialogState) (Result, error) {
  products, err := m.deps.Commerce.ListProducts(ctx)
  if err != nil {
    return m.failure(state, fmt.Errorf("m.deps.Commerce.ListProducts: %w", err))
  }

  return Result{
    Next: models.DialogStateMenu,
    Directive: Directive{
      Kind:     DirectiveMenu,
      Products: products,
    },
  }, nil
}

func (m *Machine) toProductDetail(ctx context.Context, state models.DialogState, productId models.ProductId) (Result, error) {
  product, err := m.deps.Commerce.GetProduct(ctx, productId)
  if err != nil {
    return m.failure(state, fmt.Errorf("m.deps.Commerce.GetProduct: %w", err))
  }

  directive := Directive{
    Kind:    DirectiveProductDetail,
    Product: product,
  }

  if product.ImageId != "" {
    url, err := m.deps.Commerce.GetImageURL(ctx, product.ImageId)
    if err != nil {
      return m.failure(state, fmt.Errorf("m.deps.Commerce.GetImageURL: %w", err))
    }
    directive.ImageURL = url
  }

  return Result{
    Next:      models.DialogStateProductDetail,
    Directive: directive,
  }, nil
}

func (m *Machine) toCart(ctx context.Context, chatId models.ChatId, state models.DialogState) (Result, error) {
  items, err := m.deps.Commerce.GetCartItems(ctx, CartId(chatId))
  if err != nil {
    return m.failure(state, fmt.Errorf("m.deps.Commerce.GetCartItems: %w", err))
  }

  cart, err := m.deps.Commerce.GetCart(ctx, CartId(chatId))
  if err != nil {
    return m.failure(state, fmt.Errorf("m.deps.Commerce.GetCart: %w", err))
  }

  cart.Items = items

  return Result{
    Next: models.DialogStateCart,
    Directive: Directive{
      Kind: DirectiveCart,
      Cart: cart,
    },
  }, nil
}

func (m *Machine) failure(state models.DialogState, err error) (Result, error) {
  return Result{
    Next: state,
    Directive: Directive{
      Kind:    DirectiveError,
      Message: "The shop is unavailable right now 😟\nPlease try again in a moment",
    },
  }, fmt.Errorf("%w: %s", ErrBackendUnavailable, err)
}
