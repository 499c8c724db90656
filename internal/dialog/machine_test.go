package dialog

import (
  "context"
  "errors"
  "fmt"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/Irina-Kasatkina/fish-shop/internal/models"
)

type addCartCall struct {
  CartId    string
  ProductId models.ProductId
  Quantity  int64
}

type fakeCommerce struct {
  products []models.Product
  items    []models.CartItem
  total    models.CartTotal

  addCalls    []addCartCall
  removeCalls []models.ProductId
  customers   []string

  failures map[string]error
}

func (f *fakeCommerce) fail(op string) error {
  if f.failures == nil {
    return nil
  }
  return f.failures[op]
}

func (f *fakeCommerce) ListProducts(_ context.Context) ([]models.Product, error) {
  if err := f.fail("ListProducts"); err != nil {
    return nil, err
  }
  return f.products, nil
}

func (f *fakeCommerce) GetProduct(_ context.Context, productId models.ProductId) (*models.Product, error) {
  if err := f.fail("GetProduct"); err != nil {
    return nil, err
  }
  for _, product := range f.products {
    if product.Id == productId {
      return &product, nil
    }
  }
  return nil, fmt.Errorf("product %s not found", productId)
}

func (f *fakeCommerce) GetImageURL(_ context.Context, imageId string) (string, error) {
  if err := f.fail("GetImageURL"); err != nil {
    return "", err
  }
  return "https://files.test/" + imageId, nil
}

func (f *fakeCommerce) AddCartItem(_ context.Context, cartId string, productId models.ProductId, quantity int64) (*models.Cart, error) {
  if err := f.fail("AddCartItem"); err != nil {
    return nil, err
  }
  f.addCalls = append(f.addCalls, addCartCall{
    CartId:    cartId,
    ProductId: productId,
    Quantity:  quantity,
  })
  return &models.Cart{Id: cartId}, nil
}

func (f *fakeCommerce) RemoveCartItem(_ context.Context, _ string, productId models.ProductId) error {
  if err := f.fail("RemoveCartItem"); err != nil {
    return err
  }
  f.removeCalls = append(f.removeCalls, productId)
  return nil
}

func (f *fakeCommerce) GetCart(_ context.Context, cartId string) (*models.Cart, error) {
  if err := f.fail("GetCart"); err != nil {
    return nil, err
  }
  return &models.Cart{
    Id:    cartId,
    Total: f.total,
  }, nil
}

func (f *fakeCommerce) GetCartItems(_ context.Context, _ string) ([]models.CartItem, error) {
  if err := f.fail("GetCartItems"); err != nil {
    return nil, err
  }
  return f.items, nil
}

func (f *fakeCommerce) FindOrCreateCustomer(_ context.Context, _ string, email string) (*models.Customer, bool, error) {
  if err := f.fail("FindOrCreateCustomer"); err != nil {
    return nil, false, err
  }
  f.customers = append(f.customers, email)
  return &models.Customer{Id: "customer-1", Email: email}, true, nil
}

func newFakeCommerce() *fakeCommerce {
  return &fakeCommerce{
    products: []models.Product{
      {Id: "p1", Name: "Salmon", Price: models.ProductPrice{Amount: 500, Currency: "USD"}},
      {Id: "p2", Name: "Tuna", Price: models.ProductPrice{Amount: 300, Currency: "USD"}},
    },
  }
}

func newTestMachine(commerce *fakeCommerce) *Machine {
  return NewMachine(Dependencies{Commerce: commerce})
}

func TestTransitionTable(t *testing.T) {
  t.Parallel()

  const chatId = models.ChatId(42)

  testCases := []struct {
    name     string
    state    models.DialogState
    intent   Intent
    wantNext models.DialogState
    wantKind DirectiveKind
  }{
    {
      name:     "start state treats anything as the start command",
      state:    models.DialogStateStart,
      intent:   FreeTextIntent("hi"),
      wantNext: models.DialogStateMenu,
      wantKind: DirectiveMenu,
    },
    {
      name:     "menu product select opens the product card",
      state:    models.DialogStateMenu,
      intent:   Intent{Kind: IntentProductSelect, ProductId: "p1"},
      wantNext: models.DialogStateProductDetail,
      wantKind: DirectiveProductDetail,
    },
    {
      name:     "menu cart open renders the cart",
      state:    models.DialogStateMenu,
      intent:   Intent{Kind: IntentCartOpen},
      wantNext: models.DialogStateCart,
      wantKind: DirectiveCart,
    },
    {
      name:     "product detail quantity select re-renders the card",
      state:    models.DialogStateProductDetail,
      intent:   Intent{Kind: IntentQuantitySelect, ProductId: "p1", Quantity: 5},
      wantNext: models.DialogStateProductDetail,
      wantKind: DirectiveProductDetail,
    },
    {
      name:     "product detail cart open renders the cart",
      state:    models.DialogStateProductDetail,
      intent:   Intent{Kind: IntentCartOpen},
      wantNext: models.DialogStateCart,
      wantKind: DirectiveCart,
    },
    {
      name:     "product detail back returns to the menu",
      state:    models.DialogStateProductDetail,
      intent:   Intent{Kind: IntentBack},
      wantNext: models.DialogStateMenu,
      wantKind: DirectiveMenu,
    },
    {
      name:     "cart item delete re-renders the cart",
      state:    models.DialogStateCart,
      intent:   Intent{Kind: IntentCartItemDelete, ProductId: "p1"},
      wantNext: models.DialogStateCart,
      wantKind: DirectiveCart,
    },
    {
      name:     "cart product select means removal",
      state:    models.DialogStateCart,
      intent:   Intent{Kind: IntentProductSelect, ProductId: "p1"},
      wantNext: models.DialogStateCart,
      wantKind: DirectiveCart,
    },
    {
      name:     "cart payment asks for an email",
      state:    models.DialogStateCart,
      intent:   Intent{Kind: IntentPayment},
      wantNext: models.DialogStateWaitingEmail,
      wantKind: DirectivePromptEmail,
    },
    {
      name:     "cart back returns to the menu",
      state:    models.DialogStateCart,
      intent:   Intent{Kind: IntentBack},
      wantNext: models.DialogStateMenu,
      wantKind: DirectiveMenu,
    },
    {
      name:     "waiting email accepts a valid address",
      state:    models.DialogStateWaitingEmail,
      intent:   FreeTextIntent("x@y.com"),
      wantNext: models.DialogStateMenu,
      wantKind: DirectiveConfirm,
    },
    {
      name:     "waiting email re-prompts on a bad address",
      state:    models.DialogStateWaitingEmail,
      intent:   FreeTextIntent("not-an-email"),
      wantNext: models.DialogStateWaitingEmail,
      wantKind: DirectivePromptEmail,
    },
    {
      name:     "menu default re-renders the menu",
      state:    models.DialogStateMenu,
      intent:   FreeTextIntent("whatever"),
      wantNext: models.DialogStateMenu,
      wantKind: DirectiveMenu,
    },
    {
      name:     "product detail default keeps the state",
      state:    models.DialogStateProductDetail,
      intent:   FreeTextIntent("whatever"),
      wantNext: models.DialogStateProductDetail,
      wantKind: DirectiveMenu,
    },
    {
      name:     "cart default re-renders the cart",
      state:    models.DialogStateCart,
      intent:   FreeTextIntent("whatever"),
      wantNext: models.DialogStateCart,
      wantKind: DirectiveCart,
    },
    {
      name:     "waiting email default re-prompts",
      state:    models.DialogStateWaitingEmail,
      intent:   Intent{Kind: IntentCartOpen},
      wantNext: models.DialogStateWaitingEmail,
      wantKind: DirectivePromptEmail,
    },
    {
      name:     "unknown stored state resets to start behavior",
      state:    "corrupted-value",
      intent:   FreeTextIntent("hi"),
      wantNext: models.DialogStateMenu,
      wantKind: DirectiveMenu,
    },
  }

  for _, tc := range testCases {
    tc := tc

    t.Run(tc.name, func(t *testing.T) {
      t.Parallel()

      machine := newTestMachine(newFakeCommerce())

      result, err := machine.Transition(context.Background(), chatId, tc.state, tc.intent)
      require.NoError(t, err)

      assert.Equal(t, tc.wantNext, result.Next)
      assert.Equal(t, tc.wantKind, result.Directive.Kind)
    })
  }
}

func TestTransitionStartIdempotent(t *testing.T) {
  t.Parallel()

  states := []models.DialogState{
    models.DialogStateStart,
    models.DialogStateMenu,
    models.DialogStateProductDetail,
    models.DialogStateCart,
    models.DialogStateWaitingEmail,
  }

  for _, state := range states {
    machine := newTestMachine(newFakeCommerce())

    result, err := machine.Transition(context.Background(), 42, state, Intent{Kind: IntentStart})
    require.NoError(t, err)

    assert.Equal(t, models.DialogStateMenu, result.Next)
    assert.Equal(t, DirectiveMenu, result.Directive.Kind)
    assert.Len(t, result.Directive.Products, 2)
  }
}

func TestTransitionInvalidQuantity(t *testing.T) {
  t.Parallel()

  for _, quantity := range []int64{0, -3} {
    commerce := newFakeCommerce()
    machine := newTestMachine(commerce)

    result, err := machine.Transition(context.Background(), 42,
      models.DialogStateProductDetail,
      Intent{Kind: IntentQuantitySelect, ProductId: "p1", Quantity: quantity},
    )

    require.ErrorIs(t, err, ErrInvalidQuantity)
    assert.Equal(t, models.DialogStateProductDetail, result.Next)
    assert.Equal(t, DirectiveError, result.Directive.Kind)
    assert.Empty(t, commerce.addCalls, "the backend must not be called")
  }
}

func TestTransitionBackendFailure(t *testing.T) {
  t.Parallel()

  errBoom := errors.New("boom")

  commerce := newFakeCommerce()
  commerce.failures = map[string]error{"AddCartItem": errBoom}

  machine := newTestMachine(commerce)

  result, err := machine.Transition(context.Background(), 42,
    models.DialogStateProductDetail,
    Intent{Kind: IntentQuantitySelect, ProductId: "p1", Quantity: 5},
  )

  require.ErrorIs(t, err, ErrBackendUnavailable)
  assert.Equal(t, models.DialogStateProductDetail, result.Next, "a failed transition must not advance")
  assert.Equal(t, DirectiveError, result.Directive.Kind)
}

func TestTransitionScenario(t *testing.T) {
  t.Parallel()

  const chatId = models.ChatId(42)

  commerce := newFakeCommerce()
  machine := newTestMachine(commerce)

  intents := []Intent{
    {Kind: IntentStart},
    {Kind: IntentProductSelect, ProductId: "p1"},
    {Kind: IntentQuantitySelect, ProductId: "p1", Quantity: 5},
    {Kind: IntentCartOpen},
    {Kind: IntentPayment},
    FreeTextIntent("x@y.com"),
  }

  state := models.DialogStateStart

  for _, intent := range intents {
    result, err := machine.Transition(context.Background(), chatId, state, intent)
    require.NoError(t, err)

    state = result.Next
  }

  assert.Equal(t, models.DialogStateMenu, state)
  require.Len(t, commerce.addCalls, 1, "exactly one cart mutation expected")
  assert.Equal(t, addCartCall{CartId: "42", ProductId: "p1", Quantity: 5}, commerce.addCalls[0])
  assert.Equal(t, []string{"x@y.com"}, commerce.customers)
}
