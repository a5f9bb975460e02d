package order

import (
	"errors"
	"math"
	"strings"

	"roomservice/internal/pkg/errs"
	"roomservice/internal/pkg/guard"
)

// MaxQuantity is the largest quantity the order_items.quantity INTEGER column holds.
const MaxQuantity = math.MaxInt32

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order. Items have no identity of their own in the
// domain: an order's item collection is always replaced as a whole.
type Item struct {
	product  string
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a line item. The product name is trimmed and must not be
// blank; the quantity must be within [1, MaxQuantity].
func NewItem(product string, quantity int) (Item, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return Item{}, errs.NewValueIsRequiredError("product")
	}
	if quantity < 1 || quantity > MaxQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}

	return Item{
		product:  product,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Product() string {
	return i.product
}

func (i Item) Quantity() int {
	return i.quantity
}
