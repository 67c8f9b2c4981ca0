package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maitighar/kagaj/internal/cartstore"
	"github.com/maitighar/kagaj/internal/domain"
	"github.com/shopspring/decimal"
)

type cartService struct {
	store cartstore.Store
}

// NewCartService creates a CartService over the given blob store.
func NewCartService(store cartstore.Store) domain.CartService {
	return &cartService{store: store}
}

// AddItem merges a pending selection into the cart.
//
// The stored price of an existing line is deliberately not refreshed: the
// price a shopper first saw stays on the line even if the catalog price
// changed between visits. Flagged for product review; preserve until decided.
func (s *cartService) AddItem(ctx context.Context, sku, price string) (domain.Cart, error) {
	if sku == "" || price == "" {
		return domain.Cart{}, domain.ErrMissingVariantSelection
	}

	cart, err := s.Get(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.Find(sku); i >= 0 {
		cart.Lines[i].Quantity++
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{SKU: sku, Price: price, Quantity: 1})
	}

	blob, err := json.Marshal(cart.Lines)
	if err != nil {
		return domain.Cart{}, domain.Internal(err, "cart.add", "failed to serialize cart")
	}

	if err := s.store.Save(ctx, blob); err != nil {
		return domain.Cart{}, domain.Internal(err, "cart.add", "failed to persist cart")
	}

	return cart, nil
}

// Get loads the cart from the store. A missing blob and a blob that fails to
// parse both yield an empty cart; corruption is recovered, not reported.
func (s *cartService) Get(ctx context.Context) (domain.Cart, error) {
	blob, err := s.store.Load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart blob: %w", err)
	}
	if len(blob) == 0 {
		return domain.Cart{}, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(blob, &lines); err != nil {
		return domain.Cart{}, nil
	}

	return domain.Cart{Lines: lines}, nil
}

// Summary returns the cart with item count and subtotal. Lines whose stored
// price no longer parses as a decimal still count toward the item count but
// contribute nothing to the subtotal.
func (s *cartService) Summary(ctx context.Context) (domain.CartSummary, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return domain.CartSummary{}, err
	}

	subtotal := domain.Money{Amount: decimal.Zero, Currency: domain.DefaultCurrency}
	itemCount := 0

	for _, line := range cart.Lines {
		itemCount += line.Quantity

		price, err := domain.ParseMoney(line.Price, "")
		if err != nil {
			continue
		}
		if subtotal, err = subtotal.Add(price.Mul(line.Quantity)); err != nil {
			return domain.CartSummary{}, err
		}
	}

	return domain.CartSummary{
		Cart:      cart,
		ItemCount: itemCount,
		Subtotal:  subtotal,
	}, nil
}
