package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/ports"
)

const defaultCartTTL = 7 * 24 * time.Hour

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	Carts    ports.CartStore  // Required
	Products ports.ProductAPI // Required: price and name snapshots
	TTL      time.Duration
}

// CartService manages anonymous carts. Every write slides the cart's expiry.
type CartService struct {
	carts    ports.CartStore
	products ports.ProductAPI
	ttl      time.Duration
	logger   *slog.Logger
}

// NewCartService constructs a new CartService.
func NewCartService(opts CartServiceOptions) *CartService {
	if opts.Carts == nil {
		panic("CartStore is required")
	}
	if opts.Products == nil {
		panic("ProductAPI is required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &CartService{
		carts:    opts.Carts,
		products: opts.Products,
		ttl:      ttl,
		logger:   slog.Default().With("component", "cart"),
	}
}

// NewCartID returns a fresh random cart identifier.
func NewCartID() string {
	return uuid.NewString()
}

// ValidCartID reports whether id looks like an identifier issued by NewCartID.
func ValidCartID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// Get returns cart id, or an empty cart when it does not exist.
func (s *CartService) Get(ctx context.Context, id string) (*model.Cart, error) {
	if !ValidCartID(id) {
		return &model.Cart{}, nil
	}
	c, err := s.carts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if c == nil {
		return &model.Cart{ID: id}, nil
	}
	return c, nil
}

// Add puts qty of productID into cart id, creating the cart when id is empty
// or unknown. The returned cart carries the ID to remember.
func (s *CartService) Add(ctx context.Context, id, productID string, qty int) (*model.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, apperrors.ValidationField("productId", "Product is required")
	}
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsPublished {
		return nil, apperrors.NotFound("Product not found")
	}
	if p.StockStatus() == model.OutOfStock {
		return nil, apperrors.Validation("This product is out of stock")
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = NewCartID()
	}
	if err := c.Add(model.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		ImageURL:  p.ImageURL,
		UnitPrice: p.Price,
		Quantity:  qty,
	}); err != nil {
		return nil, apperrors.Validation(capitalize(err.Error()))
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity changes a line's quantity; below one removes the line.
func (s *CartService) SetQuantity(ctx context.Context, id, productID string, qty int) (*model.Cart, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.SetQuantity(productID, qty); err != nil {
		if errors.Is(err, model.ErrCartLineNotFound) {
			return nil, apperrors.NotFound("Product is not in the cart")
		}
		return nil, err
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove drops productID from cart id.
func (s *CartService) Remove(ctx context.Context, id, productID string) (*model.Cart, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Remove(productID)
	if c.ID == "" {
		return c, nil
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear deletes cart id.
func (s *CartService) Clear(ctx context.Context, id string) error {
	if !ValidCartID(id) {
		return nil
	}
	if err := s.carts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func (s *CartService) save(ctx context.Context, c *model.Cart) error {
	if err := s.carts.Save(ctx, c, s.ttl); err != nil {
		s.logger.ErrorContext(ctx, "save cart failed", "cart_id", c.ID, "error", err)
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "Your cart could not be saved. Please try again.")
	}
	return nil
}
