package httpx

import (
	"net/http"
	"strconv"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/http/validation"
)

const (
	cartPath         = "/cart"
	cartEmptyMessage = "Your cart is empty"
)

func cartMeta() PageMeta {
	return PageMeta{Title: "Shopping cart" + storeTitleSuffix, PageTitle: "Shopping cart", CurrentPage: PageCart}
}

// CartPage lists the cart lines.
// GET /cart.
func (h *UIHandlers) CartPage(w http.ResponseWriter, r *http.Request) {
	c, err := h.Cart.Get(r.Context(), readCookie(r, CartCookieName))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.renderCart(w, r, c)
}

func (h *UIHandlers) renderCart(w http.ResponseWriter, r *http.Request, c *model.Cart) {
	data := h.storeData(r, cartMeta()).
		With("Cart", c).
		With("CartCount", c.ItemCount()).
		With("EmptyMessage", cartEmptyMessage).
		With("MaxQuantity", model.MaxCartQuantity).
		Build()
	h.renderPage(w, r, data)
}

// parseQuantity reads the quantity field, defaulting to def when blank.
func parseQuantity(r *http.Request, def int) (int, map[string]string) {
	raw := formString(r, "quantity")
	if raw == "" {
		return def, nil
	}
	fv := validation.New().Validate("quantity", raw,
		validation.IntRange("Quantity", 0, model.MaxCartQuantity))
	if len(fv.Errors()) > 0 {
		return 0, fv.Errors()
	}
	n, _ := strconv.Atoi(raw)
	return n, nil
}

// AddToCart puts a product into the cart, issuing a cart cookie on first use.
// POST /cart/items (productId, quantity).
func (h *UIHandlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	qty, errs := parseQuantity(r, model.MinCartQuantity)
	if len(errs) > 0 {
		h.cartValidationFailed(w, r, errs)
		return
	}
	if qty < model.MinCartQuantity {
		qty = model.MinCartQuantity
	}

	current := readCookie(r, CartCookieName)
	c, err := h.Cart.Add(r.Context(), current, formString(r, "productId"), qty)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if c.ID != current {
		setCartCookie(w, r, h.Cookies, c.ID)
	}
	h.cartChanged(w, r, c, "Added to cart")
}

// UpdateCartItem changes a line quantity; zero removes the line.
// POST /cart/items/{productId}.
func (h *UIHandlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	qty, errs := parseQuantity(r, model.MinCartQuantity)
	if len(errs) > 0 {
		h.cartValidationFailed(w, r, errs)
		return
	}
	c, err := h.Cart.SetQuantity(r.Context(), readCookie(r, CartCookieName), r.PathValue("productId"), qty)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.cartChanged(w, r, c, "")
}

// RemoveCartItem drops a line.
// DELETE /cart/items/{productId} and POST /cart/items/{productId}/remove.
func (h *UIHandlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.Cart.Remove(r.Context(), readCookie(r, CartCookieName), r.PathValue("productId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.cartChanged(w, r, c, "Item removed")
}

// ClearCart empties the cart.
// POST /cart/clear.
func (h *UIHandlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context(), readCookie(r, CartCookieName)); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.cartChanged(w, r, &model.Cart{}, "Cart cleared")
}

// cartChanged answers a cart write: JSON summary, refreshed cart fragment for
// htmx, or a redirect back to the cart page.
func (h *UIHandlers) cartChanged(w http.ResponseWriter, r *http.Request, c *model.Cart, toast string) {
	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"cartId":    c.ID,
			"itemCount": c.ItemCount(),
			"subtotal":  c.Subtotal(),
		})
		return
	}
	if IsHTMX(r) {
		triggerToast(w, toast, "success")
		SetHXTrigger(w, "cart:updated", map[string]int{"count": c.ItemCount()})
		if HXTarget(r) == "cart-badge" {
			h.renderFragment(w, r, "cart-badge", map[string]any{"CartCount": c.ItemCount()})
			return
		}
		h.renderCart(w, r, c)
		return
	}
	Redirect(w, r, cartPath)
}

func (h *UIHandlers) cartValidationFailed(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	msg := errs["quantity"]
	if wantsJSON(r) {
		WriteJSON(w, http.StatusBadRequest, errorBody{Error: "validation", Message: msg, Field: "quantity"})
		return
	}
	if IsHTMX(r) {
		triggerToast(w, msg, "error")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	c, err := h.Cart.Get(r.Context(), readCookie(r, CartCookieName))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.storeData(r, cartMeta()).
		With("Cart", c).
		With("EmptyMessage", cartEmptyMessage).
		With("MaxQuantity", model.MaxCartQuantity).
		WithFieldErrors(errs).
		WithError(msg).
		Build()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderPage(w, r, data)
}
