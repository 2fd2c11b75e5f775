package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/niksmo/shopping-site/internal/core/port"
)

// GET v1/products (200 OK)
// PUT v1/filter/category JSON {"category" string} (200 OK, 400 Bad request)
// PUT v1/filter/price-range JSON {"price_range" string} (200 OK, 400 Bad request)
// DELETE v1/filter (200 OK)

type CatalogHandler struct {
	catalog port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogBrowser) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("PUT /v1/filter/category", h.PutCategory)
	mux.HandleFunc("PUT /v1/filter/price-range", h.PutPriceRange)
	mux.HandleFunc("DELETE /v1/filter", h.DeleteFilter)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	v, err := h.catalog.Catalog(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCatalogView(v))
}

func (h CatalogHandler) PutCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PutCategory"
	log := slog.With("op", op)

	var req CategoryRequest
	if !readJSON(w, r, log, &req) {
		return
	}

	v, err := h.catalog.SetCategory(r.Context(), sessionID(r), req.Category)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCatalogView(v))
}

func (h CatalogHandler) PutPriceRange(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PutPriceRange"
	log := slog.With("op", op)

	var req PriceRangeRequest
	if !readJSON(w, r, log, &req) {
		return
	}

	v, err := h.catalog.SetPriceRange(
		r.Context(), sessionID(r), req.PriceRange,
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCatalogView(v))
}

func (h CatalogHandler) DeleteFilter(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.DeleteFilter"
	log := slog.With("op", op)

	v, err := h.catalog.ClearFilters(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCatalogView(v))
}

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"product_id" int} (200 OK, 400 Bad request, 404 Not found)
// PATCH v1/cart/items/{id} JSON {"quantity" int} required, 0 removes (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id} (200 OK, 400 Bad request)

type CartHandler struct {
	cart port.CartEditor
}

func RegisterCart(mux *http.ServeMux, cart port.CartEditor) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	v, err := h.cart.Cart(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCartView(v))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if !readJSON(w, r, log, &req) {
		return
	}

	v, err := h.cart.AddToCart(r.Context(), sessionID(r), req.ProductID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCartView(v))
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	id, ok := productID(w, r, log)
	if !ok {
		return
	}

	var req QuantityRequest
	if !readJSON(w, r, log, &req) {
		return
	}
	if req.Quantity == nil {
		http.Error(w, "quantity required", http.StatusBadRequest)
		log.Warn("missing quantity", "productID", id)
		return
	}

	v, err := h.cart.UpdateQuantity(r.Context(), sessionID(r), id, *req.Quantity)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCartView(v))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	id, ok := productID(w, r, log)
	if !ok {
		return
	}

	v, err := h.cart.RemoveFromCart(r.Context(), sessionID(r), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, fromCartView(v))
}

// POST v1/checkout (201 Created, 204 No content on empty cart)
// GET v1/orders (200 OK)

type OrdersHandler struct {
	orders port.OrderPlacer
}

func RegisterOrders(mux *http.ServeMux, orders port.OrderPlacer) {
	h := OrdersHandler{orders}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
	mux.HandleFunc("GET /v1/orders", h.GetOrders)
}

func (h OrdersHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostCheckout"
	log := slog.With("op", op)

	o, ok, err := h.orders.Checkout(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, log, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, log, http.StatusCreated, fromOrder(o))
}

func (h OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrders"
	log := slog.With("op", op)

	orders, err := h.orders.Orders(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, log, err)
		return
	}

	res := make([]Order, len(orders))
	for i, o := range orders {
		res[i] = fromOrder(o)
	}
	writeJSON(w, log, http.StatusOK, res)
}

func productID(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		log.Warn("failed to parse product id", "err", err)
		return 0, false
	}
	return id, true
}

func readJSON(
	w http.ResponseWriter, r *http.Request, log *slog.Logger, v any,
) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("product not found", "err", err)
	case errors.Is(err, domain.ErrEmptySessionID):
		http.Error(w, "session id required", http.StatusBadRequest)
		log.Warn("missing session id", "err", err)
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		log.Warn("request aborted", "err", err)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("unexpected error", "err", err)
	}
}
