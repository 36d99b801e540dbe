package web

import (
	"net/http"
	"strings"

	"stockbooks/internal/core"
)

// listResponse is the envelope every collection endpoint returns. The data
// field is always present, never null, so clients can range over it directly.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Data: items}
}

// writeServiceError maps service-layer errors onto HTTP statuses. Anything
// wrapping a "not found" message becomes 404, everything else is 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if strings.Contains(err.Error(), "not found") {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.ListSales(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, newListResponse(sales))
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var input core.Sale
	if !decodeJSON(w, r, &input) {
		return
	}
	sale, err := h.svc.CreateSale(r.Context(), input)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSONStatus(w, http.StatusCreated, sale)
}

func (h *Handler) updateSale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input core.Sale
	if !decodeJSON(w, r, &input) {
		return
	}
	sale, err := h.svc.UpdateSale(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, sale)
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSale(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Inventory movements ───────────────────────────────────────────────────────

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	movements, err := h.svc.ListInventory(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, newListResponse(movements))
}

func (h *Handler) createMovement(w http.ResponseWriter, r *http.Request) {
	var input core.InventoryMovement
	if !decodeJSON(w, r, &input) {
		return
	}
	movement, err := h.svc.CreateMovement(r.Context(), input)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSONStatus(w, http.StatusCreated, movement)
}

func (h *Handler) updateMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input core.InventoryMovement
	if !decodeJSON(w, r, &input) {
		return
	}
	movement, err := h.svc.UpdateMovement(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, movement)
}

func (h *Handler) deleteMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteMovement(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Customers ─────────────────────────────────────────────────────────────────

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, newListResponse(customers))
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input core.Customer
	if !decodeJSON(w, r, &input) {
		return
	}
	customer, err := h.svc.CreateCustomer(r.Context(), input)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSONStatus(w, http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input core.Customer
	if !decodeJSON(w, r, &input) {
		return
	}
	customer, err := h.svc.UpdateCustomer(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, newListResponse(suppliers))
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var input core.Supplier
	if !decodeJSON(w, r, &input) {
		return
	}
	supplier, err := h.svc.CreateSupplier(r.Context(), input)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSONStatus(w, http.StatusCreated, supplier)
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input core.Supplier
	if !decodeJSON(w, r, &input) {
		return
	}
	supplier, err := h.svc.UpdateSupplier(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, supplier)
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSupplier(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
