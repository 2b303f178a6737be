package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dejobratic/ledger/internal/ledger/domain"
	"github.com/dejobratic/ledger/internal/ledger/ports"
)

// OrderStatusQuery looks up an order by any one of three keys. A zero
// OrderID and empty strings mean "not provided".
type OrderStatusQuery struct {
	Name    string
	Contact string
	OrderID int
}

// Validate ensures at least one lookup key was supplied.
func (q OrderStatusQuery) Validate() error {
	if q.OrderID == 0 && strings.TrimSpace(q.Name) == "" && strings.TrimSpace(q.Contact) == "" {
		return errors.New("one of order_id, name or contact is required")
	}
	return nil
}

// OrderStatusResult carries the matched order with its owning customer, or
// Found=false with a not-found message. Lookups never mutate the ledger.
type OrderStatusResult struct {
	Found           bool         `json:"found"`
	Order           domain.Order `json:"order,omitempty"`
	CustomerName    string       `json:"customer_name,omitempty"`
	CustomerContact string       `json:"customer_contact,omitempty"`
	Message         string       `json:"message"`
}

type OrderStatusQueryHandler struct {
	store ports.Store
}

func NewOrderStatusQueryHandler(store ports.Store) *OrderStatusQueryHandler {
	return &OrderStatusQueryHandler{store: store}
}

// Handle evaluates the three lookup keys in fixed precedence: order id first,
// then customer name (case-insensitive, most recent order), then contact
// (exact, most recent order). The first key that produces a match wins; a
// name match without orders falls through to the contact lookup.
func (h *OrderStatusQueryHandler) Handle(ctx context.Context, query OrderStatusQuery) (*OrderStatusResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	col, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	if query.OrderID != 0 {
		if ci, oi := col.FindOrder(query.OrderID); ci >= 0 {
			return found(col[ci], col[ci].Orders[oi]), nil
		}
	}

	if query.Name != "" {
		if i := col.FindByName(query.Name); i >= 0 {
			if last, ok := col[i].LastOrder(); ok {
				return found(col[i], last), nil
			}
		}
	}

	if query.Contact != "" {
		if i := col.FindByContact(query.Contact); i >= 0 {
			if last, ok := col[i].LastOrder(); ok {
				return found(col[i], last), nil
			}
		}
	}

	return &OrderStatusResult{
		Found:   false,
		Message: "Sorry, no matching order found.",
	}, nil
}

func found(c domain.Customer, o domain.Order) *OrderStatusResult {
	return &OrderStatusResult{
		Found:           true,
		Order:           o,
		CustomerName:    c.Name,
		CustomerContact: c.Contact,
		Message: fmt.Sprintf(
			"Order Status:\nOrder ID: %d\nCustomer: %s (%s)\nProduct: %s\nDelivery Status: %s",
			o.ID, c.Name, c.Contact, o.Product, o.DeliveryStatus,
		),
	}
}
