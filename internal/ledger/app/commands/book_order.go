package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dejobratic/ledger/internal/ledger/domain"
	"github.com/dejobratic/ledger/internal/ledger/ports"
)

type BookOrderCommand struct {
	Name    string
	Contact string
	Address string
	Product string
}

func (c BookOrderCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(c.Contact) == "" {
		return errors.New("contact is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		return errors.New("address is required")
	}
	if strings.TrimSpace(c.Product) == "" {
		return errors.New("product is required")
	}
	return nil
}

// BookOrderResult reports the booked order together with the name the
// booking was filed under (the stored spelling, not the submitted one).
type BookOrderResult struct {
	Order        domain.Order `json:"order"`
	CustomerName string       `json:"customer_name"`
	Message      string       `json:"message"`
}

type BookOrderHandler interface {
	Handle(ctx context.Context, cmd BookOrderCommand) (*BookOrderResult, error)
}

type BookOrderCommandHandler struct {
	store         ports.Store
	notifier      ports.Notifier
	logger        *slog.Logger
	notifyTimeout time.Duration
}

func NewBookOrderCommandHandler(
	store ports.Store,
	notifier ports.Notifier,
	logger *slog.Logger,
) *BookOrderCommandHandler {
	return &BookOrderCommandHandler{
		store:         store,
		notifier:      notifier,
		logger:        logger,
		notifyTimeout: 5 * time.Second,
	}
}

// Handle books an order: it assigns the next sequential id across the whole
// collection, files the order under the existing customer when the name
// matches case-insensitively (keeping the first-seen contact and address),
// and persists before notifying. Notification failures are logged, never
// returned; the order is already durable by then.
func (h *BookOrderCommandHandler) Handle(ctx context.Context, cmd BookOrderCommand) (*BookOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	col, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	order := domain.Order{
		ID:             col.NextOrderID(),
		Product:        cmd.Product,
		DeliveryStatus: domain.StatusPending,
	}

	customerName := cmd.Name
	if i := col.FindByName(cmd.Name); i >= 0 {
		col[i].Orders = append(col[i].Orders, order)
		customerName = col[i].Name
	} else {
		col = append(col, domain.Customer{
			Name:    cmd.Name,
			Contact: cmd.Contact,
			Address: cmd.Address,
			Orders:  []domain.Order{order},
		})
	}

	if err := h.store.Save(ctx, col); err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}

	h.dispatchNotification(ports.BookingNotification{
		OrderID: order.ID,
		Name:    customerName,
		Contact: cmd.Contact,
		Address: cmd.Address,
		Product: cmd.Product,
	})

	return &BookOrderResult{
		Order:        order,
		CustomerName: customerName,
		Message: fmt.Sprintf(
			"Order #%d for %s booked successfully for %s. Delivery status: %s",
			order.ID, order.Product, customerName, order.DeliveryStatus,
		),
	}, nil
}

// dispatchNotification sends the booking notification off the caller's
// critical path. The attempt is bounded by notifyTimeout and detached from
// the request context, so a canceled request cannot abort it.
func (h *BookOrderCommandHandler) dispatchNotification(n ports.BookingNotification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.notifyTimeout)
		defer cancel()

		if err := h.notifier.OrderBooked(ctx, n); err != nil {
			h.logger.Warn("order booked notification failed",
				"order_id", n.OrderID,
				"error", err,
			)
		}
	}()
}
