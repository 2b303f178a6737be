package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dejobratic/ledger/internal/ledger/domain"
	"github.com/dejobratic/ledger/internal/ledger/ports"
)

type UpdateOrderStatusCommand struct {
	AdminKey  string
	OrderID   int
	NewStatus string
}

func (c UpdateOrderStatusCommand) Validate() error {
	if c.OrderID <= 0 {
		return errors.New("order_id is required")
	}
	if strings.TrimSpace(c.NewStatus) == "" {
		return errors.New("status is required")
	}
	return nil
}

type UpdateOrderStatusResult struct {
	OrderID        int    `json:"order_id"`
	DeliveryStatus string `json:"delivery_status"`
	Message        string `json:"message"`
}

type UpdateOrderStatusHandler interface {
	Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*UpdateOrderStatusResult, error)
}

type UpdateOrderStatusCommandHandler struct {
	store    ports.Store
	adminKey string
	now      func() time.Time
}

// NewUpdateOrderStatusCommandHandler builds the handler around the configured
// admin credential. An empty credential disables updates entirely rather than
// matching an empty submission.
func NewUpdateOrderStatusCommandHandler(store ports.Store, adminKey string) *UpdateOrderStatusCommandHandler {
	return &UpdateOrderStatusCommandHandler{
		store:    store,
		adminKey: adminKey,
		now:      time.Now,
	}
}

// WithClock overrides the time source used for status stamps.
func (h *UpdateOrderStatusCommandHandler) WithClock(now func() time.Time) *UpdateOrderStatusCommandHandler {
	h.now = now
	return h
}

// Handle authorizes the caller before touching storage, then overwrites the
// order's delivery status with a date-stamped value.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*UpdateOrderStatusResult, error) {
	if err := h.authorize(cmd.AdminKey); err != nil {
		return nil, err
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	col, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	ci, oi := col.FindOrder(cmd.OrderID)
	if ci < 0 {
		return nil, ports.ErrOrderNotFound
	}

	stamped := domain.StampStatus(h.now(), cmd.NewStatus)
	col[ci].Orders[oi].DeliveryStatus = stamped

	if err := h.store.Save(ctx, col); err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}

	return &UpdateOrderStatusResult{
		OrderID:        cmd.OrderID,
		DeliveryStatus: stamped,
		Message:        fmt.Sprintf("Order ID %d updated to %q.", cmd.OrderID, stamped),
	}, nil
}

func (h *UpdateOrderStatusCommandHandler) authorize(key string) error {
	if h.adminKey == "" {
		return ports.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
		return ports.ErrUnauthorized
	}
	return nil
}
