package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dejobratic/ledger/internal/ledger/app/commands"
	"github.com/dejobratic/ledger/internal/ledger/app/queries"
	"github.com/dejobratic/ledger/internal/ledger/metrics"
	"github.com/dejobratic/ledger/internal/ledger/ports"
)

// Service bundles the ledger use cases behind a single mutex. Every
// operation is a full load-mutate-save cycle against the store, so the mutex
// is what keeps concurrent callers from reading the same max order id and
// minting duplicates, or from losing each other's writes. Lookups take the
// same lock so they always see a fully written collection.
type Service struct {
	mu            sync.Mutex
	bookHandler   commands.BookOrderHandler
	updateHandler commands.UpdateOrderStatusHandler
	statusHandler *queries.OrderStatusQueryHandler
	idemStore     ports.IdempotencyStore
}

// NewService wires required dependencies.
func NewService(
	store ports.Store,
	notifier ports.Notifier,
	idem ports.IdempotencyStore,
	adminKey string,
	logger *slog.Logger,
	metrics *metrics.Metrics,
) *Service {
	bookHandler := commands.NewBookOrderCommandHandler(store, notifier, logger)
	observableBook := commands.NewObservableBookOrderHandler(bookHandler, logger, metrics)

	return &Service{
		bookHandler:   observableBook,
		updateHandler: commands.NewUpdateOrderStatusCommandHandler(store, adminKey),
		statusHandler: queries.NewOrderStatusQueryHandler(store),
		idemStore:     idem,
	}
}

// BookOrderInput captures the payload for booking an order.
type BookOrderInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Product string `json:"product"`
}

// BookOrder books a new order and returns it with a confirmation message.
func (s *Service) BookOrder(ctx context.Context, input BookOrderInput) (*commands.BookOrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookHandler.Handle(ctx, commands.BookOrderCommand{
		Name:    input.Name,
		Contact: input.Contact,
		Address: input.Address,
		Product: input.Product,
	})
}

// OrderStatusInput captures the lookup keys for a status check. Zero values
// mean the key was not provided.
type OrderStatusInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	OrderID int    `json:"order_id"`
}

// CheckOrderStatus resolves an order by id, name or contact without mutating
// anything.
func (s *Service) CheckOrderStatus(ctx context.Context, input OrderStatusInput) (*queries.OrderStatusResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statusHandler.Handle(ctx, queries.OrderStatusQuery{
		Name:    input.Name,
		Contact: input.Contact,
		OrderID: input.OrderID,
	})
}

// UpdateOrderStatusInput captures an admin status update.
type UpdateOrderStatusInput struct {
	AdminKey  string
	OrderID   int
	NewStatus string
}

// UpdateOrderStatus overwrites an order's delivery status after verifying the
// admin credential.
func (s *Service) UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) (*commands.UpdateOrderStatusResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateHandler.Handle(ctx, commands.UpdateOrderStatusCommand{
		AdminKey:  input.AdminKey,
		OrderID:   input.OrderID,
		NewStatus: input.NewStatus,
	})
}

// SaveIdempotentResponse writes response details for a key.
func (s *Service) SaveIdempotentResponse(ctx context.Context, key string, response ports.StoredResponse) error {
	return s.idemStore.Save(ctx, key, response)
}

// GetIdempotentResponse retrieves previously stored response data.
func (s *Service) GetIdempotentResponse(ctx context.Context, key string) (*ports.StoredResponse, error) {
	return s.idemStore.Get(ctx, key)
}
