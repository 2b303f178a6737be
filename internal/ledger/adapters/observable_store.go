package adapters

import (
	"context"
	"time"

	"github.com/dejobratic/ledger/internal/database"
	"github.com/dejobratic/ledger/internal/ledger/domain"
	"github.com/dejobratic/ledger/internal/ledger/ports"
	"github.com/dejobratic/ledger/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ObservableStore wraps any ledger store with spans and operation timing.
type ObservableStore struct {
	store   ports.Store
	metrics *database.Metrics
}

func NewObservableStore(store ports.Store, metrics *database.Metrics) *ObservableStore {
	return &ObservableStore{
		store:   store,
		metrics: metrics,
	}
}

func (s *ObservableStore) Load(ctx context.Context) (domain.Collection, error) {
	ctx, span := telemetry.StartSpan(ctx, "LedgerStore.Load")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "load"),
	)

	start := time.Now()
	col, err := s.store.Load(ctx)
	duration := time.Since(start).Seconds()

	s.metrics.RecordOperation(ctx, "load_ledger", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("result.customers", len(col)))
	telemetry.SetSpanSuccess(span)
	return col, nil
}

func (s *ObservableStore) Save(ctx context.Context, col domain.Collection) error {
	ctx, span := telemetry.StartSpan(ctx, "LedgerStore.Save")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "save"),
		attribute.Int("collection.customers", len(col)),
	)

	start := time.Now()
	err := s.store.Save(ctx, col)
	duration := time.Since(start).Seconds()

	s.metrics.RecordOperation(ctx, "save_ledger", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}
