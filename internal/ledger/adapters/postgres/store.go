// Package postgres implements the ledger store against keyed tables. It
// honors the same wholesale Load/Save contract as the file backend: Save
// replaces the full collection inside one transaction.
package postgres

import (
	"context"
	"fmt"

	"github.com/dejobratic/ledger/internal/ledger/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Load assembles the collection from the customers and orders tables.
// Customers come back in insertion order; orders within a customer are
// ordered by id, which matches booking order since ids are monotonic.
func (s *Store) Load(ctx context.Context) (domain.Collection, error) {
	customerQuery := `
		SELECT id, name, contact, address
		FROM customers
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, customerQuery)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	col := domain.Collection{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id       int64
			customer domain.Customer
		)
		if err := rows.Scan(&id, &customer.Name, &customer.Contact, &customer.Address); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customer.Orders = []domain.Order{}
		index[id] = len(col)
		col = append(col, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	rows.Close()

	orderQuery := `
		SELECT customer_id, id, product, delivery_status
		FROM orders
		ORDER BY id
	`

	orderRows, err := s.pool.Query(ctx, orderQuery)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer orderRows.Close()

	for orderRows.Next() {
		var (
			customerID int64
			order      domain.Order
		)
		if err := orderRows.Scan(&customerID, &order.ID, &order.Product, &order.DeliveryStatus); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		i, ok := index[customerID]
		if !ok {
			continue
		}
		col[i].Orders = append(col[i].Orders, order)
	}
	if err := orderRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return col, nil
}

// Save replaces the stored collection with the given one in a single
// transaction, so readers never observe a half-written ledger.
func (s *Store) Save(ctx context.Context, col domain.Collection) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin ledger save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM customers`); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}

	insertCustomer := `
		INSERT INTO customers (name, contact, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	insertOrder := `
		INSERT INTO orders (id, customer_id, product, delivery_status)
		VALUES ($1, $2, $3, $4)
	`

	for _, customer := range col {
		var customerID int64
		err := tx.QueryRow(ctx, insertCustomer, customer.Name, customer.Contact, customer.Address).Scan(&customerID)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}

		for _, order := range customer.Orders {
			if _, err := tx.Exec(ctx, insertOrder, order.ID, customerID, order.Product, order.DeliveryStatus); err != nil {
				return fmt.Errorf("insert order: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ledger save: %w", err)
	}

	return nil
}
