package domain

import "strings"

// StatusPending is the delivery status assigned to every newly booked order.
// It stays in place until an admin overwrites it with a stamped status.
const StatusPending = "Pending"

// Order is a single booked item. IDs are integers assigned sequentially
// across the whole ledger, not per customer.
type Order struct {
	ID             int    `json:"id"`
	Product        string `json:"product"`
	DeliveryStatus string `json:"delivery_status"`
}

// Customer groups the orders booked under one name. Name is the identity:
// lookups compare it case-insensitively, and the contact and address recorded
// on the first booking are kept even if later bookings supply different ones.
type Customer struct {
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Address string  `json:"address"`
	Orders  []Order `json:"orders"`
}

// LastOrder returns the most recently booked order for the customer.
func (c Customer) LastOrder() (Order, bool) {
	if len(c.Orders) == 0 {
		return Order{}, false
	}
	return c.Orders[len(c.Orders)-1], true
}

// Collection is the full ledger as persisted: every customer with their
// orders, in insertion order. All scans iterate in that order, so "first
// match wins" is a documented tie-break rule rather than an accident.
type Collection []Customer

// NextOrderID returns the id for the next booking: one past the highest id
// found anywhere in the collection, or 1 when no orders exist.
func (col Collection) NextOrderID() int {
	maxID := 0
	for _, c := range col {
		for _, o := range c.Orders {
			if o.ID > maxID {
				maxID = o.ID
			}
		}
	}
	return maxID + 1
}

// FindByName returns the index of the first customer whose name matches
// case-insensitively, or -1 when absent.
func (col Collection) FindByName(name string) int {
	for i, c := range col {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

// FindByContact returns the index of the first customer with an exactly
// matching contact string, or -1 when absent.
func (col Collection) FindByContact(contact string) int {
	for i, c := range col {
		if c.Contact == contact {
			return i
		}
	}
	return -1
}

// FindOrder locates an order by id and returns the customer index and the
// order index within that customer, or (-1, -1) when absent. Order ids are
// unique across the collection, so at most one match exists.
func (col Collection) FindOrder(id int) (int, int) {
	for i, c := range col {
		for j, o := range c.Orders {
			if o.ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}

// Clone returns a deep copy, so callers can mutate the result without
// aliasing the original's order slices.
func (col Collection) Clone() Collection {
	if col == nil {
		return nil
	}
	out := make(Collection, len(col))
	for i, c := range col {
		out[i] = c
		out[i].Orders = make([]Order, len(c.Orders))
		copy(out[i].Orders, c.Orders)
	}
	return out
}
