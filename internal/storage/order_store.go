package storage

import (
	"context"
	"fmt"
	"time"
)

// OrderStore holds the order collection file. Orders are created and have
// their status updated; they are never deleted.
type OrderStore struct {
	col     *Collection[Order]
	timeNow func() time.Time
}

func NewOrderStore(path string) *OrderStore {
	return &OrderStore{
		col:     NewCollection[Order](path),
		timeNow: func() time.Time { return time.Now().UTC() },
	}
}

func (s *OrderStore) ListOrders(_ context.Context) ([]Order, error) {
	orders, err := s.col.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (s *OrderStore) GetOrder(_ context.Context, id int) (*Order, error) {
	orders, err := s.col.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	for _, o := range orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// PlaceOrder validates the input, assigns the next free id and the creation
// time, and forces the status to pending no matter what the caller sent.
func (s *OrderStore) PlaceOrder(_ context.Context, input OrderCreate) (int, error) {
	if err := checkValid(input); err != nil {
		return 0, err
	}

	var newID int
	err := s.col.Update(func(orders []Order) ([]Order, error) {
		newID = NextID(orders)
		order := Order{
			OrderCreate: input,
			ID:          newID,
			Status:      StatusPending,
			CreatedAt:   s.timeNow(),
		}
		return append(orders, order), nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}
	return newID, nil
}

// UpdateOrderStatus sets the status of the matching order. There is no
// transition graph; completed and rejected are not terminal.
func (s *OrderStore) UpdateOrderStatus(_ context.Context, id int, status OrderStatus) error {
	switch status {
	case StatusPending, StatusAccepted, StatusCompleted, StatusRejected:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	err := s.col.Update(func(orders []Order) ([]Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				return orders, nil
			}
		}
		return nil, ErrOrderNotFound
	})
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
