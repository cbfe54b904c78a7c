package storage

import (
	"context"
	"fmt"
	"time"
)

// ProductStore holds the product collection file.
type ProductStore struct {
	col     *Collection[Product]
	timeNow func() time.Time
}

func NewProductStore(path string) *ProductStore {
	return &ProductStore{
		col:     NewCollection[Product](path),
		timeNow: func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProductStore) ListProducts(_ context.Context) ([]Product, error) {
	products, err := s.col.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (s *ProductStore) GetProduct(_ context.Context, id int) (*Product, error) {
	products, err := s.col.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// AddProduct validates the input, assigns the next free id and the publish
// date, and appends the record. Returns the new id.
func (s *ProductStore) AddProduct(_ context.Context, input ProductCreate) (int, error) {
	if err := checkValid(input); err != nil {
		return 0, err
	}

	var newID int
	err := s.col.Update(func(products []Product) ([]Product, error) {
		newID = NextID(products)
		product := Product{
			ProductCreate: input,
			ID:            newID,
			PublishDate:   s.timeNow(),
		}
		return append(products, product), nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add product: %w", err)
	}
	return newID, nil
}

// ReplaceProduct overwrites the record matching id with the caller-supplied
// record verbatim, id and publish date included. The path id and the body id
// are deliberately not reconciled.
func (s *ProductStore) ReplaceProduct(_ context.Context, id int, product Product) error {
	if err := checkValid(product); err != nil {
		return err
	}

	err := s.col.Update(func(products []Product) ([]Product, error) {
		for i := range products {
			if products[i].ID == id {
				products[i] = product
				return products, nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (s *ProductStore) DeleteProduct(_ context.Context, id int) error {
	err := s.col.Update(func(products []Product) ([]Product, error) {
		for i := range products {
			if products[i].ID == id {
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
