package memory

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
)

type customerRepository struct {
	st *state
	mu rwLocker
}

func (r *customerRepository) NextID(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.customerSeq++
	return sequenceID("CUST", r.st.customerSeq)
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.customers[c.ID]; ok {
		return fmt.Errorf("customer %s: %w", c.ID, domain.ErrDuplicateKey)
	}
	r.st.customers[c.ID] = cloneCustomer(c)
	r.st.customerOrder = append(r.st.customerOrder, c.ID)
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.st.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return cloneCustomer(c), nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.customers[c.ID]; !ok {
		return fmt.Errorf("customer %s: %w", c.ID, domain.ErrNotFound)
	}
	r.st.customers[c.ID] = cloneCustomer(c)
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Customer, 0, len(r.st.customerOrder))
	for _, id := range r.st.customerOrder {
		out = append(out, *cloneCustomer(r.st.customers[id]))
	}
	return out, nil
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	out := *c
	out.RentedVehicleIDs = append([]string(nil), c.RentedVehicleIDs...)
	out.RentalHistory = append([]string(nil), c.RentalHistory...)
	return &out
}
