package memory

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
)

type rentalRepository struct {
	st *state
	mu rwLocker
}

func (r *rentalRepository) NextID(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.rentalSeq++
	return sequenceID("R", r.st.rentalSeq)
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.rentals[rental.ID]; ok {
		return fmt.Errorf("rental %s: %w", rental.ID, domain.ErrDuplicateKey)
	}
	r.st.rentals[rental.ID] = cloneRental(rental)
	r.st.rentalOrder = append(r.st.rentalOrder, rental.ID)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rental, ok := r.st.rentals[id]
	if !ok {
		return nil, fmt.Errorf("rental %s: %w", id, domain.ErrNotFound)
	}
	return cloneRental(rental), nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.rentals[rental.ID]; !ok {
		return fmt.Errorf("rental %s: %w", rental.ID, domain.ErrNotFound)
	}
	r.st.rentals[rental.ID] = cloneRental(rental)
	return nil
}

func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Rental
	for _, id := range r.st.rentalOrder {
		if rental := r.st.rentals[id]; rental.Status == domain.RentalStatusOpen {
			out = append(out, *cloneRental(rental))
		}
	}
	return out, nil
}

func cloneRental(rental *domain.Rental) *domain.Rental {
	out := *rental
	out.VehicleIDs = append([]string(nil), rental.VehicleIDs...)
	if rental.EndTime != nil {
		t := *rental.EndTime
		out.EndTime = &t
	}
	return &out
}
