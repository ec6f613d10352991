package memory

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
)

type vehicleRepository struct {
	st *state
	mu rwLocker
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.vehicles[v.ID]; ok {
		return fmt.Errorf("vehicle %s: %w", v.ID, domain.ErrDuplicateKey)
	}
	r.st.vehicles[v.ID] = cloneVehicle(v)
	r.st.vehicleOrder = append(r.st.vehicleOrder, v.ID)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.st.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %s: %w", id, domain.ErrNotFound)
	}
	return cloneVehicle(v), nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.vehicles[v.ID]; !ok {
		return fmt.Errorf("vehicle %s: %w", v.ID, domain.ErrNotFound)
	}
	r.st.vehicles[v.ID] = cloneVehicle(v)
	return nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Vehicle, 0, len(r.st.vehicleOrder))
	for _, id := range r.st.vehicleOrder {
		out = append(out, *cloneVehicle(r.st.vehicles[id]))
	}
	return out, nil
}

func (r *vehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Vehicle
	for _, id := range r.st.vehicleOrder {
		if v := r.st.vehicles[id]; v.Available {
			out = append(out, *cloneVehicle(v))
		}
	}
	return out, nil
}

// FindAvailable selects the first count available vehicles in fleet order.
// It never returns a partial allocation.
func (r *vehicleRepository) FindAvailable(ctx context.Context, count int) ([]domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Vehicle, 0, count)
	for _, id := range r.st.vehicleOrder {
		if len(out) == count {
			break
		}
		if v := r.st.vehicles[id]; v.Available {
			out = append(out, *cloneVehicle(v))
		}
	}
	if len(out) < count {
		return nil, fmt.Errorf("%d vehicle(s) requested, %d available: %w",
			count, len(out), domain.ErrInsufficientInventory)
	}
	return out, nil
}

// cloneVehicle copies a record on the way in and out of the store so callers
// never hold a pointer into guarded state.
func cloneVehicle(v *domain.Vehicle) *domain.Vehicle {
	c := *v
	if v.RentalStartTime != nil {
		t := *v.RentalStartTime
		c.RentalStartTime = &t
	}
	return &c
}
