package memory

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
)

type billRepository struct {
	st *state
	mu rwLocker
}

func (r *billRepository) NextID(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.billSeq++
	return sequenceID("B", r.st.billSeq)
}

func (r *billRepository) Create(ctx context.Context, b *domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.bills[b.ID]; ok {
		return fmt.Errorf("bill %s: %w", b.ID, domain.ErrDuplicateKey)
	}
	clone := *b
	r.st.bills[b.ID] = &clone
	r.st.billOrder = append(r.st.billOrder, b.ID)
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.st.bills[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, domain.ErrNotFound)
	}
	clone := *b
	return &clone, nil
}

func (r *billRepository) Update(ctx context.Context, b *domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.bills[b.ID]; !ok {
		return fmt.Errorf("bill %s: %w", b.ID, domain.ErrNotFound)
	}
	clone := *b
	r.st.bills[b.ID] = &clone
	return nil
}

func (r *billRepository) List(ctx context.Context) ([]domain.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Bill, 0, len(r.st.billOrder))
	for _, id := range r.st.billOrder {
		out = append(out, *r.st.bills[id])
	}
	return out, nil
}
