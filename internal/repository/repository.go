package repository

import (
	"context"

	"car-rental-backend/internal/domain"
)

// Store bundles the per-entity repositories over one backing state.
type Store interface {
	Vehicles() VehicleRepository
	Customers() CustomerRepository
	Rentals() RentalRepository
	Bills() BillRepository

	// Mutate runs fn with exclusive access to the backing state: every
	// read and write fn performs through the supplied Store applies as
	// one unit, with no other repository call interleaving. Service
	// operations that touch several records run inside it so a
	// concurrent reader never observes a half-applied state.
	Mutate(ctx context.Context, fn func(Store) error) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	// FindAvailable returns the first count available vehicles in fleet
	// order, or domain.ErrInsufficientInventory without a partial result.
	FindAvailable(ctx context.Context, count int) ([]domain.Vehicle, error)
}

type CustomerRepository interface {
	NextID(ctx context.Context) string
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type RentalRepository interface {
	NextID(ctx context.Context) string
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListOpen(ctx context.Context) ([]domain.Rental, error)
}

type BillRepository interface {
	NextID(ctx context.Context) string
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	Update(ctx context.Context, bill *domain.Bill) error
	List(ctx context.Context) ([]domain.Bill, error)
}
