package service

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
)

type FleetService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

type CustomerService interface {
	RegisterCustomer(ctx context.Context, name, email, phone string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type RentalService interface {
	// OpenRental rents the first vehicleCount available vehicles to the
	// customer under the given basis. startTime is caller-supplied, not wall
	// clock, so sessions can backdate or simulate.
	OpenRental(ctx context.Context, customerID string, vehicleCount int, basis domain.RentalBasis, startTime time.Time) (*domain.Rental, error)
	// CloseRental ends an open rental at returnTime, frees its vehicles and
	// returns the generated bill.
	CloseRental(ctx context.Context, rentalID string, returnTime time.Time) (*domain.Bill, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListOpenRentals(ctx context.Context) ([]domain.Rental, error)
}

type BillingService interface {
	GetBill(ctx context.Context, id string) (*domain.Bill, error)
	ListBills(ctx context.Context) ([]domain.Bill, error)
	// Invoice renders the fixed-layout invoice text for a bill.
	Invoice(ctx context.Context, billID string) (string, error)
	// PayBill marks a bill paid. Paying a paid bill is a no-op.
	PayBill(ctx context.Context, billID string) (*domain.Bill, error)
}
