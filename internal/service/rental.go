package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/utils"
)

// rentalService works against the whole store rather than individual
// repositories: opening and closing touch vehicles, the customer, the
// rental and the bill together, and run inside store.Mutate so no reader
// ever observes a half-applied transition.
type rentalService struct {
	store repository.Store
}

func NewRentalService(store repository.Store) RentalService {
	return &rentalService{store: store}
}

func (s *rentalService) OpenRental(ctx context.Context, customerID string, vehicleCount int, basis domain.RentalBasis, startTime time.Time) (*domain.Rental, error) {
	if vehicleCount < 1 {
		return nil, fmt.Errorf("vehicle count must be at least 1, got %d", vehicleCount)
	}
	if !basis.Valid() {
		return nil, fmt.Errorf("unknown rental basis %q", basis)
	}

	var rental *domain.Rental
	err := s.store.Mutate(ctx, func(store repository.Store) error {
		// Validate everything before touching any record, so a failed
		// open leaves vehicle and customer state untouched.
		customer, err := store.Customers().GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		vehicles, err := store.Vehicles().FindAvailable(ctx, vehicleCount)
		if err != nil {
			return err
		}

		vehicleIDs := make([]string, len(vehicles))
		for i := range vehicles {
			vehicleIDs[i] = vehicles[i].ID
		}

		rental = &domain.Rental{
			ID:         store.Rentals().NextID(ctx),
			CustomerID: customer.ID,
			VehicleIDs: vehicleIDs,
			Basis:      basis,
			StartTime:  startTime,
			Status:     domain.RentalStatusOpen,
		}
		if err := store.Rentals().Create(ctx, rental); err != nil {
			return err
		}

		for i := range vehicles {
			v := vehicles[i]
			v.Available = false
			v.ActiveRentalID = rental.ID
			v.ActiveBasis = basis
			start := startTime
			v.RentalStartTime = &start
			if err := store.Vehicles().Update(ctx, &v); err != nil {
				return err
			}
		}

		customer.RentedVehicleIDs = append(customer.RentedVehicleIDs, vehicleIDs...)
		return store.Customers().Update(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rental opened",
		"rental_id", rental.ID,
		"customer_id", rental.CustomerID,
		"basis", basis,
		"vehicles", len(rental.VehicleIDs),
		"start_time", startTime)
	return rental, nil
}

func (s *rentalService) CloseRental(ctx context.Context, rentalID string, returnTime time.Time) (*domain.Bill, error) {
	var bill *domain.Bill
	err := s.store.Mutate(ctx, func(store repository.Store) error {
		rental, err := store.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Closed() {
			return fmt.Errorf("rental %s: %w", rentalID, domain.ErrRentalClosed)
		}
		if returnTime.Before(rental.StartTime) {
			return fmt.Errorf("rental %s: return %s before start %s: %w",
				rentalID, returnTime.Format(time.DateTime), rental.StartTime.Format(time.DateTime),
				domain.ErrInvalidTimeRange)
		}

		vehicles := make([]domain.Vehicle, 0, len(rental.VehicleIDs))
		for _, id := range rental.VehicleIDs {
			v, err := store.Vehicles().GetByID(ctx, id)
			if err != nil {
				return err
			}
			vehicles = append(vehicles, *v)
		}
		customer, err := store.Customers().GetByID(ctx, rental.CustomerID)
		if err != nil {
			return err
		}

		end := returnTime
		rental.EndTime = &end
		rental.Status = domain.RentalStatusClosed

		amount, err := utils.ComputeRentalAmountCents(rental, vehicles)
		if err != nil {
			return err
		}
		rental.AmountCents = amount
		if err := store.Rentals().Update(ctx, rental); err != nil {
			return err
		}

		for i := range vehicles {
			v := vehicles[i]
			v.Available = true
			v.ActiveRentalID = ""
			v.ActiveBasis = ""
			v.RentalStartTime = nil
			if err := store.Vehicles().Update(ctx, &v); err != nil {
				return err
			}
		}

		customer.RentedVehicleIDs = removeAll(customer.RentedVehicleIDs, rental.VehicleIDs)
		customer.RentalHistory = append(customer.RentalHistory, rental.ID)
		if err := store.Customers().Update(ctx, customer); err != nil {
			return err
		}

		bill = &domain.Bill{
			ID:          store.Bills().NextID(ctx),
			RentalID:    rental.ID,
			Reference:   uuid.NewString(),
			AmountCents: amount,
			GeneratedAt: time.Now().UTC(),
		}
		return store.Bills().Create(ctx, bill)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rental closed",
		"rental_id", bill.RentalID,
		"bill_id", bill.ID,
		"amount_cents", bill.AmountCents,
		"end_time", returnTime)
	return bill, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.store.Rentals().GetByID(ctx, id)
}

func (s *rentalService) ListOpenRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.store.Rentals().ListOpen(ctx)
}

// removeAll drops every element of drop from ids, preserving order.
func removeAll(ids, drop []string) []string {
	dropSet := make(map[string]bool, len(drop))
	for _, id := range drop {
		dropSet[id] = true
	}
	out := ids[:0]
	for _, id := range ids {
		if !dropSet[id] {
			out = append(out, id)
		}
	}
	return out
}
