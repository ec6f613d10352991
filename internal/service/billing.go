package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/utils"
)

type billingService struct {
	billRepo     repository.BillRepository
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
}

func NewBillingService(
	billRepo repository.BillRepository,
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
) BillingService {
	return &billingService{
		billRepo:     billRepo,
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
	}
}

func (s *billingService) GetBill(ctx context.Context, id string) (*domain.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

func (s *billingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return s.billRepo.List(ctx)
}

func (s *billingService) Invoice(ctx context.Context, billID string) (string, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return "", err
	}
	rental, err := s.rentalRepo.GetByID(ctx, bill.RentalID)
	if err != nil {
		return "", err
	}
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil {
		return "", err
	}
	vehicles := make([]domain.Vehicle, 0, len(rental.VehicleIDs))
	for _, id := range rental.VehicleIDs {
		v, err := s.vehicleRepo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		vehicles = append(vehicles, *v)
	}
	return utils.RenderInvoice(bill, rental, customer, vehicles), nil
}

func (s *billingService) PayBill(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.Paid {
		return bill, nil
	}
	bill.Paid = true
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	logger.Info("Bill paid", "bill_id", bill.ID, "amount_cents", bill.AmountCents)
	return bill, nil
}
