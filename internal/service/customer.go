package service

import (
	"context"
	"fmt"
	"strings"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) RegisterCustomer(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name required")
	}

	customer := &domain.Customer{
		ID:    s.customerRepo.NextID(ctx),
		Name:  name,
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	logger.Info("Customer registered", "customer_id", customer.ID, "name", customer.Name)
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
