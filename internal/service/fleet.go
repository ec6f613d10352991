package service

import (
	"context"
	"fmt"
	"strings"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type fleetService struct {
	vehicleRepo repository.VehicleRepository
}

func NewFleetService(vehicleRepo repository.VehicleRepository) FleetService {
	return &fleetService{vehicleRepo: vehicleRepo}
}

func (s *fleetService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if strings.TrimSpace(vehicle.ID) == "" {
		return fmt.Errorf("vehicle id required")
	}
	if vehicle.HourlyRateCents < 0 || vehicle.DailyRateCents < 0 || vehicle.WeeklyRateCents < 0 {
		return fmt.Errorf("vehicle %s: rates must not be negative", vehicle.ID)
	}

	// New fleet units always start available with no rental tag.
	vehicle.Available = true
	vehicle.ActiveRentalID = ""
	vehicle.ActiveBasis = ""
	vehicle.RentalStartTime = nil

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return err
	}
	logger.Info("Vehicle added to fleet", "vehicle_id", vehicle.ID, "model", vehicle.Model)
	return nil
}

func (s *fleetService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *fleetService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *fleetService) ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListAvailable(ctx)
}
