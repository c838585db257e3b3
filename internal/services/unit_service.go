package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type UnitService struct {
	unitRepo     *repositories.UnitRepository
	propertyRepo *repositories.PropertyRepository
	leaseRepo    *repositories.LeaseRepository
}

func NewUnitService(
	unitRepo *repositories.UnitRepository,
	propertyRepo *repositories.PropertyRepository,
	leaseRepo *repositories.LeaseRepository,
) *UnitService {
	return &UnitService{
		unitRepo:     unitRepo,
		propertyRepo: propertyRepo,
		leaseRepo:    leaseRepo,
	}
}

type CreateUnitRequest struct {
	UnitNumber string   `json:"unit_number" binding:"required"`
	Floor      *int     `json:"floor,omitempty"`
	Bedrooms   *int     `json:"bedrooms,omitempty"`
	Bathrooms  *int     `json:"bathrooms,omitempty"`
	AreaSqft   *float64 `json:"area_sqft,omitempty"`
	MarketRent *int64   `json:"market_rent,omitempty"`
}

func (s *UnitService) Create(propertyID, ownerID uuid.UUID, req CreateUnitRequest) (*models.Unit, error) {
	property, err := s.propertyRepo.GetByIDAndOwnerID(propertyID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, ErrNotFound
	}

	unit := &models.Unit{
		PropertyID: property.ID,
		UnitNumber: req.UnitNumber,
		Floor:      req.Floor,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		AreaSqft:   req.AreaSqft,
		MarketRent: req.MarketRent,
	}

	if err := s.unitRepo.Create(unit); err != nil {
		return nil, fmt.Errorf("failed to save unit: %w", err)
	}

	return unit, nil
}

func (s *UnitService) Get(id, ownerID uuid.UUID) (*models.Unit, error) {
	unit, err := s.unitRepo.GetByIDForOwner(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	if unit == nil {
		return nil, ErrNotFound
	}
	return unit, nil
}

func (s *UnitService) ListByProperty(propertyID, ownerID uuid.UUID) ([]models.Unit, error) {
	property, err := s.propertyRepo.GetByIDAndOwnerID(propertyID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, ErrNotFound
	}

	return s.unitRepo.ListByPropertyID(property.ID)
}

type UpdateUnitRequest struct {
	UnitNumber *string  `json:"unit_number,omitempty"`
	Floor      *int     `json:"floor,omitempty"`
	Bedrooms   *int     `json:"bedrooms,omitempty"`
	Bathrooms  *int     `json:"bathrooms,omitempty"`
	AreaSqft   *float64 `json:"area_sqft,omitempty"`
	MarketRent *int64   `json:"market_rent,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

func (s *UnitService) Update(id, ownerID uuid.UUID, req UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.UnitNumber != nil {
		unit.UnitNumber = *req.UnitNumber
	}
	if req.Floor != nil {
		unit.Floor = req.Floor
	}
	if req.Bedrooms != nil {
		unit.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms != nil {
		unit.Bathrooms = req.Bathrooms
	}
	if req.AreaSqft != nil {
		unit.AreaSqft = req.AreaSqft
	}
	if req.MarketRent != nil {
		unit.MarketRent = req.MarketRent
	}
	if req.Status != nil {
		unit.Status = models.UnitStatus(*req.Status)
	}

	if err := s.unitRepo.Update(unit); err != nil {
		return nil, fmt.Errorf("failed to update unit: %w", err)
	}

	return unit, nil
}

func (s *UnitService) Delete(id, ownerID uuid.UUID) error {
	unit, err := s.Get(id, ownerID)
	if err != nil {
		return err
	}

	occupied, err := s.leaseRepo.HasActiveLeaseForUnit(unit.ID)
	if err != nil {
		return fmt.Errorf("failed to check leases: %w", err)
	}
	if occupied {
		return ErrUnitOccupied
	}

	return s.unitRepo.Delete(unit.ID)
}
