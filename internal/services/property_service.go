package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type PropertyService struct {
	propertyRepo *repositories.PropertyRepository
}

func NewPropertyService(propertyRepo *repositories.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

type CreatePropertyRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	PropertyType string  `json:"property_type" binding:"required,oneof=residential commercial mixed"`
	Notes        *string `json:"notes,omitempty"`
}

func (s *PropertyService) Create(ownerID uuid.UUID, req CreatePropertyRequest) (*models.Property, error) {
	property := &models.Property{
		OwnerID:      ownerID,
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		PropertyType: req.PropertyType,
		Notes:        req.Notes,
	}

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to save property: %w", err)
	}

	return property, nil
}

func (s *PropertyService) Get(id, ownerID uuid.UUID) (*models.Property, error) {
	property, err := s.propertyRepo.GetByIDAndOwnerID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, ErrNotFound
	}
	return property, nil
}

func (s *PropertyService) List(ownerID uuid.UUID, filter repositories.PropertyFilter) ([]models.Property, error) {
	return s.propertyRepo.ListByOwnerID(ownerID, filter)
}

type UpdatePropertyRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	PropertyType *string `json:"property_type,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (s *PropertyService) Update(id, ownerID uuid.UUID, req UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.State != nil {
		property.State = *req.State
	}
	if req.ZipCode != nil {
		property.ZipCode = *req.ZipCode
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.Notes != nil {
		property.Notes = req.Notes
	}
	if req.Status != nil {
		property.Status = models.PropertyStatus(*req.Status)
	}

	if err := s.propertyRepo.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return property, nil
}

// Delete archives a property that still has units, and removes it outright
// otherwise.
func (s *PropertyService) Delete(id, ownerID uuid.UUID) error {
	property, err := s.Get(id, ownerID)
	if err != nil {
		return err
	}

	count, err := s.propertyRepo.CountUnits(property.ID)
	if err != nil {
		return fmt.Errorf("failed to count units: %w", err)
	}

	if count > 0 {
		property.Status = models.PropertyStatusArchived
		if err := s.propertyRepo.Update(property); err != nil {
			return fmt.Errorf("failed to archive property: %w", err)
		}
		return nil
	}

	return s.propertyRepo.DeleteByIDAndOwnerID(id, ownerID)
}
