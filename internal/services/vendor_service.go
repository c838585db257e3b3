package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type VendorService struct {
	vendorRepo *repositories.VendorRepository
}

func NewVendorService(vendorRepo *repositories.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

type CreateVendorRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
}

func (s *VendorService) Create(ownerID uuid.UUID, req CreateVendorRequest) (*models.Vendor, error) {
	vendor := &models.Vendor{
		OwnerID:  ownerID,
		Name:     req.Name,
		Category: req.Category,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	if err := s.vendorRepo.Create(vendor); err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	return vendor, nil
}

func (s *VendorService) Get(id, ownerID uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByIDAndOwnerID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	if vendor == nil {
		return nil, ErrNotFound
	}
	return vendor, nil
}

func (s *VendorService) List(ownerID uuid.UUID) ([]models.Vendor, error) {
	return s.vendorRepo.ListByOwnerID(ownerID)
}

type UpdateVendorRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
}

func (s *VendorService) Update(id, ownerID uuid.UUID, req UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Category != nil {
		vendor.Category = *req.Category
	}
	if req.Email != nil {
		vendor.Email = req.Email
	}
	if req.Phone != nil {
		vendor.Phone = req.Phone
	}

	vendor.Prepare()
	if err := s.vendorRepo.Update(vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

func (s *VendorService) Delete(id, ownerID uuid.UUID) error {
	if _, err := s.Get(id, ownerID); err != nil {
		return err
	}
	return s.vendorRepo.DeleteByIDAndOwnerID(id, ownerID)
}
