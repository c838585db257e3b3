package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type TenantService struct {
	tenantRepo *repositories.TenantRepository
}

func NewTenantService(tenantRepo *repositories.TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

type CreateTenantRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
}

func (s *TenantService) Create(ownerID uuid.UUID, req CreateTenantRequest) (*models.Tenant, error) {
	tenant := &models.Tenant{
		OwnerID:  ownerID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	if err := s.tenantRepo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	return tenant, nil
}

func (s *TenantService) Get(id, ownerID uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByIDAndOwnerID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tenant == nil {
		return nil, ErrNotFound
	}
	return tenant, nil
}

func (s *TenantService) List(ownerID uuid.UUID) ([]models.Tenant, error) {
	return s.tenantRepo.ListByOwnerID(ownerID)
}

type UpdateTenantRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (s *TenantService) Update(id, ownerID uuid.UUID, req UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		tenant.FullName = *req.FullName
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Phone != nil {
		tenant.Phone = req.Phone
	}

	if err := s.tenantRepo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return tenant, nil
}

func (s *TenantService) Delete(id, ownerID uuid.UUID) error {
	return s.tenantRepo.DeleteByIDAndOwnerID(id, ownerID)
}
