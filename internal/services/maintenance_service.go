package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type MaintenanceService struct {
	maintenanceRepo *repositories.MaintenanceRepository
	propertyRepo    *repositories.PropertyRepository
	unitRepo        *repositories.UnitRepository
	tenantRepo      *repositories.TenantRepository
	vendorRepo      *repositories.VendorRepository
}

func NewMaintenanceService(
	maintenanceRepo *repositories.MaintenanceRepository,
	propertyRepo *repositories.PropertyRepository,
	unitRepo *repositories.UnitRepository,
	tenantRepo *repositories.TenantRepository,
	vendorRepo *repositories.VendorRepository,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		unitRepo:        unitRepo,
		tenantRepo:      tenantRepo,
		vendorRepo:      vendorRepo,
	}
}

type CreateMaintenanceRequest struct {
	PropertyID  string  `json:"property_id" binding:"required,uuid"`
	UnitID      *string `json:"unit_id,omitempty" binding:"omitempty,uuid"`
	TenantID    *string `json:"tenant_id,omitempty" binding:"omitempty,uuid"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
}

func (s *MaintenanceService) Create(ownerID uuid.UUID, req CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	propertyID := uuid.MustParse(req.PropertyID)

	property, err := s.propertyRepo.GetByIDAndOwnerID(propertyID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, ErrNotFound
	}

	request := &models.MaintenanceRequest{
		PropertyID:  property.ID,
		Title:       req.Title,
		Description: req.Description,
	}

	if req.UnitID != nil {
		unit, err := s.unitRepo.GetByIDForOwner(uuid.MustParse(*req.UnitID), ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get unit: %w", err)
		}
		if unit == nil || unit.PropertyID != property.ID {
			return nil, ErrNotFound
		}
		request.UnitID = &unit.ID
	}

	if req.TenantID != nil {
		tenant, err := s.tenantRepo.GetByIDAndOwnerID(uuid.MustParse(*req.TenantID), ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get tenant: %w", err)
		}
		if tenant == nil {
			return nil, ErrNotFound
		}
		request.TenantID = &tenant.ID
	}

	if req.Priority != "" {
		priority := models.MaintenancePriority(req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("invalid priority: %s", req.Priority)
		}
		request.Priority = priority
	}

	if err := s.maintenanceRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to save maintenance request: %w", err)
	}

	return request, nil
}

func (s *MaintenanceService) Get(id, ownerID uuid.UUID) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.GetByIDForOwner(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	if request == nil {
		return nil, ErrNotFound
	}
	return request, nil
}

func (s *MaintenanceService) List(ownerID uuid.UUID, filter repositories.MaintenanceFilter) ([]models.MaintenanceRequest, error) {
	return s.maintenanceRepo.ListForOwner(ownerID, filter)
}

type UpdateMaintenanceRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

func (s *MaintenanceService) Update(id, ownerID uuid.UUID, req UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	request, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Priority != nil {
		priority := models.MaintenancePriority(*req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("invalid priority: %s", *req.Priority)
		}
		request.Priority = priority
	}

	if err := s.maintenanceRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}

	return request, nil
}

// SetStatus moves a request through its lifecycle. Completing a request
// stamps completed_at.
func (s *MaintenanceService) SetStatus(id, ownerID uuid.UUID, status models.MaintenanceStatus) (*models.MaintenanceRequest, error) {
	request, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if !request.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	var completedAt *time.Time
	if status == models.MaintenanceStatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	if err := s.maintenanceRepo.UpdateStatus(request.ID, status, completedAt); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	request.Status = status
	request.CompletedAt = completedAt
	return request, nil
}

// AssignVendor links an owner's vendor to an open request.
func (s *MaintenanceService) AssignVendor(id, vendorID, ownerID uuid.UUID) (*models.MaintenanceRequest, error) {
	request, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}
	if request.Status == models.MaintenanceStatusCompleted || request.Status == models.MaintenanceStatusCancelled {
		return nil, ErrInvalidTransition
	}

	vendor, err := s.vendorRepo.GetByIDAndOwnerID(vendorID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	if vendor == nil {
		return nil, ErrNotFound
	}

	if err := s.maintenanceRepo.AssignVendor(request.ID, vendor.ID); err != nil {
		return nil, fmt.Errorf("failed to assign vendor: %w", err)
	}

	request.VendorID = &vendor.ID
	return request, nil
}
