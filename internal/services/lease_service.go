package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type LeaseService struct {
	leaseRepo  *repositories.LeaseRepository
	unitRepo   *repositories.UnitRepository
	tenantRepo *repositories.TenantRepository
}

func NewLeaseService(
	leaseRepo *repositories.LeaseRepository,
	unitRepo *repositories.UnitRepository,
	tenantRepo *repositories.TenantRepository,
) *LeaseService {
	return &LeaseService{
		leaseRepo:  leaseRepo,
		unitRepo:   unitRepo,
		tenantRepo: tenantRepo,
	}
}

type CreateLeaseRequest struct {
	UnitID        string  `json:"unit_id" binding:"required,uuid"`
	TenantID      string  `json:"tenant_id" binding:"required,uuid"`
	StartDate     string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate       *string `json:"end_date,omitempty"`
	RentAmount    int64   `json:"rent_amount" binding:"required,gt=0"`
	DepositAmount int64   `json:"deposit_amount" binding:"gte=0"`
	Frequency     string  `json:"frequency"`
}

func (s *LeaseService) Create(ownerID uuid.UUID, req CreateLeaseRequest) (*models.Lease, error) {
	unitID := uuid.MustParse(req.UnitID)
	tenantID := uuid.MustParse(req.TenantID)

	unit, err := s.unitRepo.GetByIDForOwner(unitID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	if unit == nil {
		return nil, ErrNotFound
	}

	tenant, err := s.tenantRepo.GetByIDAndOwnerID(tenantID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tenant == nil {
		return nil, ErrNotFound
	}

	occupied, err := s.leaseRepo.HasActiveLeaseForUnit(unit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check unit leases: %w", err)
	}
	if occupied {
		return nil, ErrUnitOccupied
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		if !parsed.After(startDate) {
			return nil, fmt.Errorf("end_date must be after start_date")
		}
		endDate = &parsed
	}

	frequency := models.Frequency(req.Frequency)
	if req.Frequency == "" {
		frequency = models.FrequencyMonthly
	}
	if !frequency.Valid() {
		return nil, fmt.Errorf("invalid frequency: %s", req.Frequency)
	}

	lease := &models.Lease{
		UnitID:        unit.ID,
		TenantID:      tenant.ID,
		StartDate:     startDate,
		EndDate:       endDate,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
		Frequency:     frequency,
	}

	if err := s.leaseRepo.Create(lease); err != nil {
		return nil, fmt.Errorf("failed to save lease: %w", err)
	}

	if err := s.unitRepo.UpdateStatus(unit.ID, models.UnitStatusOccupied); err != nil {
		return nil, fmt.Errorf("failed to mark unit occupied: %w", err)
	}

	return lease, nil
}

func (s *LeaseService) Get(id, ownerID uuid.UUID) (*models.Lease, error) {
	lease, err := s.leaseRepo.GetByIDForOwner(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}
	if lease == nil {
		return nil, ErrNotFound
	}
	return lease, nil
}

func (s *LeaseService) List(ownerID uuid.UUID, filter repositories.LeaseFilter) ([]models.Lease, error) {
	return s.leaseRepo.ListForOwner(ownerID, filter)
}

// Terminate ends an active lease and frees its unit.
func (s *LeaseService) Terminate(id, ownerID uuid.UUID) (*models.Lease, error) {
	lease, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}
	if !lease.IsActive() {
		return nil, ErrLeaseNotActive
	}

	if err := s.leaseRepo.UpdateStatus(lease.ID, models.LeaseStatusTerminated); err != nil {
		return nil, fmt.Errorf("failed to terminate lease: %w", err)
	}

	if err := s.unitRepo.UpdateStatus(lease.UnitID, models.UnitStatusVacant); err != nil {
		return nil, fmt.Errorf("failed to mark unit vacant: %w", err)
	}

	lease.Status = models.LeaseStatusTerminated
	return lease, nil
}

// Schedule returns the lease's rent periods that have come due so far,
// computed on the fly.
func (s *LeaseService) Schedule(id, ownerID uuid.UUID) ([]Period, error) {
	lease, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	return GeneratePeriods(lease.StartDate, time.Now(), lease.EndDate, lease.Frequency), nil
}
