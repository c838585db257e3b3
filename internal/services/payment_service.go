package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/batch"
	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
)

type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	leaseRepo   *repositories.LeaseRepository
	batchOpts   batch.Options
}

func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	leaseRepo *repositories.LeaseRepository,
	batchOpts batch.Options,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		leaseRepo:   leaseRepo,
		batchOpts:   batchOpts,
	}
}

func (s *PaymentService) Get(id, ownerID uuid.UUID) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByIDForOwner(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	return payment, nil
}

func (s *PaymentService) List(ownerID uuid.UUID, filter repositories.PaymentFilter) ([]models.Payment, error) {
	return s.paymentRepo.ListForOwner(ownerID, filter)
}

type RecordPaymentRequest struct {
	Method string `json:"method"`
	PaidAt string `json:"paid_at,omitempty"` // YYYY-MM-DD, defaults to today
}

// RecordPayment marks a pending or overdue payment as paid.
func (s *PaymentService) RecordPayment(id, ownerID uuid.UUID, req RecordPaymentRequest) (*models.Payment, error) {
	payment, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}
	if payment.Status == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	paidAt := time.Now()
	if req.PaidAt != "" {
		parsed, err := time.Parse("2006-01-02", req.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("invalid paid_at: %w", err)
		}
		paidAt = parsed
	}

	if err := s.paymentRepo.MarkPaid(payment.ID, paidAt, req.Method); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return s.Get(id, ownerID)
}

// GenerationSummary reports the outcome of a rent generation sweep.
type GenerationSummary struct {
	LeasesProcessed int `json:"leases_processed"`
	PaymentsCreated int `json:"payments_created"`
	Failed          int `json:"failed"`
}

// GenerateDue materializes pending payment rows for every period that has
// come due on every active lease. Already materialized periods are skipped,
// so the sweep is safe to run repeatedly.
func (s *PaymentService) GenerateDue(ctx context.Context) (*GenerationSummary, error) {
	leases, err := s.leaseRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active leases: %w", err)
	}

	now := time.Now()

	results, err := batch.Run(ctx, leases, s.batchOpts, func(ctx context.Context, lease models.Lease) (int, error) {
		return s.generateForLease(&lease, now)
	})
	if err != nil {
		return nil, err
	}

	summary := &GenerationSummary{LeasesProcessed: len(leases)}
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
			continue
		}
		summary.PaymentsCreated += res.Value
	}

	return summary, nil
}

// GenerateForLease materializes due payments for a single lease the caller owns.
func (s *PaymentService) GenerateForLease(leaseID, ownerID uuid.UUID) (int, error) {
	lease, err := s.leaseRepo.GetByIDForOwner(leaseID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get lease: %w", err)
	}
	if lease == nil {
		return 0, ErrNotFound
	}
	if !lease.IsActive() {
		return 0, ErrLeaseNotActive
	}
	return s.generateForLease(lease, time.Now())
}

func (s *PaymentService) generateForLease(lease *models.Lease, until time.Time) (int, error) {
	periods := GeneratePeriods(lease.StartDate, until, lease.EndDate, lease.Frequency)

	created := 0
	for _, period := range periods {
		payment := &models.Payment{
			LeaseID:     lease.ID,
			PeriodStart: period.Start,
			PeriodEnd:   period.End,
			DueDate:     period.DueDate,
			Amount:      lease.RentAmount,
		}
		inserted, err := s.paymentRepo.CreateIfAbsent(payment)
		if err != nil {
			return created, fmt.Errorf("failed to create payment for lease %s: %w", lease.ID, err)
		}
		if inserted {
			created++
		}
	}

	return created, nil
}

// MarkOverdue flips pending payments past their due date and returns the count.
func (s *PaymentService) MarkOverdue() (int64, error) {
	return s.paymentRepo.MarkOverdue(time.Now())
}
