package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// PaymentFilter narrows List results. Zero values mean "no filter".
type PaymentFilter struct {
	LeaseID uuid.UUID
	Status  string
}

const paymentColumns = `pm.id, pm.lease_id, pm.period_start, pm.period_end, pm.due_date, pm.amount, pm.status, pm.paid_at, pm.method, pm.created_at, pm.updated_at`

// CreateIfAbsent inserts the payment unless one already exists for its
// (lease, period start). Returns true when a row was inserted.
func (r *PaymentRepository) CreateIfAbsent(payment *models.Payment) (bool, error) {
	ctx := context.Background()

	payment.Prepare()

	query := `
		INSERT INTO payments (id, lease_id, period_start, period_end, due_date, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (lease_id, period_start) DO NOTHING
	`

	result, err := r.pool.Exec(ctx, query,
		payment.ID,
		payment.LeaseID,
		payment.PeriodStart,
		payment.PeriodEnd,
		payment.DueDate,
		payment.Amount,
		payment.Status,
	)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// GetByIDForOwner resolves a payment only when its lease's property belongs
// to the owner.
func (r *PaymentRepository) GetByIDForOwner(id, ownerID uuid.UUID) (*models.Payment, error) {
	ctx := context.Background()

	query := `
		SELECT ` + paymentColumns + `
		FROM payments pm
		JOIN leases l ON l.id = pm.lease_id
		JOIN units u ON u.id = l.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE pm.id = $1 AND p.owner_id = $2
	`

	var pm models.Payment
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&pm.ID, &pm.LeaseID, &pm.PeriodStart, &pm.PeriodEnd, &pm.DueDate,
		&pm.Amount, &pm.Status, &pm.PaidAt, &pm.Method, &pm.CreatedAt, &pm.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &pm, nil
}

func (r *PaymentRepository) ListForOwner(ownerID uuid.UUID, filter PaymentFilter) ([]models.Payment, error) {
	ctx := context.Background()

	query := `
		SELECT ` + paymentColumns + `
		FROM payments pm
		JOIN leases l ON l.id = pm.lease_id
		JOIN units u ON u.id = l.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE p.owner_id = $1
	`
	args := []interface{}{ownerID}

	if filter.LeaseID != uuid.Nil {
		args = append(args, filter.LeaseID)
		query += fmt.Sprintf(" AND pm.lease_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND pm.status = $%d", len(args))
	}

	query += " ORDER BY pm.due_date"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var pm models.Payment
		err := rows.Scan(
			&pm.ID, &pm.LeaseID, &pm.PeriodStart, &pm.PeriodEnd, &pm.DueDate,
			&pm.Amount, &pm.Status, &pm.PaidAt, &pm.Method, &pm.CreatedAt, &pm.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, pm)
	}

	return payments, rows.Err()
}

func (r *PaymentRepository) MarkPaid(id uuid.UUID, paidAt time.Time, method string) error {
	ctx := context.Background()

	query := `
		UPDATE payments SET status = 'paid', paid_at = $2, method = $3, updated_at = NOW()
		WHERE id = $1 AND status <> 'paid'
	`

	result, err := r.pool.Exec(ctx, query, id, paidAt, method)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("payment not found or already paid")
	}

	return nil
}

// MarkOverdue flips pending payments past their due date to overdue and
// returns how many changed.
func (r *PaymentRepository) MarkOverdue(asOf time.Time) (int64, error) {
	ctx := context.Background()

	query := `
		UPDATE payments SET status = 'overdue', updated_at = NOW()
		WHERE status = 'pending' AND due_date < $1
	`

	result, err := r.pool.Exec(ctx, query, asOf)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
