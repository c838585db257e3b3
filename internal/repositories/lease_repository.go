package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

type LeaseRepository struct {
	pool *pgxpool.Pool
}

func NewLeaseRepository(pool *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{pool: pool}
}

// LeaseFilter narrows List results. Zero values mean "no filter".
type LeaseFilter struct {
	UnitID   uuid.UUID
	TenantID uuid.UUID
	Status   string
}

const leaseColumns = `l.id, l.unit_id, l.tenant_id, l.start_date, l.end_date, l.rent_amount, l.deposit_amount, l.frequency, l.status, l.created_at`

func (r *LeaseRepository) Create(lease *models.Lease) error {
	ctx := context.Background()

	lease.Prepare()

	query := `
		INSERT INTO leases (id, unit_id, tenant_id, start_date, end_date, rent_amount, deposit_amount, frequency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		lease.ID,
		lease.UnitID,
		lease.TenantID,
		lease.StartDate,
		lease.EndDate,
		lease.RentAmount,
		lease.DepositAmount,
		lease.Frequency,
		lease.Status,
	)

	return err
}

// GetByIDForOwner resolves a lease only when its unit's property belongs to
// the owner.
func (r *LeaseRepository) GetByIDForOwner(id, ownerID uuid.UUID) (*models.Lease, error) {
	ctx := context.Background()

	query := `
		SELECT ` + leaseColumns + `
		FROM leases l
		JOIN units u ON u.id = l.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE l.id = $1 AND p.owner_id = $2
	`

	var l models.Lease
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.RentAmount, &l.DepositAmount, &l.Frequency, &l.Status, &l.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &l, nil
}

func (r *LeaseRepository) ListForOwner(ownerID uuid.UUID, filter LeaseFilter) ([]models.Lease, error) {
	ctx := context.Background()

	query := `
		SELECT ` + leaseColumns + `
		FROM leases l
		JOIN units u ON u.id = l.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE p.owner_id = $1
	`
	args := []interface{}{ownerID}

	if filter.UnitID != uuid.Nil {
		args = append(args, filter.UnitID)
		query += fmt.Sprintf(" AND l.unit_id = $%d", len(args))
	}
	if filter.TenantID != uuid.Nil {
		args = append(args, filter.TenantID)
		query += fmt.Sprintf(" AND l.tenant_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}

	query += " ORDER BY l.start_date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []models.Lease
	for rows.Next() {
		var l models.Lease
		err := rows.Scan(
			&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate,
			&l.RentAmount, &l.DepositAmount, &l.Frequency, &l.Status, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}

	return leases, rows.Err()
}

// ListActive returns every active lease across all owners. Used by the
// billing scheduler.
func (r *LeaseRepository) ListActive() ([]models.Lease, error) {
	ctx := context.Background()

	query := `
		SELECT ` + leaseColumns + `
		FROM leases l
		WHERE l.status = 'active'
		ORDER BY l.created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []models.Lease
	for rows.Next() {
		var l models.Lease
		err := rows.Scan(
			&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate,
			&l.RentAmount, &l.DepositAmount, &l.Frequency, &l.Status, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}

	return leases, rows.Err()
}

func (r *LeaseRepository) HasActiveLeaseForUnit(unitID uuid.UUID) (bool, error) {
	ctx := context.Background()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM leases WHERE unit_id = $1 AND status = 'active')`
	err := r.pool.QueryRow(ctx, query, unitID).Scan(&exists)
	return exists, err
}

func (r *LeaseRepository) UpdateStatus(id uuid.UUID, status models.LeaseStatus) error {
	ctx := context.Background()

	query := `UPDATE leases SET status = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}
