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

type MaintenanceRepository struct {
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{pool: pool}
}

// MaintenanceFilter narrows List results. Zero values mean "no filter".
type MaintenanceFilter struct {
	PropertyID uuid.UUID
	Status     string
}

const maintenanceColumns = `m.id, m.property_id, m.unit_id, m.tenant_id, m.vendor_id, m.title, m.description, m.priority, m.status, m.created_at, m.updated_at, m.completed_at`

func (r *MaintenanceRepository) Create(request *models.MaintenanceRequest) error {
	ctx := context.Background()

	request.Prepare()

	query := `
		INSERT INTO maintenance_requests (id, property_id, unit_id, tenant_id, vendor_id, title, description, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.PropertyID,
		request.UnitID,
		request.TenantID,
		request.VendorID,
		request.Title,
		request.Description,
		request.Priority,
		request.Status,
	)

	return err
}

// GetByIDForOwner resolves a request only when its property belongs to the
// owner.
func (r *MaintenanceRepository) GetByIDForOwner(id, ownerID uuid.UUID) (*models.MaintenanceRequest, error) {
	ctx := context.Background()

	query := `
		SELECT ` + maintenanceColumns + `
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE m.id = $1 AND p.owner_id = $2
	`

	var m models.MaintenanceRequest
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&m.ID, &m.PropertyID, &m.UnitID, &m.TenantID, &m.VendorID, &m.Title,
		&m.Description, &m.Priority, &m.Status, &m.CreatedAt, &m.UpdatedAt, &m.CompletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &m, nil
}

func (r *MaintenanceRepository) ListForOwner(ownerID uuid.UUID, filter MaintenanceFilter) ([]models.MaintenanceRequest, error) {
	ctx := context.Background()

	query := `
		SELECT ` + maintenanceColumns + `
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE p.owner_id = $1
	`
	args := []interface{}{ownerID}

	if filter.PropertyID != uuid.Nil {
		args = append(args, filter.PropertyID)
		query += fmt.Sprintf(" AND m.property_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND m.status = $%d", len(args))
	}

	query += " ORDER BY m.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.MaintenanceRequest
	for rows.Next() {
		var m models.MaintenanceRequest
		err := rows.Scan(
			&m.ID, &m.PropertyID, &m.UnitID, &m.TenantID, &m.VendorID, &m.Title,
			&m.Description, &m.Priority, &m.Status, &m.CreatedAt, &m.UpdatedAt, &m.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}

	return requests, rows.Err()
}

func (r *MaintenanceRepository) Update(request *models.MaintenanceRequest) error {
	ctx := context.Background()

	query := `
		UPDATE maintenance_requests SET
			title = $2, description = $3, priority = $4, unit_id = $5, tenant_id = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.Title,
		request.Description,
		request.Priority,
		request.UnitID,
		request.TenantID,
	)

	return err
}

func (r *MaintenanceRepository) UpdateStatus(id uuid.UUID, status models.MaintenanceStatus, completedAt *time.Time) error {
	ctx := context.Background()

	query := `
		UPDATE maintenance_requests SET status = $2, completed_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, status, completedAt)
	return err
}

func (r *MaintenanceRepository) AssignVendor(id, vendorID uuid.UUID) error {
	ctx := context.Background()

	query := `UPDATE maintenance_requests SET vendor_id = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, vendorID)
	return err
}
