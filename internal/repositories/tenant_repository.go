package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

type TenantRepository struct {
	pool *pgxpool.Pool
}

func NewTenantRepository(pool *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{pool: pool}
}

const tenantColumns = `id, owner_id, full_name, email, phone, created_at, updated_at`

func (r *TenantRepository) Create(tenant *models.Tenant) error {
	ctx := context.Background()

	tenant.Prepare()

	query := `
		INSERT INTO tenants (id, owner_id, full_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		tenant.ID,
		tenant.OwnerID,
		tenant.FullName,
		tenant.Email,
		tenant.Phone,
	)

	return err
}

func (r *TenantRepository) GetByIDAndOwnerID(id, ownerID uuid.UUID) (*models.Tenant, error) {
	ctx := context.Background()

	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1 AND owner_id = $2`

	var t models.Tenant
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.FullName, &t.Email, &t.Phone, &t.CreatedAt, &t.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &t, nil
}

func (r *TenantRepository) ListByOwnerID(ownerID uuid.UUID) ([]models.Tenant, error) {
	ctx := context.Background()

	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE owner_id = $1 ORDER BY full_name`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []models.Tenant
	for rows.Next() {
		var t models.Tenant
		err := rows.Scan(&t.ID, &t.OwnerID, &t.FullName, &t.Email, &t.Phone, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, rows.Err()
}

func (r *TenantRepository) Update(tenant *models.Tenant) error {
	ctx := context.Background()

	query := `
		UPDATE tenants SET full_name = $3, email = $4, phone = $5, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		tenant.ID,
		tenant.OwnerID,
		tenant.FullName,
		tenant.Email,
		tenant.Phone,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("tenant not found or access denied")
	}

	return nil
}

func (r *TenantRepository) DeleteByIDAndOwnerID(id, ownerID uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM tenants WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("tenant not found or access denied")
	}

	return nil
}
