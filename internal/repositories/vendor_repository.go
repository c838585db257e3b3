package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

type VendorRepository struct {
	pool *pgxpool.Pool
}

func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

const vendorColumns = `id, owner_id, name, category, email, phone, created_at`

func (r *VendorRepository) Create(vendor *models.Vendor) error {
	ctx := context.Background()

	vendor.Prepare()

	query := `
		INSERT INTO vendors (id, owner_id, name, category, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.OwnerID,
		vendor.Name,
		vendor.Category,
		vendor.Email,
		vendor.Phone,
	)

	return err
}

func (r *VendorRepository) GetByIDAndOwnerID(id, ownerID uuid.UUID) (*models.Vendor, error) {
	ctx := context.Background()

	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1 AND owner_id = $2`

	var v models.Vendor
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Category, &v.Email, &v.Phone, &v.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &v, nil
}

func (r *VendorRepository) ListByOwnerID(ownerID uuid.UUID) ([]models.Vendor, error) {
	ctx := context.Background()

	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE owner_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Category, &v.Email, &v.Phone, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	return vendors, rows.Err()
}

func (r *VendorRepository) Update(vendor *models.Vendor) error {
	ctx := context.Background()

	query := `
		UPDATE vendors SET name = $3, category = $4, email = $5, phone = $6
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.OwnerID,
		vendor.Name,
		vendor.Category,
		vendor.Email,
		vendor.Phone,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("vendor not found or access denied")
	}

	return nil
}

func (r *VendorRepository) DeleteByIDAndOwnerID(id, ownerID uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("vendor not found or access denied")
	}

	return nil
}
