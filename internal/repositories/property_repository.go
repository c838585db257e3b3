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

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

// PropertyFilter narrows List results. Zero values mean "no filter".
type PropertyFilter struct {
	City   string
	Type   string
	Status string
	Limit  int
	Offset int
}

const propertyColumns = `id, owner_id, name, address, city, state, zip_code, property_type, notes, status, created_at, updated_at`

func (r *PropertyRepository) Create(property *models.Property) error {
	ctx := context.Background()

	property.Prepare()

	query := `
		INSERT INTO properties (id, owner_id, name, address, city, state, zip_code, property_type, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		property.ID,
		property.OwnerID,
		property.Name,
		property.Address,
		property.City,
		property.State,
		property.ZipCode,
		property.PropertyType,
		property.Notes,
		property.Status,
	)

	return err
}

func (r *PropertyRepository) GetByIDAndOwnerID(id, ownerID uuid.UUID) (*models.Property, error) {
	ctx := context.Background()

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1 AND owner_id = $2`

	var p models.Property
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.PropertyType, &p.Notes, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *PropertyRepository) ListByOwnerID(ownerID uuid.UUID, filter PropertyFilter) ([]models.Property, error) {
	ctx := context.Background()

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND property_type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode,
			&p.PropertyType, &p.Notes, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

func (r *PropertyRepository) Update(property *models.Property) error {
	ctx := context.Background()

	query := `
		UPDATE properties SET
			name = $3, address = $4, city = $5, state = $6, zip_code = $7,
			property_type = $8, notes = $9, status = $10, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		property.ID,
		property.OwnerID,
		property.Name,
		property.Address,
		property.City,
		property.State,
		property.ZipCode,
		property.PropertyType,
		property.Notes,
		property.Status,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("property not found or access denied")
	}

	return nil
}

func (r *PropertyRepository) CountUnits(propertyID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM units WHERE property_id = $1`, propertyID).Scan(&count)
	return count, err
}

func (r *PropertyRepository) DeleteByIDAndOwnerID(id, ownerID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM properties WHERE id = $1 AND owner_id = $2`
	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("property not found or access denied")
	}

	return nil
}
