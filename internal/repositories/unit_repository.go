package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

type UnitRepository struct {
	pool *pgxpool.Pool
}

func NewUnitRepository(pool *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{pool: pool}
}

const unitColumns = `id, property_id, unit_number, floor, bedrooms, bathrooms, area_sqft, market_rent, status, created_at, updated_at`

func (r *UnitRepository) Create(unit *models.Unit) error {
	ctx := context.Background()

	unit.Prepare()

	query := `
		INSERT INTO units (id, property_id, unit_number, floor, bedrooms, bathrooms, area_sqft, market_rent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		unit.ID,
		unit.PropertyID,
		unit.UnitNumber,
		unit.Floor,
		unit.Bedrooms,
		unit.Bathrooms,
		unit.AreaSqft,
		unit.MarketRent,
		unit.Status,
	)

	return err
}

// GetByIDForOwner resolves a unit only when its property belongs to the owner.
func (r *UnitRepository) GetByIDForOwner(id, ownerID uuid.UUID) (*models.Unit, error) {
	ctx := context.Background()

	query := `
		SELECT u.id, u.property_id, u.unit_number, u.floor, u.bedrooms, u.bathrooms,
		       u.area_sqft, u.market_rent, u.status, u.created_at, u.updated_at
		FROM units u
		JOIN properties p ON p.id = u.property_id
		WHERE u.id = $1 AND p.owner_id = $2
	`

	var u models.Unit
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&u.ID, &u.PropertyID, &u.UnitNumber, &u.Floor, &u.Bedrooms, &u.Bathrooms,
		&u.AreaSqft, &u.MarketRent, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *UnitRepository) ListByPropertyID(propertyID uuid.UUID) ([]models.Unit, error) {
	ctx := context.Background()

	query := `SELECT ` + unitColumns + ` FROM units WHERE property_id = $1 ORDER BY unit_number`

	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var u models.Unit
		err := rows.Scan(
			&u.ID, &u.PropertyID, &u.UnitNumber, &u.Floor, &u.Bedrooms, &u.Bathrooms,
			&u.AreaSqft, &u.MarketRent, &u.Status, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

func (r *UnitRepository) Update(unit *models.Unit) error {
	ctx := context.Background()

	query := `
		UPDATE units SET
			unit_number = $2, floor = $3, bedrooms = $4, bathrooms = $5,
			area_sqft = $6, market_rent = $7, status = $8, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		unit.ID,
		unit.UnitNumber,
		unit.Floor,
		unit.Bedrooms,
		unit.Bathrooms,
		unit.AreaSqft,
		unit.MarketRent,
		unit.Status,
	)

	return err
}

func (r *UnitRepository) UpdateStatus(id uuid.UUID, status models.UnitStatus) error {
	ctx := context.Background()

	query := `UPDATE units SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}

func (r *UnitRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("unit not found")
	}

	return nil
}
