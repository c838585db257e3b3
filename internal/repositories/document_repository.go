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

type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// DocumentFilter narrows List results. Zero values mean "no filter".
type DocumentFilter struct {
	PropertyID uuid.UUID
	TenantID   uuid.UUID
}

const documentColumns = `id, owner_id, property_id, tenant_id, file_name, bucket, object_key, content_type, size_bytes, uploaded_at`

func (r *DocumentRepository) Create(doc *models.Document) error {
	ctx := context.Background()

	doc.Prepare()

	query := `
		INSERT INTO documents (id, owner_id, property_id, tenant_id, file_name, bucket, object_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		doc.ID,
		doc.OwnerID,
		doc.PropertyID,
		doc.TenantID,
		doc.FileName,
		doc.Bucket,
		doc.ObjectKey,
		doc.ContentType,
		doc.SizeBytes,
	)

	return err
}

func (r *DocumentRepository) GetByIDAndOwnerID(id, ownerID uuid.UUID) (*models.Document, error) {
	ctx := context.Background()

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND owner_id = $2`

	var d models.Document
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&d.ID, &d.OwnerID, &d.PropertyID, &d.TenantID, &d.FileName,
		&d.Bucket, &d.ObjectKey, &d.ContentType, &d.SizeBytes, &d.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &d, nil
}

// GetByID resolves a document without ownership scoping. Used by the
// token-authenticated download path where the signed token is the authority.
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	ctx := context.Background()

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	var d models.Document
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.OwnerID, &d.PropertyID, &d.TenantID, &d.FileName,
		&d.Bucket, &d.ObjectKey, &d.ContentType, &d.SizeBytes, &d.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &d, nil
}

func (r *DocumentRepository) ListByOwnerID(ownerID uuid.UUID, filter DocumentFilter) ([]models.Document, error) {
	ctx := context.Background()

	query := `SELECT ` + documentColumns + ` FROM documents WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filter.PropertyID != uuid.Nil {
		args = append(args, filter.PropertyID)
		query += fmt.Sprintf(" AND property_id = $%d", len(args))
	}
	if filter.TenantID != uuid.Nil {
		args = append(args, filter.TenantID)
		query += fmt.Sprintf(" AND tenant_id = $%d", len(args))
	}

	query += " ORDER BY uploaded_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []models.Document
	for rows.Next() {
		var d models.Document
		err := rows.Scan(
			&d.ID, &d.OwnerID, &d.PropertyID, &d.TenantID, &d.FileName,
			&d.Bucket, &d.ObjectKey, &d.ContentType, &d.SizeBytes, &d.UploadedAt,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}

	return documents, rows.Err()
}

func (r *DocumentRepository) DeleteByIDAndOwnerID(id, ownerID uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("document not found or access denied")
	}

	return nil
}
