package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/storage"
)

type DocumentService struct {
	documentRepo *repositories.DocumentRepository
	propertyRepo *repositories.PropertyRepository
	tenantRepo   *repositories.TenantRepository
	store        *storage.Store
	signer       *storage.Signer
	urlCache     *storage.URLCache
}

func NewDocumentService(
	documentRepo *repositories.DocumentRepository,
	propertyRepo *repositories.PropertyRepository,
	tenantRepo *repositories.TenantRepository,
	store *storage.Store,
	signer *storage.Signer,
	urlCache *storage.URLCache,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		store:        store,
		signer:       signer,
		urlCache:     urlCache,
	}
}

type UploadDocumentRequest struct {
	PropertyID  *string
	TenantID    *string
	FileName    string
	ContentType string
}

// Upload stores the file content and records the document. The stored object
// gets a generated key so colliding file names cannot overwrite each other.
func (s *DocumentService) Upload(ownerID uuid.UUID, req UploadDocumentRequest, content io.Reader) (*models.Document, error) {
	doc := &models.Document{
		OwnerID:     ownerID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
	}

	if req.PropertyID != nil {
		propertyID, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("invalid property_id: %w", err)
		}
		property, err := s.propertyRepo.GetByIDAndOwnerID(propertyID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get property: %w", err)
		}
		if property == nil {
			return nil, ErrNotFound
		}
		doc.PropertyID = &property.ID
	}

	if req.TenantID != nil {
		tenantID, err := uuid.Parse(*req.TenantID)
		if err != nil {
			return nil, fmt.Errorf("invalid tenant_id: %w", err)
		}
		tenant, err := s.tenantRepo.GetByIDAndOwnerID(tenantID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get tenant: %w", err)
		}
		if tenant == nil {
			return nil, ErrNotFound
		}
		doc.TenantID = &tenant.ID
	}

	doc.Prepare()
	doc.ObjectKey = doc.ID.String() + filepath.Ext(req.FileName)

	size, err := s.store.Save(doc.Bucket, doc.ObjectKey, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	doc.SizeBytes = size

	if err := s.documentRepo.Create(doc); err != nil {
		if rerr := s.store.Remove(doc.Bucket, doc.ObjectKey); rerr != nil {
			log.Printf("failed to clean up orphaned object %s/%s: %v", doc.Bucket, doc.ObjectKey, rerr)
		}
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, nil
}

func (s *DocumentService) Get(id, ownerID uuid.UUID) (*models.Document, error) {
	doc, err := s.documentRepo.GetByIDAndOwnerID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *DocumentService) List(ownerID uuid.UUID, filter repositories.DocumentFilter) ([]models.Document, error) {
	return s.documentRepo.ListByOwnerID(ownerID, filter)
}

// SignedToken returns a download token for the owner's document, backed by
// the cache so repeated requests reuse a still-fresh token.
func (s *DocumentService) SignedToken(ctx context.Context, id, ownerID uuid.UUID) (string, error) {
	doc, err := s.Get(id, ownerID)
	if err != nil {
		return "", err
	}
	return s.urlCache.SignedToken(ctx, doc)
}

// OpenByToken resolves a signed token to the document and its content. The
// token itself is the authorization, so no session is required.
func (s *DocumentService) OpenByToken(token string) (*models.Document, io.ReadCloser, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	docID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	doc, err := s.documentRepo.GetByID(docID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get document: %w", err)
	}
	if doc == nil || doc.Bucket != claims.Bucket || doc.ObjectKey != claims.ObjectKey {
		return nil, nil, ErrNotFound
	}

	content, err := s.store.Open(doc.Bucket, doc.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open object: %w", err)
	}

	return doc, content, nil
}

// Delete removes the stored object first, then the record, then drops any
// cached download token.
func (s *DocumentService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	doc, err := s.Get(id, ownerID)
	if err != nil {
		return err
	}

	if err := s.store.Remove(doc.Bucket, doc.ObjectKey); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}

	if err := s.documentRepo.DeleteByIDAndOwnerID(id, ownerID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if err := s.urlCache.Invalidate(ctx, doc.ID.String()); err != nil {
		log.Printf("failed to invalidate cached url for document %s: %v", doc.ID, err)
	}

	return nil
}
