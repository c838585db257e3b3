package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	TenantID    *uuid.UUID `json:"tenant_id,omitempty"`
	FileName    string     `json:"file_name"`
	Bucket      string     `json:"bucket"`
	ObjectKey   string     `json:"object_key"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}

func (d *Document) Prepare() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Bucket == "" {
		d.Bucket = "documents"
	}
}
