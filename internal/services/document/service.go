// Package document handles supporting-document ingestion: bytes go to the
// external blob store first; only after that succeeds is the metadata row
// written, so a failed upload leaves no trace.
package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/storage/blob"
	"standsreg/internal/validation"
)

type Service interface {
	// Upload stores the file and records the Document. Owner only.
	Upload(ctx context.Context, actor *models.User, applicationID uint, filename, contentType, kind string, data []byte) (*models.Document, error)

	// List returns an application's documents. Owner or admin.
	List(actor *models.User, applicationID uint) ([]models.Document, error)
}

type service struct {
	apps repositories.ApplicationRepository
	blob blob.Store
}

// NewService wires the document adapter.
func NewService(apps repositories.ApplicationRepository, store blob.Store) Service {
	return &service{apps: apps, blob: store}
}

func (s *service) Upload(ctx context.Context, actor *models.User, applicationID uint, filename, contentType, kind string, data []byte) (*models.Document, error) {
	app, err := s.apps.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID != actor.ID {
		return nil, errs.ErrNotAuthorized
	}

	v := validation.New()
	v.Required("kind", kind)
	v.Check(len(data) > 0, "file", "is empty")
	if err := v.Err(); err != nil {
		return nil, err
	}

	// No DB transaction is open here; the external call can take as long
	// as it takes without holding a connection hostage.
	name := fmt.Sprintf("applications/%d/%s-%s", app.ID, uuid.NewString(), filename)
	url, err := s.blob.Upload(ctx, name, contentType, data)
	if err != nil {
		return nil, errs.ErrUploadFailed
	}

	doc := &models.Document{
		ApplicationID: app.ID,
		Kind:          kind,
		URL:           url,
	}
	entry := models.NewAuditLog(actor.ID, models.ActionDocumentUploaded, app.ID, models.JSON{
		"kind": kind,
		"url":  url,
	})
	if err := s.apps.AddDocument(doc, entry); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) List(actor *models.User, applicationID uint) ([]models.Document, error) {
	app, err := s.apps.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID != actor.ID && actor.Role != models.RoleAdmin {
		return nil, errs.ErrNotAuthorized
	}
	return s.apps.ListDocuments(app.ID)
}
