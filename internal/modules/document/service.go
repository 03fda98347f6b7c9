package document

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
	"bauportal/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	documents DocumentRepositoryInterface
	folders   FolderRepositoryInterface
	storage   Storage
	pub       EventPublisher
	now       func() time.Time
}

func NewService(documents DocumentRepositoryInterface, folders FolderRepositoryInterface, storage Storage, pub EventPublisher) *Service {
	return &Service{
		documents: documents,
		folders:   folders,
		storage:   storage,
		pub:       pub,
		now:       time.Now,
	}
}

// Upload stores the file contents under a fresh storage key and records
// the metadata. Re-uploading a filename that already exists in the folder
// replaces the contents and bumps the version instead of creating a
// second entry.
func (s *Service) Upload(ctx context.Context, tenantID string, projectID, folderID int64, filename string, tags []string, r io.Reader, actorID int64) (*domain.Document, error) {
	if folderID > 0 {
		folder, err := s.folders.GetByID(ctx, tenantID, folderID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, ErrFolderNotFound
		}
	}

	key := uuid.NewString() + filepath.Ext(filename)
	size, err := s.storage.Save(key, r)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		_ = s.storage.Remove(key)
		return nil, ErrEmptyFile
	}

	existing, err := s.documents.FindByName(ctx, tenantID, projectID, folderID, filename)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		oldKey := existing.StorageKey
		err := s.documents.Update(ctx, tenantID, existing.ID, map[string]any{
			"storage_key": key,
			"size":        size,
			"version":     existing.Version + 1,
			"tags":        repository.JSONValue(tags),
			"uploaded_by": actorID,
			"uploaded_at": s.now(),
		})
		if err != nil {
			return nil, err
		}
		_ = s.storage.Remove(oldKey)
		s.publish(tenantID, events.ActionUpdated, existing.ID)
		return s.documents.GetByID(ctx, tenantID, existing.ID)
	}

	d := &domain.Document{
		TenantID:   tenantID,
		ProjectID:  projectID,
		FolderID:   folderID,
		Filename:   filename,
		Tags:       tags,
		Size:       size,
		Version:    1,
		StorageKey: key,
		UploadedBy: actorID,
		UploadedAt: s.now(),
	}
	if err := s.documents.Create(ctx, d); err != nil {
		_ = s.storage.Remove(key)
		return nil, err
	}

	s.publish(tenantID, events.ActionCreated, d.ID)
	return d, nil
}

// Download returns the metadata and an open reader of the current file
// contents. The caller closes the reader.
func (s *Service) Download(ctx context.Context, tenantID string, id int64) (*domain.Document, io.ReadCloser, error) {
	d, err := s.documents.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, ErrNotFound
	}
	rc, err := s.storage.Open(d.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return d, rc, nil
}

func (s *Service) Search(ctx context.Context, tenantID string, projectID int64, term string) ([]domain.Document, error) {
	return s.documents.Search(ctx, tenantID, projectID, term)
}

func (s *Service) Delete(ctx context.Context, tenantID string, id int64) error {
	d, err := s.documents.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrNotFound
	}

	if err := s.documents.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	_ = s.storage.Remove(d.StorageKey)

	s.publish(tenantID, events.ActionDeleted, id)
	return nil
}

func (s *Service) CreateFolder(ctx context.Context, tenantID string, projectID int64, name string, actorID int64) (*domain.Folder, error) {
	f := &domain.Folder{
		TenantID:  tenantID,
		ProjectID: projectID,
		Name:      name,
		CreatedBy: actorID,
		UpdatedBy: actorID,
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) ListFolders(ctx context.Context, tenantID string, projectID int64) ([]domain.Folder, error) {
	return s.folders.ListByProject(ctx, tenantID, projectID)
}

func (s *Service) DeleteFolder(ctx context.Context, tenantID string, id int64) error {
	if err := s.folders.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrFolderNotFound
		}
		return err
	}
	return nil
}

func (s *Service) publish(tenantID, action string, id int64) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.Event{TenantID: tenantID, Entity: "document", Action: action, ID: id})
}
