package document

import (
	"context"
	"io"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
)

type DocumentRepositoryInterface interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Document, error)
	ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.Document, error)
	FindByName(ctx context.Context, tenantID string, projectID, folderID int64, filename string) (*domain.Document, error)
	Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error
	Delete(ctx context.Context, tenantID string, id int64) error
	Search(ctx context.Context, tenantID string, projectID int64, term string) ([]domain.Document, error)
}

type FolderRepositoryInterface interface {
	Create(ctx context.Context, f *domain.Folder) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Folder, error)
	ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.Folder, error)
	Delete(ctx context.Context, tenantID string, id int64) error
}

// Storage abstracts where file contents live. The production
// implementation writes to a local directory.
type Storage interface {
	Save(key string, r io.Reader) (int64, error)
	Open(key string) (io.ReadCloser, error)
	Remove(key string) error
}

type EventPublisher interface {
	Publish(ev events.Event)
}
