package domain

import "time"

// Folder is a flat namespace for documents within a project.
type Folder struct {
	ID        int64     `json:"id"`
	TenantID  string    `json:"tenant_id" gorm:"index"`
	ProjectID int64     `json:"project_id" gorm:"index"`
	Name      string    `json:"name"`
	CreatedBy int64     `json:"created_by,omitempty"`
	UpdatedBy int64     `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document holds the metadata of an uploaded file. StorageKey is the name
// of the file on disk, never exposed to clients.
type Document struct {
	ID         int64     `json:"id"`
	TenantID   string    `json:"tenant_id" gorm:"index"`
	ProjectID  int64     `json:"project_id" gorm:"index"`
	FolderID   int64     `json:"folder_id,omitempty"`
	Filename   string    `json:"filename"`
	Tags       []string  `json:"tags,omitempty" gorm:"serializer:json"`
	Size       int64     `json:"size"`
	Version    int       `json:"version"`
	StorageKey string    `json:"-"`
	UploadedBy int64     `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
