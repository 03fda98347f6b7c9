package domain

import "time"

type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectPaused     ProjectStatus = "paused"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Project is a construction project owned by a tenant. ProjectCode is the
// human-readable code shown in the portal and must be unique per tenant.
type Project struct {
	ID                int64         `json:"id"`
	TenantID          string        `json:"tenant_id" gorm:"index;uniqueIndex:idx_tenant_project_code"`
	ProjectCode       string        `json:"project_code" gorm:"uniqueIndex:idx_tenant_project_code"`
	Name              string        `json:"name"`
	ConstructionTypes []string      `json:"construction_types,omitempty" gorm:"serializer:json"`
	Status            ProjectStatus `json:"status"`
	Street            string        `json:"street,omitempty"`
	PostalCode        string        `json:"postal_code,omitempty"`
	City              string        `json:"city,omitempty"`
	PlannedStart      time.Time     `json:"planned_start"`
	PlannedEnd        time.Time     `json:"planned_end"`
	ActualEnd         *time.Time    `json:"actual_end,omitempty"`
	ClientName        string        `json:"client_name,omitempty"`
	ClientContact     string        `json:"client_contact,omitempty"`
	ClientPhone       string        `json:"client_phone,omitempty"`
	ClientEmail       string        `json:"client_email,omitempty"`
	ResponsibleUserID int64         `json:"responsible_user_id,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	CreatedBy         int64         `json:"created_by,omitempty"`
	UpdatedBy         int64         `json:"updated_by,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
