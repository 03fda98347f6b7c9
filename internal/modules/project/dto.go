package project

import (
	"time"

	"bauportal/internal/repository"
)

type CreateProjectRequest struct {
	ProjectCode       string    `json:"project_code" binding:"required,min=2"`
	Name              string    `json:"name" binding:"required,min=2"`
	ConstructionTypes []string  `json:"construction_types,omitempty"`
	Street            string    `json:"street,omitempty"`
	PostalCode        string    `json:"postal_code,omitempty"`
	City              string    `json:"city,omitempty"`
	PlannedStart      time.Time `json:"planned_start" binding:"required"`
	PlannedEnd        time.Time `json:"planned_end" binding:"required"`
	ClientName        string    `json:"client_name,omitempty"`
	ClientContact     string    `json:"client_contact,omitempty"`
	ClientPhone       string    `json:"client_phone,omitempty"`
	ClientEmail       string    `json:"client_email,omitempty" binding:"omitempty,email"`
	ResponsibleUserID int64     `json:"responsible_user_id,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

// UpdateProjectRequest carries only the fields to change. Status is not
// part of it; status moves through the dedicated transition endpoint.
type UpdateProjectRequest struct {
	ProjectCode       *string    `json:"project_code,omitempty"`
	Name              *string    `json:"name,omitempty"`
	ConstructionTypes *[]string  `json:"construction_types,omitempty"`
	Street            *string    `json:"street,omitempty"`
	PostalCode        *string    `json:"postal_code,omitempty"`
	City              *string    `json:"city,omitempty"`
	PlannedStart      *time.Time `json:"planned_start,omitempty"`
	PlannedEnd        *time.Time `json:"planned_end,omitempty"`
	ClientName        *string    `json:"client_name,omitempty"`
	ClientContact     *string    `json:"client_contact,omitempty"`
	ClientPhone       *string    `json:"client_phone,omitempty"`
	ClientEmail       *string    `json:"client_email,omitempty" binding:"omitempty,email"`
	ResponsibleUserID *int64     `json:"responsible_user_id,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

func (r UpdateProjectRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.ProjectCode != nil {
		fields["project_code"] = *r.ProjectCode
	}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.ConstructionTypes != nil {
		fields["construction_types"] = repository.JSONValue(*r.ConstructionTypes)
	}
	if r.Street != nil {
		fields["street"] = *r.Street
	}
	if r.PostalCode != nil {
		fields["postal_code"] = *r.PostalCode
	}
	if r.City != nil {
		fields["city"] = *r.City
	}
	if r.PlannedStart != nil {
		fields["planned_start"] = *r.PlannedStart
	}
	if r.PlannedEnd != nil {
		fields["planned_end"] = *r.PlannedEnd
	}
	if r.ClientName != nil {
		fields["client_name"] = *r.ClientName
	}
	if r.ClientContact != nil {
		fields["client_contact"] = *r.ClientContact
	}
	if r.ClientPhone != nil {
		fields["client_phone"] = *r.ClientPhone
	}
	if r.ClientEmail != nil {
		fields["client_email"] = *r.ClientEmail
	}
	if r.ResponsibleUserID != nil {
		fields["responsible_user_id"] = *r.ResponsibleUserID
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planned in_progress completed paused cancelled"`
}

type CreateAssignmentRequest struct {
	TradeID         int64      `json:"trade_id" binding:"required"`
	PhaseID         int64      `json:"phase_id,omitempty"`
	Status          string     `json:"status,omitempty" binding:"omitempty,oneof=planned in_progress completed paused cancelled"`
	PlannedStart    *time.Time `json:"planned_start,omitempty"`
	PlannedEnd      *time.Time `json:"planned_end,omitempty"`
	ProgressPercent int        `json:"progress_percent,omitempty"`
	Craftsmen       []string   `json:"craftsmen,omitempty"`
	Materials       []string   `json:"materials,omitempty"`
	PlannedCost     float64    `json:"planned_cost,omitempty"`
	CostUnit        string     `json:"cost_unit,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

type UpdateAssignmentRequest struct {
	PhaseID         *int64     `json:"phase_id,omitempty"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=planned in_progress completed paused cancelled"`
	PlannedStart    *time.Time `json:"planned_start,omitempty"`
	PlannedEnd      *time.Time `json:"planned_end,omitempty"`
	ActualStart     *time.Time `json:"actual_start,omitempty"`
	ActualEnd       *time.Time `json:"actual_end,omitempty"`
	ProgressPercent *int       `json:"progress_percent,omitempty"`
	Craftsmen       *[]string  `json:"craftsmen,omitempty"`
	Materials       *[]string  `json:"materials,omitempty"`
	PlannedCost     *float64   `json:"planned_cost,omitempty"`
	ActualCost      *float64   `json:"actual_cost,omitempty"`
	CostUnit        *string    `json:"cost_unit,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

func (r UpdateAssignmentRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.PhaseID != nil {
		fields["phase_id"] = *r.PhaseID
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.PlannedStart != nil {
		fields["planned_start"] = *r.PlannedStart
	}
	if r.PlannedEnd != nil {
		fields["planned_end"] = *r.PlannedEnd
	}
	if r.ActualStart != nil {
		fields["actual_start"] = *r.ActualStart
	}
	if r.ActualEnd != nil {
		fields["actual_end"] = *r.ActualEnd
	}
	if r.ProgressPercent != nil {
		fields["progress_percent"] = *r.ProgressPercent
	}
	if r.Craftsmen != nil {
		fields["craftsmen"] = repository.JSONValue(*r.Craftsmen)
	}
	if r.Materials != nil {
		fields["materials"] = repository.JSONValue(*r.Materials)
	}
	if r.PlannedCost != nil {
		fields["planned_cost"] = *r.PlannedCost
	}
	if r.ActualCost != nil {
		fields["actual_cost"] = *r.ActualCost
	}
	if r.CostUnit != nil {
		fields["cost_unit"] = *r.CostUnit
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}

// ProjectProgress is the payload of the progress endpoints.
type ProjectProgress struct {
	ProjectID       int64  `json:"project_id"`
	ProjectCode     string `json:"project_code"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	ProgressPercent int    `json:"progress_percent"`
	TradeCount      int    `json:"trade_count"`
}
