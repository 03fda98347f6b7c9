package catalog

import "bauportal/internal/repository"

type CreateTradeRequest struct {
	Name                 string   `json:"name" binding:"required,min=2"`
	Category             string   `json:"category,omitempty"`
	StandardDurationDays int      `json:"standard_duration_days,omitempty"`
	Dependencies         []int64  `json:"dependencies,omitempty"`
	Materials            []string `json:"materials,omitempty"`
	CraftsmenRoles       []string `json:"craftsmen_roles,omitempty"`
	CostMin              float64  `json:"cost_min,omitempty"`
	CostMax              float64  `json:"cost_max,omitempty"`
	CostUnit             string   `json:"cost_unit,omitempty"`
}

type UpdateTradeRequest struct {
	Name                 *string   `json:"name,omitempty"`
	Category             *string   `json:"category,omitempty"`
	StandardDurationDays *int      `json:"standard_duration_days,omitempty"`
	Dependencies         *[]int64  `json:"dependencies,omitempty"`
	Materials            *[]string `json:"materials,omitempty"`
	CraftsmenRoles       *[]string `json:"craftsmen_roles,omitempty"`
	CostMin              *float64  `json:"cost_min,omitempty"`
	CostMax              *float64  `json:"cost_max,omitempty"`
	CostUnit             *string   `json:"cost_unit,omitempty"`
}

func (r UpdateTradeRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.StandardDurationDays != nil {
		fields["standard_duration_days"] = *r.StandardDurationDays
	}
	if r.Dependencies != nil {
		fields["dependencies"] = repository.JSONValue(*r.Dependencies)
	}
	if r.Materials != nil {
		fields["materials"] = repository.JSONValue(*r.Materials)
	}
	if r.CraftsmenRoles != nil {
		fields["craftsmen_roles"] = repository.JSONValue(*r.CraftsmenRoles)
	}
	if r.CostMin != nil {
		fields["cost_min"] = *r.CostMin
	}
	if r.CostMax != nil {
		fields["cost_max"] = *r.CostMax
	}
	if r.CostUnit != nil {
		fields["cost_unit"] = *r.CostUnit
	}
	return fields
}

type CreatePhaseRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	SortOrder int    `json:"sort_order,omitempty"`
}

type UpdatePhaseRequest struct {
	Name      *string `json:"name,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

func (r UpdatePhaseRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.SortOrder != nil {
		fields["sort_order"] = *r.SortOrder
	}
	return fields
}

type CreateProjectTypeRequest struct {
	Name                 string  `json:"name" binding:"required,min=2"`
	Category             string  `json:"category,omitempty"`
	Status               string  `json:"status,omitempty"`
	StandardDurationDays int     `json:"standard_duration_days,omitempty"`
	PhaseIDs             []int64 `json:"phase_ids,omitempty"`
}

type UpdateProjectTypeRequest struct {
	Name                 *string  `json:"name,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Status               *string  `json:"status,omitempty"`
	StandardDurationDays *int     `json:"standard_duration_days,omitempty"`
	PhaseIDs             *[]int64 `json:"phase_ids,omitempty"`
}

func (r UpdateProjectTypeRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.StandardDurationDays != nil {
		fields["standard_duration_days"] = *r.StandardDurationDays
	}
	if r.PhaseIDs != nil {
		fields["phase_ids"] = repository.JSONValue(*r.PhaseIDs)
	}
	return fields
}
