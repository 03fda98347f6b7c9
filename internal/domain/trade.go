package domain

import "time"

// Trade ("Gewerk") is a catalog entry describing one unit of construction
// work. The catalog is global, not tenant-scoped.
type Trade struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Category             string    `json:"category,omitempty"`
	StandardDurationDays int       `json:"standard_duration_days,omitempty"`
	Dependencies         []int64   `json:"dependencies,omitempty" gorm:"serializer:json"`
	Materials            []string  `json:"materials,omitempty" gorm:"serializer:json"`
	CraftsmenRoles       []string  `json:"craftsmen_roles,omitempty" gorm:"serializer:json"`
	CostMin              float64   `json:"cost_min,omitempty"`
	CostMax              float64   `json:"cost_max,omitempty"`
	CostUnit             string    `json:"cost_unit,omitempty"`
	CreatedBy            int64     `json:"created_by,omitempty"`
	UpdatedBy            int64     `json:"updated_by,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TradeAssignment links a trade to a project within a phase and tracks its
// execution. ProgressPercent is clamped to [0,100] on every write; a
// completed assignment always carries ProgressPercent=100 and ActualEnd.
type TradeAssignment struct {
	ID              int64         `json:"id"`
	TenantID        string        `json:"tenant_id" gorm:"index"`
	ProjectID       int64         `json:"project_id" gorm:"index"`
	TradeID         int64         `json:"trade_id"`
	PhaseID         int64         `json:"phase_id,omitempty"`
	Status          ProjectStatus `json:"status"`
	PlannedStart    *time.Time    `json:"planned_start,omitempty"`
	PlannedEnd      *time.Time    `json:"planned_end,omitempty"`
	ActualStart     *time.Time    `json:"actual_start,omitempty"`
	ActualEnd       *time.Time    `json:"actual_end,omitempty"`
	ProgressPercent int           `json:"progress_percent"`
	Craftsmen       []string      `json:"craftsmen,omitempty" gorm:"serializer:json"`
	Materials       []string      `json:"materials,omitempty" gorm:"serializer:json"`
	PlannedCost     float64       `json:"planned_cost,omitempty"`
	ActualCost      float64       `json:"actual_cost,omitempty"`
	CostUnit        string        `json:"cost_unit,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedBy       int64         `json:"created_by,omitempty"`
	UpdatedBy       int64         `json:"updated_by,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Phase is an ordered stage of a construction project type, grouping one
// or more trades.
type Phase struct {
	ID        int64     `json:"id"`
	TenantID  string    `json:"tenant_id" gorm:"index"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedBy int64     `json:"created_by,omitempty"`
	UpdatedBy int64     `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConstructionProjectType ("Bauvorhabenart") is a tenant-defined template
// associating a set of phases with a kind of construction project.
type ConstructionProjectType struct {
	ID                   int64     `json:"id"`
	TenantID             string    `json:"tenant_id" gorm:"index"`
	Name                 string    `json:"name"`
	Category             string    `json:"category,omitempty"`
	Status               string    `json:"status,omitempty"`
	StandardDurationDays int       `json:"standard_duration_days,omitempty"`
	PhaseIDs             []int64   `json:"phase_ids,omitempty" gorm:"serializer:json"`
	CreatedBy            int64     `json:"created_by,omitempty"`
	UpdatedBy            int64     `json:"updated_by,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
