package domain

import "time"

type TenantType string

const (
	TenantCompany    TenantType = "company"
	TenantIndividual TenantType = "individual"
)

// DefaultTenantID is the sentinel scope used for users without an
// assigned tenant.
const DefaultTenantID = "default"

// Tenant ("Mandant") is the isolation boundary: every project, user and
// document belongs to exactly one tenant.
type Tenant struct {
	ID             int64      `json:"id"`
	Slug           string     `json:"slug" gorm:"uniqueIndex"`
	Name           string     `json:"name"`
	Type           TenantType `json:"type"`
	Street         string     `json:"street,omitempty"`
	PostalCode     string     `json:"postal_code,omitempty"`
	City           string     `json:"city,omitempty"`
	ContactPerson  string     `json:"contact_person,omitempty"`
	ContactEmail   string     `json:"contact_email,omitempty"`
	ContactPhone   string     `json:"contact_phone,omitempty"`
	CommercialRegNo string    `json:"commercial_reg_no,omitempty"`
	VATID          string     `json:"vat_id,omitempty"`
	Active         bool       `json:"active"`
	CreatedBy      int64      `json:"created_by,omitempty"`
	UpdatedBy      int64      `json:"updated_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
