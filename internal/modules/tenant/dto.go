package tenant

type CreateTenantRequest struct {
	Slug            string `json:"slug" binding:"required,min=2"`
	Name            string `json:"name" binding:"required,min=2"`
	Type            string `json:"type" binding:"required,oneof=company individual"`
	Street          string `json:"street,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	City            string `json:"city,omitempty"`
	ContactPerson   string `json:"contact_person,omitempty"`
	ContactEmail    string `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	CommercialRegNo string `json:"commercial_reg_no,omitempty"`
	VATID           string `json:"vat_id,omitempty"`
}

// UpdateTenantRequest carries only the fields to change; nil pointers are
// left untouched.
type UpdateTenantRequest struct {
	Name            *string `json:"name,omitempty"`
	Type            *string `json:"type,omitempty" binding:"omitempty,oneof=company individual"`
	Street          *string `json:"street,omitempty"`
	PostalCode      *string `json:"postal_code,omitempty"`
	City            *string `json:"city,omitempty"`
	ContactPerson   *string `json:"contact_person,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	CommercialRegNo *string `json:"commercial_reg_no,omitempty"`
	VATID           *string `json:"vat_id,omitempty"`
}

func (r UpdateTenantRequest) fields() map[string]any {
	fields := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	set("name", r.Name)
	set("type", r.Type)
	set("street", r.Street)
	set("postal_code", r.PostalCode)
	set("city", r.City)
	set("contact_person", r.ContactPerson)
	set("contact_email", r.ContactEmail)
	set("contact_phone", r.ContactPhone)
	set("commercial_reg_no", r.CommercialRegNo)
	set("vat_id", r.VATID)
	return fields
}
