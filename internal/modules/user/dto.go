package user

import "bauportal/internal/repository"

type CreateUserRequest struct {
	FirstName          string   `json:"first_name" binding:"required,min=2"`
	LastName           string   `json:"last_name" binding:"required,min=2"`
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=6"`
	Company            string   `json:"company,omitempty"`
	Role               string   `json:"role" binding:"required,oneof=admin employee partner customer"`
	Street             string   `json:"street,omitempty"`
	PostalCode         string   `json:"postal_code,omitempty"`
	City               string   `json:"city,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Mobile             string   `json:"mobile,omitempty"`
	AssignedProjectIDs []int64  `json:"assigned_project_ids,omitempty"`
}

type UpdateUserRequest struct {
	FirstName          *string  `json:"first_name,omitempty"`
	LastName           *string  `json:"last_name,omitempty"`
	Company            *string  `json:"company,omitempty"`
	Role               *string  `json:"role,omitempty" binding:"omitempty,oneof=admin employee partner customer"`
	Status             *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Street             *string  `json:"street,omitempty"`
	PostalCode         *string  `json:"postal_code,omitempty"`
	City               *string  `json:"city,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Mobile             *string  `json:"mobile,omitempty"`
	AssignedProjectIDs *[]int64 `json:"assigned_project_ids,omitempty"`
}

func (r UpdateUserRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Company != nil {
		fields["company"] = *r.Company
	}
	if r.Role != nil {
		fields["role"] = *r.Role
	}
	if r.Status != nil {
		fields["status"] = *r.Status
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
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Mobile != nil {
		fields["mobile"] = *r.Mobile
	}
	if r.AssignedProjectIDs != nil {
		fields["assigned_project_ids"] = repository.JSONValue(*r.AssignedProjectIDs)
	}
	return fields
}
