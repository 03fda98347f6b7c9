package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
	RolePartner  UserRole = "partner"
	RoleCustomer UserRole = "customer"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID                  int64      `json:"id"`
	TenantID            string     `json:"tenant_id" gorm:"index"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash        string     `json:"-"`
	Company             string     `json:"company,omitempty"`
	Role                UserRole   `json:"role"`
	Status              UserStatus `json:"status"`
	Street              string     `json:"street,omitempty"`
	PostalCode          string     `json:"postal_code,omitempty"`
	City                string     `json:"city,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Mobile              string     `json:"mobile,omitempty"`
	AssignedProjectIDs  []int64    `json:"assigned_project_ids,omitempty" gorm:"serializer:json"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedBy           int64      `json:"created_by,omitempty"`
	UpdatedBy           int64      `json:"updated_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ResolveTenantID returns the scope every query for this user runs under.
// Users without an assigned tenant fall back to the default tenant rather
// than being blocked; that is the documented portal policy.
func ResolveTenantID(u *User) string {
	if u == nil || u.TenantID == "" {
		return DefaultTenantID
	}
	return u.TenantID
}
