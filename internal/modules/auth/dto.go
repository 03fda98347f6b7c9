package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TwoFactorRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type TwoFactorConfirmDTO struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type PasswordResetRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmDTO struct {
	OobCode     string `json:"oob_code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UserPublic struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	TenantID  string `json:"tenant_id"`
}
