package repository

// RegisterOptions is the body of POST /auth/register.
type RegisterOptions struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// LoginOptions is the body of POST /auth/login.
type LoginOptions struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileOptions is the body of PUT /auth/profile.
type UpdateProfileOptions struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ChangePasswordOptions is the body of PUT /auth/change-password.
type ChangePasswordOptions struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ResetPasswordOptions is the body of POST /auth/reset-password.
type ResetPasswordOptions struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
