package user

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Email string `json:"email" binding:"required" validate:"required,email"`
}

// UpdateUserRequest applies only the fields that are present.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
