package dto

type CreateUserDTO struct {
	FirstName    string  `json:"first_name" validate:"required"`
	LastName     *string `json:"last_name" validate:"omitempty"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=8"`
	Role         string  `json:"role" validate:"required,role"`
	Title        *string `json:"title" validate:"omitempty"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty"`
	ReportsTo    *string `json:"reports_to" validate:"omitempty,uuid4"`
}

type UpdateUserDTO struct {
	FirstName    *string `json:"first_name" validate:"omitempty"`
	LastName     *string `json:"last_name" validate:"omitempty"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password" validate:"omitempty,min=8"`
	Role         *string `json:"role" validate:"omitempty,role"`
	Title        *string `json:"title" validate:"omitempty"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty"`
	ReportsTo    *string `json:"reports_to" validate:"omitempty,uuid4"`
	IsActive     *bool   `json:"is_active" validate:"omitempty"`
}

type UserDTO struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       *string `json:"last_name,omitempty"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	RoleLabel      string  `json:"role_label"`
	Title          *string `json:"title,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	ReportsTo      *string `json:"reports_to,omitempty"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}
