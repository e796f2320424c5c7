package dto

type CreateDepartmentDTO struct {
	Name   string  `json:"name" validate:"required"`
	HeadID *string `json:"head_id" validate:"omitempty,uuid4"`
}

type UpdateDepartmentDTO struct {
	Name     *string `json:"name" validate:"omitempty"`
	HeadID   *string `json:"head_id" validate:"omitempty,uuid4"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

type DepartmentDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	HeadID    *string `json:"head_id,omitempty"`
	IsActive  bool    `json:"is_active"`
	Headcount uint64  `json:"headcount"`
}
