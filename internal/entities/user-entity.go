package entities

import (
	"github.com/aarondl/null/v8"

	"pulse/internal/hierarchy"
	"pulse/pkg/types"
)

type User struct {
	ID        string         `json:"id" db:"id"`
	FirstName string         `json:"first_name" db:"first_name"`
	LastName  null.String    `json:"last_name" db:"last_name"`
	Email     string         `json:"email" db:"email"`
	Role      hierarchy.Role `json:"role" db:"role"`

	Password string `json:"-" db:"password"`

	Title        null.String `json:"title,omitempty" db:"title"`
	DepartmentID *int64      `json:"department_id" db:"department_id"`

	// ReportsTo points at the manager's user id; the graph over active
	// users forms a forest.
	ReportsTo null.String `json:"reports_to,omitempty" db:"reports_to"`

	IsActive           bool `json:"is_active" db:"is_active"`
	MustChangePassword bool `json:"must_change_password" db:"must_change_password"`

	DepartmentName null.String `json:"department_name,omitempty" db:"department_name"`

	types.BaseEntity
	types.SoftDelete
}

func (u *User) FullName() string {
	if u.LastName.Valid && u.LastName.String != "" {
		return u.FirstName + " " + u.LastName.String
	}
	return u.FirstName
}

// ToMember maps the entity onto the pure hierarchy input.
func (u *User) ToMember() hierarchy.Member {
	return hierarchy.Member{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName.String,
		Email:     u.Email,
		Title:     u.Title.String,
		Role:      u.Role,
		ReportsTo: u.ReportsTo.String,
	}
}
