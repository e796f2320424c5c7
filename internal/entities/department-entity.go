package entities

import (
	"github.com/aarondl/null/v8"

	"pulse/pkg/types"
)

type Department struct {
	ID       int64       `json:"id" db:"id"`
	Name     string      `json:"name" db:"name"`
	HeadID   null.String `json:"head_id,omitempty" db:"head_id"`
	IsActive bool        `json:"is_active" db:"is_active"`

	types.BaseEntity
	types.SoftDelete
}
