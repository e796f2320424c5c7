package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"pulse/pkg/types"
)

type Transfer struct {
	ID               int64       `json:"id" db:"id"`
	UserID           string      `json:"user_id" db:"user_id"`
	FromDepartmentID *int64      `json:"from_department_id" db:"from_department_id"`
	ToDepartmentID   int64       `json:"to_department_id" db:"to_department_id"`
	EffectiveDate    time.Time   `json:"effective_date" db:"effective_date"`
	Note             null.String `json:"note,omitempty" db:"note"`

	types.BaseEntity
}
