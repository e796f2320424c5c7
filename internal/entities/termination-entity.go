package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"pulse/pkg/types"
)

type Termination struct {
	ID            int64       `json:"id" db:"id"`
	UserID        string      `json:"user_id" db:"user_id"`
	Reason        string      `json:"reason" db:"reason"`
	Note          null.String `json:"note,omitempty" db:"note"`
	EffectiveDate time.Time   `json:"effective_date" db:"effective_date"`

	types.BaseEntity
}
