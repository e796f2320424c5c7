package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"pulse/pkg/types"
)

type Attendance struct {
	ID       int64       `json:"id" db:"id"`
	UserID   string      `json:"user_id" db:"user_id"`
	ClockIn  time.Time   `json:"clock_in" db:"clock_in"`
	ClockOut null.Time   `json:"clock_out,omitempty" db:"clock_out"`
	Note     null.String `json:"note,omitempty" db:"note"`

	types.BaseEntity
}
