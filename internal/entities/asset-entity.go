package entities

import (
	"github.com/aarondl/null/v8"

	"pulse/pkg/types"
)

const (
	AssetStatusInStock  = "in_stock"
	AssetStatusAssigned = "assigned"
	AssetStatusRetired  = "retired"
)

type Asset struct {
	ID         int64       `json:"id" db:"id"`
	Tag        string      `json:"tag" db:"tag"`
	Name       string      `json:"name" db:"name"`
	Serial     null.String `json:"serial,omitempty" db:"serial"`
	Status     string      `json:"status" db:"status"`
	AssignedTo null.String `json:"assigned_to,omitempty" db:"assigned_to"`

	types.BaseEntity
	types.SoftDelete
}
