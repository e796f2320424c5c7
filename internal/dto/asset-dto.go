package dto

type CreateAssetDTO struct {
	Tag    string  `json:"tag" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Serial *string `json:"serial" validate:"omitempty"`
}

type UpdateAssetDTO struct {
	Name   *string `json:"name" validate:"omitempty"`
	Serial *string `json:"serial" validate:"omitempty"`
	Status *string `json:"status" validate:"omitempty,asset_status"`
}

type AssignAssetDTO struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

type AssetDTO struct {
	ID         int64   `json:"id"`
	Tag        string  `json:"tag"`
	Name       string  `json:"name"`
	Serial     *string `json:"serial,omitempty"`
	Status     string  `json:"status"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}
