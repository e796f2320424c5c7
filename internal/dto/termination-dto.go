package dto

type CreateTerminationDTO struct {
	UserID        string  `json:"user_id" validate:"required,uuid4"`
	Reason        string  `json:"reason" validate:"required"`
	EffectiveDate string  `json:"effective_date" validate:"required,datetime=2006-01-02"`
	Note          *string `json:"note" validate:"omitempty,max=1000"`
}

type TerminationDTO struct {
	ID            int64   `json:"id"`
	UserID        string  `json:"user_id"`
	Reason        string  `json:"reason"`
	EffectiveDate string  `json:"effective_date"`
	Note          *string `json:"note,omitempty"`
}
