package dto

type ClockInDTO struct {
	Note *string `json:"note" validate:"omitempty,max=500"`
}

type AttendanceDTO struct {
	ID       int64   `json:"id"`
	UserID   string  `json:"user_id"`
	ClockIn  string  `json:"clock_in"`
	ClockOut *string `json:"clock_out,omitempty"`
	Note     *string `json:"note,omitempty"`
}
