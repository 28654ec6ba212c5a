package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTimeEntryRequest struct {
	TaskID    string  `json:"task_id" validate:"required,uuid"`
	StartTime string  `json:"start_time" validate:"required,iso8601"`
	EndTime   *string `json:"end_time" validate:"omitempty,iso8601"`
}

type UpdateTimeEntryRequest struct {
	StartTime *string `json:"start_time" validate:"omitempty,iso8601"`
	EndTime   *string `json:"end_time" validate:"omitempty,iso8601"`
}

type TimeEntryResponse struct {
	ID        uuid.UUID  `json:"id"`
	TaskID    uuid.UUID  `json:"task_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type TotalTimeResponse struct {
	TaskID           uuid.UUID `json:"task_id"`
	TotalTimeSeconds int64     `json:"total_time_seconds"`
}
