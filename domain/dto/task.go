package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=255"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Priority    string  `json:"priority" validate:"required,oneof=Low Medium High"`
	Status      string  `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
	DueDate     string  `json:"due_date" validate:"required,iso8601"`
	AssigneeID  *string `json:"assignee_id" validate:"omitempty,uuid"`
}

// UpdateTaskRequest partial update; nil = ไม่เปลี่ยน
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status      *string `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	DueDate     *string `json:"due_date" validate:"omitempty,iso8601"`
	AssigneeID  *string `json:"assignee_id" validate:"omitempty,uuid"`
}

type TaskIDRequest struct {
	TaskID string `json:"task_id" validate:"required,uuid"`
}

type TaskResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	DueDate     *time.Time   `json:"due_date"`
	UserID      uuid.UUID    `json:"user_id"`
	AssigneeID  uuid.UUID    `json:"assignee_id"`
	Owner       *UserSummary `json:"owner,omitempty"`
	Assignee    *UserSummary `json:"assignee,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
