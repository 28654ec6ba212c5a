package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Requests
// ═══════════════════════════════════════════════════════════════════════════════

type GenerateReportRequest struct {
	ReportType string `query:"reportType" validate:"required"`
	StartDate  string `query:"start_date" validate:"omitempty,iso8601"`
	EndDate    string `query:"end_date" validate:"omitempty,iso8601"`
}

type DateRangeQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,iso8601"`
	EndDate   string `query:"end_date" validate:"omitempty,iso8601"`
}

type CreateSnapshotRequest struct {
	ReportType string  `json:"report_type" validate:"required"`
	StartDate  *string `json:"start_date" validate:"omitempty,iso8601"`
	EndDate    *string `json:"end_date" validate:"omitempty,iso8601"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// Report rows
// ═══════════════════════════════════════════════════════════════════════════════

type TaskTimeSummary struct {
	TaskID         uuid.UUID `json:"task_id"`
	TaskTitle      string    `json:"task_title"`
	TotalTimeHours float64   `json:"total_time_hours"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type WeeklyStatistic struct {
	Week           time.Time `json:"week"`
	TotalTasks     int       `json:"total_tasks"`
	TasksCompleted int       `json:"tasks_completed"`
	TotalHours     float64   `json:"total_hours"`
}

type MonthlyStatistic struct {
	Month          time.Time `json:"month"`
	TotalTasks     int       `json:"total_tasks"`
	TasksCompleted int       `json:"tasks_completed"`
	TotalHours     float64   `json:"total_hours"`
}

type TaskProgress struct {
	TaskID   uuid.UUID `json:"task_id"`
	Title    string    `json:"title"`
	Status   string    `json:"status"`
	Progress int       `json:"progress"`
}

type CalendarEntry struct {
	ID     uuid.UUID  `json:"id"`
	TaskID uuid.UUID  `json:"task_id"`
	Title  string     `json:"title"`
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end"`
}

type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Activity struct {
	ActivityType string    `json:"activity_type"`
	Detail       string    `json:"detail"`
	Timestamp    time.Time `json:"timestamp"`
}

type PerformanceMetrics struct {
	TotalTasks       int     `json:"total_tasks"`
	CompletedTasks   int     `json:"completed_tasks"`
	AverageTimeHours float64 `json:"average_time_hours"`
}

type DeadlineTask struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
	Status  string    `json:"status"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// Snapshots
// ═══════════════════════════════════════════════════════════════════════════════

type SnapshotResponse struct {
	ID          uuid.UUID       `json:"id"`
	ReportType  string          `json:"report_type"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	StoragePath string          `json:"storage_path,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	Data        json.RawMessage `json:"data,omitempty"`
}
