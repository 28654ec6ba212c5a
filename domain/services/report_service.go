package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"timeguard/domain/dto"
	"timeguard/domain/models"
)

// ReportService report ทุกชนิดคำนวณจาก task ที่ผู้เรียกเป็น owner หรือ assignee เท่านั้น
type ReportService interface {
	// Generate คืน rows ของ report ตาม reportType (time_summary, task_status, ...)
	Generate(ctx context.Context, userID uuid.UUID, req *dto.GenerateReportRequest) (any, error)
	TaskProgress(ctx context.Context, userID uuid.UUID) ([]dto.TaskProgress, error)
	TaskDistribution(ctx context.Context, userID uuid.UUID) ([]dto.StatusCount, error)
	TimeEntriesCalendar(ctx context.Context, userID uuid.UUID, req *dto.DateRangeQuery) ([]dto.CalendarEntry, error)
	Achievements(ctx context.Context, userID uuid.UUID) ([]dto.Achievement, error)
	ActivityFeed(ctx context.Context, userID uuid.UUID) ([]dto.Activity, error)
	PerformanceMetrics(ctx context.Context, userID uuid.UUID) (*dto.PerformanceMetrics, error)
	// UpcomingDeadlines days <= 0 ใช้ค่า default จาก config
	UpcomingDeadlines(ctx context.Context, userID uuid.UUID, days int) ([]dto.DeadlineTask, error)
}

// ReportSnapshotService บันทึก report ที่ generate แล้วและ export เป็นไฟล์ JSON
type ReportSnapshotService interface {
	CreateSnapshot(ctx context.Context, userID uuid.UUID, req *dto.CreateSnapshotRequest) (*models.ReportSnapshot, error)
	ListSnapshots(ctx context.Context, userID uuid.UUID) ([]*models.ReportSnapshot, error)
	GetSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) (*models.ReportSnapshot, error)
	// DownloadSnapshot คืน reader, content type และชื่อไฟล์
	DownloadSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) (io.ReadCloser, string, string, error)
	DeleteSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) error
}
