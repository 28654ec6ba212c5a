package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"timeguard/application/reporting"
	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
)

// ReportOptions ค่า default ของ dashboard endpoints
type ReportOptions struct {
	UpcomingDays      int
	ActivityFeedLimit int
}

type ReportServiceImpl struct {
	taskRepo       repositories.TaskRepository
	friendshipRepo repositories.FriendshipRepository
	opts           ReportOptions
	now            Clock
}

func NewReportService(taskRepo repositories.TaskRepository, friendshipRepo repositories.FriendshipRepository, opts ReportOptions) services.ReportService {
	return NewReportServiceWithClock(taskRepo, friendshipRepo, opts, systemClock)
}

func NewReportServiceWithClock(taskRepo repositories.TaskRepository, friendshipRepo repositories.FriendshipRepository, opts ReportOptions, clock Clock) services.ReportService {
	if opts.UpcomingDays < 1 {
		opts.UpcomingDays = 7
	}
	if opts.ActivityFeedLimit < 1 {
		opts.ActivityFeedLimit = 20
	}
	if clock == nil {
		clock = systemClock
	}
	return &ReportServiceImpl{
		taskRepo:       taskRepo,
		friendshipRepo: friendshipRepo,
		opts:           opts,
		now:            clock,
	}
}

// scopedTasks task ที่ผู้ใช้เป็น owner หรือ assignee พร้อม time entries
func (s *ReportServiceImpl) scopedTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByMemberWithEntries(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load tasks for report", err)
	}
	return tasks, nil
}

func (s *ReportServiceImpl) Generate(ctx context.Context, userID uuid.UUID, req *dto.GenerateReportRequest) (any, error) {
	// ตรวจ input ทั้งหมดก่อน query
	kind, err := reporting.ParseKind(req.ReportType)
	if err != nil {
		return nil, err
	}
	dateRange, err := reporting.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "Generating report", "report_type", kind, "user_id", userID, "tasks", len(tasks))

	switch kind {
	case reporting.KindTimeSummary:
		return reporting.TimeSummary(tasks, dateRange), nil
	case reporting.KindTaskStatus:
		return reporting.StatusCounts(tasks), nil
	case reporting.KindCompletedTasks:
		return reporting.CompletedTasks(tasks, dateRange), nil
	case reporting.KindWeeklyStatistics:
		return reporting.WeeklyStatistics(tasks, s.now()), nil
	case reporting.KindMonthlyStatistics:
		return reporting.MonthlyStatistics(tasks, s.now()), nil
	default:
		return nil, apperrors.Validation("Invalid report type")
	}
}

func (s *ReportServiceImpl) TaskProgress(ctx context.Context, userID uuid.UUID) ([]dto.TaskProgress, error) {
	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reporting.Progress(tasks), nil
}

func (s *ReportServiceImpl) TaskDistribution(ctx context.Context, userID uuid.UUID) ([]dto.StatusCount, error) {
	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reporting.StatusCounts(tasks), nil
}

func (s *ReportServiceImpl) TimeEntriesCalendar(ctx context.Context, userID uuid.UUID, req *dto.DateRangeQuery) ([]dto.CalendarEntry, error) {
	dateRange, err := reporting.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reporting.Calendar(tasks, dateRange), nil
}

func (s *ReportServiceImpl) Achievements(ctx context.Context, userID uuid.UUID) ([]dto.Achievement, error) {
	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reporting.Achievements(tasks), nil
}

func (s *ReportServiceImpl) ActivityFeed(ctx context.Context, userID uuid.UUID) ([]dto.Activity, error) {
	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	sent, err := s.friendshipRepo.ListBySender(ctx, userID, models.FriendshipPending)
	if err != nil {
		return nil, apperrors.Internal("failed to load sent requests", err)
	}
	accepted, err := s.friendshipRepo.ListByReceiver(ctx, userID, models.FriendshipAccepted)
	if err != nil {
		return nil, apperrors.Internal("failed to load accepted requests", err)
	}

	return reporting.ActivityFeed(tasks, sent, accepted, s.opts.ActivityFeedLimit), nil
}

func (s *ReportServiceImpl) PerformanceMetrics(ctx context.Context, userID uuid.UUID) (*dto.PerformanceMetrics, error) {
	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	metrics := reporting.Performance(tasks)
	return &metrics, nil
}

func (s *ReportServiceImpl) UpcomingDeadlines(ctx context.Context, userID uuid.UUID, days int) ([]dto.DeadlineTask, error) {
	if days < 0 {
		return nil, apperrors.Validation("Days must be a positive integer")
	}
	if days == 0 {
		days = s.opts.UpcomingDays
	}

	tasks, err := s.scopedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reporting.UpcomingDeadlines(tasks, s.now(), days), nil
}
