package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

// ReportHandler ทุก endpoint ตอบ payload ภายใต้ key "report"
type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Generate GET /reports/generate?reportType=&start_date=&end_date=
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.GenerateReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	report, err := h.reportService.Generate(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Report generation failed", "report_type", req.ReportType, "error", err)
		return utils.HandleError(c, err)
	}

	return reportResponse(c, report)
}

func (h *ReportHandler) TaskProgress(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	report, err := h.reportService.TaskProgress(c.UserContext(), user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

func (h *ReportHandler) TaskDistribution(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	report, err := h.reportService.TaskDistribution(c.UserContext(), user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

func (h *ReportHandler) TimeEntriesCalendar(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.DateRangeQuery
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	report, err := h.reportService.TimeEntriesCalendar(c.UserContext(), user.ID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

func (h *ReportHandler) Achievements(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	report, err := h.reportService.Achievements(c.UserContext(), user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

func (h *ReportHandler) ActivityFeed(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	report, err := h.reportService.ActivityFeed(c.UserContext(), user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

func (h *ReportHandler) PerformanceMetrics(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	report, err := h.reportService.PerformanceMetrics(c.UserContext(), user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

// UpcomingDeadlines ?days=N (ไม่ส่ง = ค่า default)
func (h *ReportHandler) UpcomingDeadlines(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			return utils.HandleError(c, apperrors.Validation("days must be a positive integer"))
		}
	}

	report, err := h.reportService.UpcomingDeadlines(c.UserContext(), user.ID, days)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return reportResponse(c, report)
}

func reportResponse(c *fiber.Ctx, report any) error {
	return utils.SuccessResponse(c, fiber.Map{"report": report})
}
