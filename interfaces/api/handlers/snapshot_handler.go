package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

type SnapshotHandler struct {
	snapshotService services.ReportSnapshotService
}

func NewSnapshotHandler(snapshotService services.ReportSnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

func (h *SnapshotHandler) CreateSnapshot(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.CreateSnapshotRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	snapshot, err := h.snapshotService.CreateSnapshot(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Snapshot creation failed", "report_type", req.ReportType, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{
		"message":  "Report snapshot created",
		"snapshot": dto.SnapshotToResponse(snapshot, true),
	})
}

func (h *SnapshotHandler) ListSnapshots(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	snapshots, err := h.snapshotService.ListSnapshots(c.UserContext(), user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	resp := make([]*dto.SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		resp = append(resp, dto.SnapshotToResponse(s, false))
	}

	return utils.SuccessResponse(c, fiber.Map{"snapshots": resp})
}

func (h *SnapshotHandler) GetSnapshot(c *fiber.Ctx) error {
	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	snapshotID, ok, err := parseUUIDParam(c, "id", "snapshot")
	if !ok {
		return err
	}

	snapshot, err := h.snapshotService.GetSnapshot(c.UserContext(), user.ID, snapshotID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"snapshot": dto.SnapshotToResponse(snapshot, true)})
}

// DownloadSnapshot stream ไฟล์ JSON ที่ export ไว้จาก storage
func (h *SnapshotHandler) DownloadSnapshot(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	snapshotID, ok, err := parseUUIDParam(c, "id", "snapshot")
	if !ok {
		return err
	}

	reader, contentType, filename, err := h.snapshotService.DownloadSnapshot(ctx, user.ID, snapshotID)
	if err != nil {
		logger.WarnContext(ctx, "Snapshot download failed", "snapshot_id", snapshotID, "error", err)
		return utils.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	// fasthttp ปิด reader ให้หลังส่งเสร็จ
	return c.SendStream(reader)
}

func (h *SnapshotHandler) DeleteSnapshot(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	snapshotID, ok, err := parseUUIDParam(c, "id", "snapshot")
	if !ok {
		return err
	}

	if err := h.snapshotService.DeleteSnapshot(ctx, user.ID, snapshotID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.MessageResponse(c, "Report snapshot deleted successfully")
}
