package serviceimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"timeguard/application/reporting"
	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

const snapshotContentType = "application/json"

type ReportSnapshotServiceImpl struct {
	snapshotRepo repositories.ReportSnapshotRepository
	reports      services.ReportService
	storage      ports.StoragePort // nil = ไม่ export ไฟล์
	publisher    ports.EventPublisherPort
	now          Clock
}

func NewReportSnapshotService(
	snapshotRepo repositories.ReportSnapshotRepository,
	reports services.ReportService,
	storage ports.StoragePort,
	publisher ports.EventPublisherPort,
) services.ReportSnapshotService {
	return &ReportSnapshotServiceImpl{
		snapshotRepo: snapshotRepo,
		reports:      reports,
		storage:      storage,
		publisher:    publisher,
		now:          systemClock,
	}
}

// snapshotExport เนื้อหาไฟล์ JSON ที่ export
type snapshotExport struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	ReportType  string          `json:"report_type"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	GeneratedAt time.Time       `json:"generated_at"`
	Data        json.RawMessage `json:"data"`
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// snapshotObjectPath reports/<user_id>/<slug>.json
func snapshotObjectPath(userID uuid.UUID, kind string, generatedAt time.Time) string {
	name := slug.Make(fmt.Sprintf("%s %s %s", kind, generatedAt.Format("2006-01-02 150405"), utils.GenerateRandomString(6)))
	return path.Join("reports", userID.String(), name+".json")
}

func (s *ReportSnapshotServiceImpl) loadOwned(ctx context.Context, userID, snapshotID uuid.UUID) (*models.ReportSnapshot, error) {
	snapshot, err := s.snapshotRepo.GetByID(ctx, snapshotID)
	if err != nil {
		return nil, apperrors.Internal("failed to load snapshot", err)
	}
	if snapshot == nil {
		return nil, apperrors.NotFound("Report snapshot not found")
	}
	if snapshot.UserID != userID {
		return nil, apperrors.Authorization("You are not allowed to access this snapshot")
	}
	return snapshot, nil
}

func (s *ReportSnapshotServiceImpl) CreateSnapshot(ctx context.Context, userID uuid.UUID, req *dto.CreateSnapshotRequest) (*models.ReportSnapshot, error) {
	startRaw, endRaw := derefString(req.StartDate), derefString(req.EndDate)
	dateRange, err := reporting.ParseDateRange(startRaw, endRaw)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.Generate(ctx, userID, &dto.GenerateReportRequest{
		ReportType: req.ReportType,
		StartDate:  startRaw,
		EndDate:    endRaw,
	})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, apperrors.Internal("failed to encode report", err)
	}

	snapshot := &models.ReportSnapshot{
		UserID:      userID,
		ReportType:  req.ReportType,
		StartDate:   dateRange.Start,
		EndDate:     dateRange.End,
		Data:        string(data),
		GeneratedAt: s.now(),
	}
	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, apperrors.Internal("failed to save snapshot", err)
	}

	// export ไม่สำเร็จไม่ทำให้ request fail; storage_path จะว่าง
	if objectPath, err := s.export(ctx, snapshot); err != nil {
		logger.WarnContext(ctx, "Failed to export snapshot", "snapshot_id", snapshot.ID, "error", err)
	} else if objectPath != "" {
		snapshot.StoragePath = objectPath
	}

	logger.InfoContext(ctx, "Report snapshot created",
		"snapshot_id", snapshot.ID,
		"report_type", snapshot.ReportType,
		"storage_path", snapshot.StoragePath,
	)
	publishEvent(ctx, s.publisher, ports.EventSnapshotCreated, userID, snapshot.ID, map[string]any{
		"report_type": snapshot.ReportType,
	})
	return snapshot, nil
}

func (s *ReportSnapshotServiceImpl) export(ctx context.Context, snapshot *models.ReportSnapshot) (string, error) {
	if s.storage == nil {
		return "", nil
	}

	body, err := json.MarshalIndent(snapshotExport{
		ID:          snapshot.ID,
		UserID:      snapshot.UserID,
		ReportType:  snapshot.ReportType,
		StartDate:   snapshot.StartDate,
		EndDate:     snapshot.EndDate,
		GeneratedAt: snapshot.GeneratedAt,
		Data:        json.RawMessage(snapshot.Data),
	}, "", "  ")
	if err != nil {
		return "", err
	}

	objectPath := snapshotObjectPath(snapshot.UserID, snapshot.ReportType, snapshot.GeneratedAt)
	if _, err := s.storage.UploadFile(ctx, bytes.NewReader(body), int64(len(body)), objectPath, snapshotContentType); err != nil {
		return "", err
	}
	if err := s.snapshotRepo.UpdateStoragePath(ctx, snapshot.ID, objectPath); err != nil {
		// ลบไฟล์ที่อัปโหลดไปแล้วเพื่อไม่ให้ค้าง
		_ = s.storage.DeleteFile(ctx, objectPath)
		return "", err
	}
	return objectPath, nil
}

func (s *ReportSnapshotServiceImpl) ListSnapshots(ctx context.Context, userID uuid.UUID) ([]*models.ReportSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list snapshots", err)
	}
	return snapshots, nil
}

func (s *ReportSnapshotServiceImpl) GetSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) (*models.ReportSnapshot, error) {
	return s.loadOwned(ctx, userID, snapshotID)
}

func (s *ReportSnapshotServiceImpl) DownloadSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) (io.ReadCloser, string, string, error) {
	snapshot, err := s.loadOwned(ctx, userID, snapshotID)
	if err != nil {
		return nil, "", "", err
	}
	if snapshot.StoragePath == "" || s.storage == nil {
		return nil, "", "", apperrors.NotFound("Snapshot has not been exported")
	}

	reader, contentType, err := s.storage.GetFileContent(ctx, snapshot.StoragePath)
	if err != nil {
		if errors.Is(err, ports.ErrFileNotFound) {
			return nil, "", "", apperrors.NotFound("Exported snapshot file not found")
		}
		return nil, "", "", apperrors.Internal("failed to read exported snapshot", err)
	}
	if contentType == "" {
		contentType = snapshotContentType
	}
	return reader, contentType, path.Base(snapshot.StoragePath), nil
}

func (s *ReportSnapshotServiceImpl) DeleteSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) error {
	snapshot, err := s.loadOwned(ctx, userID, snapshotID)
	if err != nil {
		return err
	}

	if err := s.snapshotRepo.Delete(ctx, snapshotID); err != nil {
		return apperrors.Internal("failed to delete snapshot", err)
	}

	if snapshot.StoragePath != "" && s.storage != nil {
		if err := s.storage.DeleteFile(ctx, snapshot.StoragePath); err != nil {
			logger.WarnContext(ctx, "Failed to delete exported snapshot", "snapshot_id", snapshotID, "path", snapshot.StoragePath, "error", err)
		}
	}

	logger.InfoContext(ctx, "Report snapshot deleted", "snapshot_id", snapshotID, "user_id", userID)
	return nil
}
