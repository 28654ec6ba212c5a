package serviceimpl

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeguard/application/reporting"
	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/infrastructure/storage"
	"timeguard/pkg/apperrors"
)

func TestReportsAreScopedToMember(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	mine := f.createTask(t, alice, "Mine", f.clock.Now().Add(24*time.Hour))
	f.createTask(t, bob, "Not mine", f.clock.Now().Add(24*time.Hour))
	reports := f.reportService()

	rows, err := reports.Generate(f.ctx, alice.ID, &dto.GenerateReportRequest{ReportType: string(reporting.KindTimeSummary)})
	require.NoError(t, err)
	summary := rows.([]dto.TaskTimeSummary)
	require.Len(t, summary, 1)
	assert.Equal(t, mine.ID, summary[0].TaskID)

	deadlines, err := reports.UpcomingDeadlines(f.ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, deadlines, 1)
	assert.Equal(t, "Mine", deadlines[0].Title)

	progress, err := reports.TaskProgress(f.ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, "Not mine", progress[0].Title)
}

func TestGenerateRejectsBadInputBeforeQuerying(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	reports := f.reportService()

	_, err := reports.Generate(f.ctx, alice.ID, &dto.GenerateReportRequest{ReportType: "everything"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = reports.Generate(f.ctx, alice.ID, &dto.GenerateReportRequest{
		ReportType: string(reporting.KindTimeSummary),
		StartDate:  "2026-10-10",
		EndDate:    "2026-10-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = reports.UpcomingDeadlines(f.ctx, alice.ID, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestWeeklyStatisticsEmptyIsNotAnError(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")

	rows, err := f.reportService().Generate(f.ctx, alice.ID, &dto.GenerateReportRequest{ReportType: string(reporting.KindWeeklyStatistics)})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestActivityFeedIncludesFriendships(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	carol := f.createUser(t, "Carol", "carol@example.com")
	friends := f.friendshipService()

	f.createTask(t, alice, "Write docs", f.clock.Now())
	_, err := friends.SendRequest(f.ctx, alice.ID, bob.Email)
	require.NoError(t, err)
	incoming, err := friends.SendRequest(f.ctx, carol.ID, alice.Email)
	require.NoError(t, err)
	_, err = friends.Respond(f.ctx, alice.ID, incoming.ID, dto.FriendActionAccept)
	require.NoError(t, err)

	feed, err := f.reportService().ActivityFeed(f.ctx, alice.ID)
	require.NoError(t, err)

	kinds := map[string]string{}
	for _, a := range feed {
		kinds[a.ActivityType] = a.Detail
	}
	assert.Equal(t, "Write docs", kinds[reporting.ActivityTaskCreated])
	assert.Equal(t, "Bob (bob@example.com)", kinds[reporting.ActivityFriendRequested])
	assert.Equal(t, "Carol (carol@example.com)", kinds[reporting.ActivityFriendAccepted])
}

func TestReportSnapshotLifecycle(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	_, err := f.taskService().UpdateTask(f.ctx, alice.ID, task.ID, &dto.UpdateTaskRequest{Status: strPtr(models.TaskStatusCompleted)})
	require.NoError(t, err)

	basePath := t.TempDir()
	store, err := storage.NewLocalStorage(storage.LocalStorageConfig{BasePath: basePath, BaseURL: "http://localhost:8080/exports"})
	require.NoError(t, err)
	svc := NewReportSnapshotService(f.snapshots, f.reportService(), store, f.events)

	snapshot, err := svc.CreateSnapshot(f.ctx, alice.ID, &dto.CreateSnapshotRequest{ReportType: string(reporting.KindTaskStatus)})
	require.NoError(t, err)
	require.NotEmpty(t, snapshot.StoragePath)
	assert.True(t, strings.HasPrefix(snapshot.StoragePath, "reports/"+alice.ID.String()+"/"), snapshot.StoragePath)
	assert.True(t, strings.HasSuffix(snapshot.StoragePath, ".json"), snapshot.StoragePath)
	assert.Contains(t, f.events.types(), ports.EventSnapshotCreated)

	var rows []dto.StatusCount
	require.NoError(t, json.Unmarshal([]byte(snapshot.Data), &rows))
	assert.Equal(t, []dto.StatusCount{{Status: models.TaskStatusCompleted, Count: 1}}, rows)

	listed, err := svc.ListSnapshots(f.ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = svc.GetSnapshot(f.ctx, bob.ID, snapshot.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	reader, contentType, filename, err := svc.DownloadSnapshot(f.ctx, alice.ID, snapshot.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	reader.Close()
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, filepath.Base(snapshot.StoragePath), filename)
	assert.Contains(t, string(body), `"report_type": "task_status"`)

	require.NoError(t, svc.DeleteSnapshot(f.ctx, alice.ID, snapshot.ID))
	_, err = os.Stat(filepath.Join(basePath, snapshot.StoragePath))
	assert.True(t, os.IsNotExist(err))
	_, err = svc.GetSnapshot(f.ctx, alice.ID, snapshot.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.CreateSnapshot(f.ctx, alice.ID, &dto.CreateSnapshotRequest{ReportType: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSnapshotWithoutStorageCannotBeDownloaded(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	svc := NewReportSnapshotService(f.snapshots, f.reportService(), nil, nil)

	snapshot, err := svc.CreateSnapshot(f.ctx, alice.ID, &dto.CreateSnapshotRequest{ReportType: string(reporting.KindTimeSummary)})
	require.NoError(t, err)
	assert.Empty(t, snapshot.StoragePath)

	_, _, _, err = svc.DownloadSnapshot(f.ctx, alice.ID, snapshot.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, _, _, err = svc.DownloadSnapshot(f.ctx, alice.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
