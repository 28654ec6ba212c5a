package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
)

func TestTimerScenarioTwoHours(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now().Add(72*time.Hour))
	svc := f.timeEntryService()

	started, err := svc.StartTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, started.IsOpen())

	f.clock.Advance(2 * time.Hour)

	stopped, err := svc.StopTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	require.NotNil(t, stopped.EndTime)
	assert.Equal(t, started.ID, stopped.ID)

	total, err := svc.TotalDuration(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 7200.0, total.Seconds())

	report, err := f.reportService().Generate(f.ctx, alice.ID, &dto.GenerateReportRequest{ReportType: "task_status"})
	require.NoError(t, err)
	assert.Equal(t, []dto.StatusCount{{Status: models.TaskStatusPending, Count: 1}}, report)

	assert.Contains(t, f.events.types(), ports.EventTimerStarted)
	assert.Contains(t, f.events.types(), ports.EventTimerStopped)
}

func TestStartTimerTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := f.timeEntryService()

	_, err := svc.StartTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)

	_, err = svc.StartTimer(f.ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// สร้าง entry แบบเปิดผ่าน create ก็ชนเหมือนกัน
	_, err = svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
		TaskID:    task.ID.String(),
		StartTime: f.clock.Now().Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// entry ที่ปิดแล้วสร้างได้แม้ timer เดินอยู่
	_, err = svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
		TaskID:    task.ID.String(),
		StartTime: f.clock.Now().Add(-3 * time.Hour).Format(time.RFC3339),
		EndTime:   strPtr(f.clock.Now().Add(-2 * time.Hour).Format(time.RFC3339)),
	})
	assert.NoError(t, err)
}

func TestStopWithoutOpenEntryIsNotFound(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())

	_, err := f.timeEntryService().StopTimer(f.ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, err, services.ErrNoActiveEntry)
	assert.Equal(t, "No active time entry found for this task", apperrors.MessageOf(err))
}

func TestStopAtStartInstantIsInvariant(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := f.timeEntryService()

	_, err := svc.StartTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)

	_, err = svc.StopTimer(f.ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestStopLeavesClosedEntriesUntouched(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Legacy", f.clock.Now())

	older := &models.TimeEntry{TaskID: task.ID, StartTime: f.clock.Now().Add(-5 * time.Hour)}
	require.NoError(t, f.entries.Create(f.ctx, older))
	end := f.clock.Now().Add(-4 * time.Hour)
	older.EndTime = &end
	require.NoError(t, f.entries.Update(f.ctx, older))
	latest := &models.TimeEntry{TaskID: task.ID, StartTime: f.clock.Now().Add(-time.Hour)}
	require.NoError(t, f.entries.Create(f.ctx, latest))

	stopped, err := f.timeEntryService().StopTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, stopped.ID)

	total, err := f.timeEntryService().TotalDuration(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, total)
}

func TestCreateEntryValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := f.timeEntryService()

	start := f.clock.Now()
	_, err := svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
		TaskID:    task.ID.String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   strPtr(start.Format(time.RFC3339)),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvariant)

	_, err = svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
		TaskID:    task.ID.String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   strPtr(start.Add(-time.Minute).Format(time.RFC3339)),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvariant)

	_, err = svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
		TaskID:    uuid.NewString(),
		StartTime: start.Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateEntryRevalidatesMergedValues(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := f.timeEntryService()

	base := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	entry, err := svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
		TaskID:    task.ID.String(),
		StartTime: base.Format(time.RFC3339),
		EndTime:   strPtr(base.Add(2 * time.Hour).Format(time.RFC3339)),
	})
	require.NoError(t, err)

	// start ใหม่เลย end เดิม
	_, err = svc.UpdateEntry(f.ctx, alice.ID, entry.ID, &dto.UpdateTimeEntryRequest{
		StartTime: strPtr(base.Add(3 * time.Hour).Format(time.RFC3339)),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvariant)

	updated, err := svc.UpdateEntry(f.ctx, alice.ID, entry.ID, &dto.UpdateTimeEntryRequest{
		EndTime: strPtr(base.Add(4 * time.Hour).Format(time.RFC3339)),
	})
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, updated.Duration())

	_, err = svc.UpdateEntry(f.ctx, alice.ID, uuid.New(), &dto.UpdateTimeEntryRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTotalDurationIgnoresOpenEntries(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := f.timeEntryService()

	base := f.clock.Now().Add(-10 * time.Hour)
	for _, d := range []time.Duration{30 * time.Minute, 45 * time.Minute} {
		_, err := svc.CreateEntry(f.ctx, alice.ID, &dto.CreateTimeEntryRequest{
			TaskID:    task.ID.String(),
			StartTime: base.Format(time.RFC3339),
			EndTime:   strPtr(base.Add(d).Format(time.RFC3339)),
		})
		require.NoError(t, err)
		base = base.Add(time.Hour)
	}
	_, err := svc.StartTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)

	total, err := svc.TotalDuration(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 75*time.Minute, total)
}

func TestTimeEntryAuthorization(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	mallory := f.createUser(t, "Mallory", "mallory@example.com")

	task, err := f.taskService().CreateTask(f.ctx, alice.ID, &dto.CreateTaskRequest{
		Title:      "Shared",
		Priority:   models.TaskPriorityHigh,
		Status:     models.TaskStatusInProgress,
		DueDate:    "2026-12-01",
		AssigneeID: strPtr(bob.ID.String()),
	})
	require.NoError(t, err)
	svc := f.timeEntryService()

	// assignee ลงเวลาได้
	entry, err := svc.StartTimer(f.ctx, bob.ID, task.ID)
	require.NoError(t, err)

	_, err = svc.StopTimer(f.ctx, mallory.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	_, err = svc.GetEntry(f.ctx, mallory.ID, entry.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	_, err = svc.TotalDuration(f.ctx, mallory.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	err = svc.DeleteEntry(f.ctx, mallory.ID, entry.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	_, err = svc.CreateEntry(f.ctx, mallory.ID, &dto.CreateTimeEntryRequest{
		TaskID:    task.ID.String(),
		StartTime: "2026-10-01T10:00:00Z",
		EndTime:   strPtr("2026-10-01T11:00:00Z"),
	})
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	_, err = svc.StartTimer(f.ctx, alice.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, svc.DeleteEntry(f.ctx, alice.ID, entry.ID))
	entries, err := svc.ListByTask(f.ctx, bob.ID, task.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSecondOpenEntryInsertIsDuplicate(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())

	require.NoError(t, f.entries.Create(f.ctx, &models.TimeEntry{TaskID: task.ID, StartTime: f.clock.Now()}))
	err := f.entries.Create(f.ctx, &models.TimeEntry{TaskID: task.ID, StartTime: f.clock.Now().Add(time.Minute)})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// entry ที่ปิดแล้วไม่ชน index
	end := f.clock.Now().Add(-time.Minute)
	closed := &models.TimeEntry{TaskID: task.ID, StartTime: f.clock.Now().Add(-time.Hour), EndTime: &end}
	assert.NoError(t, f.entries.Create(f.ctx, closed))
}

// blindEntries ไม่เห็น entry ที่เปิดอยู่ ทำให้ service ต้องพึ่ง unique index
type blindEntries struct {
	repositories.TimeEntryRepository
}

func (blindEntries) FindLatestOpen(ctx context.Context, taskID uuid.UUID) (*models.TimeEntry, error) {
	return nil, nil
}

func TestStartTimerMapsDuplicateToConflict(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := NewTimeEntryServiceWithClock(blindEntries{f.entries}, f.tasks, nil, 0, f.events, f.clock.Now)

	_, err := svc.StartTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)

	_, err = svc.StartTimer(f.ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, msgTimerRunning, apperrors.MessageOf(err))

	open, err := f.entries.CountOpen(f.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), open)
}

func TestConcurrentStartTimerWithoutLocker(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", f.clock.Now())
	svc := f.timeEntryService()

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.StartTimer(f.ctx, alice.ID, task.ID)
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperrors.ErrConflict):
			conflict++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, callers-1, conflict)

	open, err := f.entries.CountOpen(f.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), open)
}
