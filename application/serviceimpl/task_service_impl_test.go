package serviceimpl

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/pkg/apperrors"
)

func TestCreateTaskDefaultsAssigneeToOwner(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")

	task := f.createTask(t, alice, "Write docs", time.Now().Add(72*time.Hour))
	assert.Equal(t, alice.ID, task.UserID)
	assert.Equal(t, alice.ID, task.AssigneeID)
	assert.Equal(t, "Alice", task.Assignee.Name)
	assert.Equal(t, []string{ports.EventTaskCreated}, f.events.types())
}

func TestCreateTaskRejectsUnknownAssignee(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")

	_, err := f.taskService().CreateTask(f.ctx, alice.ID, &dto.CreateTaskRequest{
		Title:      "Delegate",
		Priority:   models.TaskPriorityLow,
		Status:     models.TaskStatusPending,
		DueDate:    "2026-11-01",
		AssigneeID: strPtr(uuid.NewString()),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListMyTasksScopeAndOrder(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	svc := f.taskService()
	now := time.Now().UTC()

	later := f.createTask(t, alice, "Later", now.Add(72*time.Hour))
	sooner := f.createTask(t, alice, "Sooner", now.Add(24*time.Hour))
	undated := f.createTask(t, alice, "Undated", now)
	_, err := svc.UpdateTask(f.ctx, alice.ID, undated.ID, &dto.UpdateTaskRequest{DueDate: strPtr("")})
	require.NoError(t, err)

	delegated, err := svc.CreateTask(f.ctx, bob.ID, &dto.CreateTaskRequest{
		Title:      "Delegated",
		Priority:   models.TaskPriorityHigh,
		Status:     models.TaskStatusPending,
		DueDate:    now.Add(48 * time.Hour).Format(time.RFC3339),
		AssigneeID: strPtr(alice.ID.String()),
	})
	require.NoError(t, err)
	f.createTask(t, bob, "Bob only", now)

	tasks, err := svc.ListMyTasks(f.ctx, alice.ID)
	require.NoError(t, err)

	var ids []uuid.UUID
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []uuid.UUID{sooner.ID, delegated.ID, later.ID, undated.ID}, ids)
}

func TestOnlyOwnerCanEditOrDelete(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	mallory := f.createUser(t, "Mallory", "mallory@example.com")
	svc := f.taskService()

	task, err := svc.CreateTask(f.ctx, alice.ID, &dto.CreateTaskRequest{
		Title:      "Shared",
		Priority:   models.TaskPriorityMedium,
		Status:     models.TaskStatusPending,
		DueDate:    "2026-11-01",
		AssigneeID: strPtr(bob.ID.String()),
	})
	require.NoError(t, err)

	// assignee ดูได้แต่แก้ไม่ได้
	_, err = svc.GetTask(f.ctx, bob.ID, task.ID)
	assert.NoError(t, err)
	_, err = svc.UpdateTask(f.ctx, bob.ID, task.ID, &dto.UpdateTaskRequest{Status: strPtr(models.TaskStatusCompleted)})
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	assert.ErrorIs(t, svc.DeleteTask(f.ctx, bob.ID, task.ID), apperrors.ErrAuthorization)

	_, err = svc.GetTask(f.ctx, mallory.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	_, err = svc.GetTask(f.ctx, alice.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTaskPartial(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")
	svc := f.taskService()
	task := f.createTask(t, alice, "Write docs", time.Now().Add(24*time.Hour))

	updated, err := svc.UpdateTask(f.ctx, alice.ID, task.ID, &dto.UpdateTaskRequest{
		Status:     strPtr(models.TaskStatusInProgress),
		AssigneeID: strPtr(bob.ID.String()),
	})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", updated.Title)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
	assert.Equal(t, bob.ID, updated.AssigneeID)
	assert.Equal(t, "Bob", updated.Assignee.Name)

	_, err = svc.UpdateTask(f.ctx, alice.ID, task.ID, &dto.UpdateTaskRequest{Title: strPtr("ab")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateTaskTitleLengthCountsCharacters(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	svc := f.taskService()
	task := f.createTask(t, alice, "Write docs", time.Now().Add(24*time.Hour))

	// "日本" ยาว 6 bytes แต่มีแค่ 2 ตัวอักษร
	_, err := svc.UpdateTask(f.ctx, alice.ID, task.ID, &dto.UpdateTaskRequest{Title: strPtr("日本")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	stored, err := svc.GetTask(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write docs", stored.Title)

	updated, err := svc.UpdateTask(f.ctx, alice.ID, task.ID, &dto.UpdateTaskRequest{Title: strPtr("日本語")})
	require.NoError(t, err)
	assert.Equal(t, "日本語", updated.Title)
}

func TestDeleteTaskRemovesEntries(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	task := f.createTask(t, alice, "Write docs", time.Now())

	entry, err := f.timeEntryService().StartTimer(f.ctx, alice.ID, task.ID)
	require.NoError(t, err)

	require.NoError(t, f.taskService().DeleteTask(f.ctx, alice.ID, task.ID))

	gone, err := f.entries.GetByID(f.ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	_, err = f.taskService().GetTask(f.ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
