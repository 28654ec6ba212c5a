package serviceimpl

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/infrastructure/postgres"
	"timeguard/pkg/testdb"
)

// recordingPublisher เก็บ event ไว้ตรวจใน test
type recordingPublisher struct {
	mu     sync.Mutex
	events []*ports.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// fakeClock เวลาที่ test เลื่อนเองได้
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now().UTC().Truncate(time.Second)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	ctx         context.Context
	users       repositories.UserRepository
	tasks       repositories.TaskRepository
	entries     repositories.TimeEntryRepository
	friendships repositories.FriendshipRepository
	snapshots   repositories.ReportSnapshotRepository
	events      *recordingPublisher
	clock       *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	return &fixture{
		ctx:         context.Background(),
		users:       postgres.NewUserRepository(db),
		tasks:       postgres.NewTaskRepository(db),
		entries:     postgres.NewTimeEntryRepository(db),
		friendships: postgres.NewFriendshipRepository(db),
		snapshots:   postgres.NewReportSnapshotRepository(db),
		events:      &recordingPublisher{},
		clock:       newFakeClock(),
	}
}

func (f *fixture) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "x", Role: models.RoleUser}
	require.NoError(t, f.users.Create(f.ctx, user))
	return user
}

func (f *fixture) taskService() *TaskServiceImpl {
	return NewTaskService(f.tasks, f.users, f.events).(*TaskServiceImpl)
}

func (f *fixture) timeEntryService() *TimeEntryServiceImpl {
	return NewTimeEntryServiceWithClock(f.entries, f.tasks, nil, 0, f.events, f.clock.Now).(*TimeEntryServiceImpl)
}

func (f *fixture) reportService() *ReportServiceImpl {
	return NewReportServiceWithClock(f.tasks, f.friendships, ReportOptions{}, f.clock.Now).(*ReportServiceImpl)
}

func (f *fixture) friendshipService() *FriendshipServiceImpl {
	return NewFriendshipService(f.friendships, f.users, nil, 0, f.events).(*FriendshipServiceImpl)
}

func (f *fixture) createTask(t *testing.T, owner *models.User, title string, due time.Time) *models.Task {
	t.Helper()
	task, err := f.taskService().CreateTask(f.ctx, owner.ID, &dto.CreateTaskRequest{
		Title:    title,
		Priority: models.TaskPriorityMedium,
		Status:   models.TaskStatusPending,
		DueDate:  due.Format(time.RFC3339),
	})
	require.NoError(t, err)
	return task
}

func strPtr(s string) *string {
	return &s
}
