package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeguard/domain/models"
)

func TestActivityFeedMergesAndSorts(t *testing.T) {
	task := newTask("Write docs", models.TaskStatusPending, now.Add(-5*time.Hour))
	addEntry(task, now.Add(-4*time.Hour), 2*time.Hour)
	addEntry(task, now.Add(-30*time.Minute), 0)

	bob := models.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	carol := models.User{ID: uuid.New(), Name: "Carol", Email: "carol@example.com"}

	sent := []*models.Friendship{
		{ID: uuid.New(), Status: models.FriendshipPending, Receiver: bob, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: uuid.New(), Status: models.FriendshipRejected, Receiver: carol, CreatedAt: now.Add(-time.Minute)},
	}
	accepted := []*models.Friendship{
		{ID: uuid.New(), Status: models.FriendshipAccepted, Sender: carol, UpdatedAt: now.Add(-10 * time.Minute)},
	}

	feed := ActivityFeed([]*models.Task{task}, sent, accepted, 20)
	require.Len(t, feed, 5)

	assert.Equal(t, ActivityFriendAccepted, feed[0].ActivityType)
	assert.Equal(t, "Carol (carol@example.com)", feed[0].Detail)
	assert.Equal(t, ActivityTimeLogged, feed[1].ActivityType)
	assert.Equal(t, "Write docs - running", feed[1].Detail)
	assert.Equal(t, ActivityFriendRequested, feed[2].ActivityType)
	assert.Equal(t, ActivityTimeLogged, feed[3].ActivityType)
	assert.Equal(t, "Write docs - 2.00 hours", feed[3].Detail)
	assert.Equal(t, ActivityTaskCreated, feed[4].ActivityType)
}

func TestActivityFeedLimit(t *testing.T) {
	var tasks []*models.Task
	for i := 0; i < 30; i++ {
		tasks = append(tasks, newTask(fmt.Sprintf("task %d", i), models.TaskStatusPending, now.Add(time.Duration(i)*time.Minute)))
	}

	feed := ActivityFeed(tasks, nil, nil, 20)
	require.Len(t, feed, 20)
	assert.Equal(t, "task 29", feed[0].Detail)
	assert.Equal(t, "task 10", feed[19].Detail)
}
