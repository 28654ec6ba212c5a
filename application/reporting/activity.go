package reporting

import (
	"fmt"
	"sort"

	"timeguard/domain/dto"
	"timeguard/domain/models"
)

const (
	ActivityTaskCreated     = "Task Created"
	ActivityTimeLogged      = "Time Entry Logged"
	ActivityFriendRequested = "Friend Request Sent"
	ActivityFriendAccepted  = "Friend Request Accepted"
)

// ActivityFeed รวม event สี่ประเภทแล้วเรียงใหม่สุดก่อน จำกัด limit รายการ
//   - sent: friendship ที่ผู้เรียกเป็น sender และยัง pending (preload Receiver)
//   - accepted: friendship ที่ผู้เรียกเป็น receiver และ accepted แล้ว (preload Sender)
func ActivityFeed(tasks []*models.Task, sent, accepted []*models.Friendship, limit int) []dto.Activity {
	feed := make([]dto.Activity, 0)

	for _, t := range tasks {
		feed = append(feed, dto.Activity{
			ActivityType: ActivityTaskCreated,
			Detail:       t.Title,
			Timestamp:    t.CreatedAt,
		})
		for i := range t.TimeEntries {
			e := &t.TimeEntries[i]
			feed = append(feed, dto.Activity{
				ActivityType: ActivityTimeLogged,
				Detail:       entryDetail(t.Title, e),
				Timestamp:    e.StartTime,
			})
		}
	}

	for _, f := range sent {
		if !f.IsPending() {
			continue
		}
		feed = append(feed, dto.Activity{
			ActivityType: ActivityFriendRequested,
			Detail:       userLabel(f.Receiver),
			Timestamp:    f.CreatedAt,
		})
	}

	for _, f := range accepted {
		if f.Status != models.FriendshipAccepted {
			continue
		}
		feed = append(feed, dto.Activity{
			ActivityType: ActivityFriendAccepted,
			Detail:       userLabel(f.Sender),
			Timestamp:    f.UpdatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

func entryDetail(title string, e *models.TimeEntry) string {
	if e.IsOpen() {
		return title + " - running"
	}
	return fmt.Sprintf("%s - %.2f hours", title, RoundHours(e.Duration()))
}

func userLabel(u models.User) string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}
