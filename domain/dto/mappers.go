package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// UserToSummary คืน nil ถ้า association ไม่ได้ preload มา
func UserToSummary(user *models.User) *UserSummary {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}
	return &UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     task.DueDate,
		UserID:      task.UserID,
		AssigneeID:  task.AssigneeID,
		Owner:       UserToSummary(&task.User),
		Assignee:    UserToSummary(&task.Assignee),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, *TaskToTaskResponse(task))
	}
	return resp
}

func TimeEntryToResponse(entry *models.TimeEntry) *TimeEntryResponse {
	if entry == nil {
		return nil
	}
	return &TimeEntryResponse{
		ID:        entry.ID,
		TaskID:    entry.TaskID,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func TimeEntriesToResponses(entries []*models.TimeEntry) []TimeEntryResponse {
	resp := make([]TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, *TimeEntryToResponse(entry))
	}
	return resp
}

func FriendshipToResponse(f *models.Friendship) *FriendshipResponse {
	if f == nil {
		return nil
	}
	return &FriendshipResponse{
		ID:         f.ID,
		SenderID:   f.SenderID,
		ReceiverID: f.ReceiverID,
		Status:     f.Status,
		Sender:     UserToSummary(&f.Sender),
		Receiver:   UserToSummary(&f.Receiver),
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func FriendshipsToResponses(friendships []*models.Friendship) []FriendshipResponse {
	resp := make([]FriendshipResponse, 0, len(friendships))
	for _, f := range friendships {
		resp = append(resp, *FriendshipToResponse(f))
	}
	return resp
}

func UsersToSummaries(users []*models.User) []UserSummary {
	resp := make([]UserSummary, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return resp
}

// SnapshotToResponse withData=false ใช้กับ list เพื่อไม่ส่ง payload ทั้งก้อน
func SnapshotToResponse(s *models.ReportSnapshot, withData bool) *SnapshotResponse {
	if s == nil {
		return nil
	}
	resp := &SnapshotResponse{
		ID:          s.ID,
		ReportType:  s.ReportType,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		StoragePath: s.StoragePath,
		GeneratedAt: s.GeneratedAt,
	}
	if withData && s.Data != "" {
		resp.Data = json.RawMessage(s.Data)
	}
	return resp
}
