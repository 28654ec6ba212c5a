package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

// TaskStatuses ลำดับที่ใช้แสดงผลใน report
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

type Task struct {
	ID          uuid.UUID   `gorm:"primaryKey;type:uuid"`
	Title       string      `gorm:"size:255;not null"`
	Description string      `gorm:"type:text"`
	Priority    string      `gorm:"size:10;not null"`
	Status      string      `gorm:"size:20;not null;default:'Pending';index"`
	DueDate     *time.Time  `gorm:"index"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index"` // owner
	User        User        `gorm:"foreignKey:UserID"`
	AssigneeID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Assignee    User        `gorm:"foreignKey:AssigneeID"`
	TimeEntries []TimeEntry `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.AssigneeID == uuid.Nil {
		t.AssigneeID = t.UserID
	}
	return nil
}

// IsOwner เจ้าของเท่านั้นที่แก้ไข/ลบ task ได้
func (t *Task) IsOwner(userID uuid.UUID) bool {
	return t.UserID == userID
}

// CanAccess owner หรือ assignee ดู task และลงเวลาได้
func (t *Task) CanAccess(userID uuid.UUID) bool {
	return t.UserID == userID || t.AssigneeID == userID
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
