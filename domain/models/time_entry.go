package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntry ช่วงเวลาที่ลงไว้กับ task; EndTime = nil คือ timer ที่กำลังเดินอยู่
type TimeEntry struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:uuid"`
	TaskID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// Duration คืนระยะเวลาของ entry ที่ปิดแล้ว; entry ที่ยังเปิดอยู่คืน 0
func (e *TimeEntry) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	d := e.EndTime.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return d
}
