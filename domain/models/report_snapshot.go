package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportSnapshot report ที่ผู้ใช้สั่งบันทึกไว้ (read path ของ report ปกติไม่อ่านตารางนี้)
type ReportSnapshot struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	User        User       `gorm:"foreignKey:UserID"`
	ReportType  string     `gorm:"size:50;not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	Data        string     `gorm:"type:text;not null"`
	StoragePath string     `gorm:"size:500"`
	GeneratedAt time.Time  `gorm:"not null;index"`
}

func (ReportSnapshot) TableName() string {
	return "report_snapshots"
}

func (r *ReportSnapshot) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
