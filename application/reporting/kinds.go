package reporting

import (
	"strings"
	"time"

	"timeguard/pkg/apperrors"
	"timeguard/pkg/utils"
)

// Kind ชนิด report ที่เลือกได้ผ่าน /reports/generate?reportType=
type Kind string

const (
	KindTimeSummary       Kind = "time_summary"
	KindTaskStatus        Kind = "task_status"
	KindCompletedTasks    Kind = "completed_tasks"
	KindWeeklyStatistics  Kind = "weekly_statistics"
	KindMonthlyStatistics Kind = "monthly_statistics"
)

// Kinds ลำดับเดียวกับที่แสดงใน error message
var Kinds = []Kind{
	KindTimeSummary,
	KindTaskStatus,
	KindCompletedTasks,
	KindWeeklyStatistics,
	KindMonthlyStatistics,
}

// ParseKind ตรวจ selector ก่อน query ใดๆ
func ParseKind(value string) (Kind, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.Validation("reportType is required")
	}
	for _, k := range Kinds {
		if string(k) == value {
			return k, nil
		}
	}

	allowed := make([]string, len(Kinds))
	for i, k := range Kinds {
		allowed[i] = string(k)
	}
	return "", apperrors.Validation("Invalid report type. Allowed: " + strings.Join(allowed, ", "))
}

// DateRange ขอบเขตวันที่ของ report; nil = ไม่กรอง
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange parse start_date/end_date จาก query
// end_date ที่เป็นวันล้วนนับรวมทั้งวัน
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange

	s, err := utils.ParseRangeBound(start, false)
	if err != nil {
		return r, apperrors.Validation("Start date must be a valid ISO8601 date")
	}
	e, err := utils.ParseRangeBound(end, true)
	if err != nil {
		return r, apperrors.Validation("End date must be a valid ISO8601 date")
	}
	if s != nil && e != nil && s.After(*e) {
		return r, apperrors.Validation("start_date must not be after end_date")
	}

	r.Start, r.End = s, e
	return r, nil
}

// IsZero true เมื่อไม่มีการกรองวันที่
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Contains entry นับเข้าช่วงเมื่อ start_time >= Start และ end_time <= End
// ถ้ากำหนด End แล้ว entry ที่ยังเปิดอยู่ไม่นับ
func (r DateRange) Contains(start time.Time, end *time.Time) bool {
	if r.Start != nil && start.Before(*r.Start) {
		return false
	}
	if r.End != nil {
		if end == nil || end.After(*r.End) {
			return false
		}
	}
	return true
}
