package reporting

import (
	"math"
	"sort"
	"time"

	"timeguard/domain/dto"
	"timeguard/domain/models"
)

// Tasks ที่ส่งเข้ามาทุกฟังก์ชันต้องถูกกรองด้วย owner/assignee ของผู้เรียกแล้ว
// และ preload TimeEntries มาด้วย

// RoundHours แปลง duration เป็นชั่วโมงทศนิยม 2 ตำแหน่ง
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// TaskDuration รวมเวลาของ entry ที่ปิดแล้วของ task
func TaskDuration(task *models.Task) time.Duration {
	var total time.Duration
	for i := range task.TimeEntries {
		total += task.TimeEntries[i].Duration()
	}
	return total
}

func totalDuration(tasks []*models.Task) time.Duration {
	var total time.Duration
	for _, t := range tasks {
		total += TaskDuration(t)
	}
	return total
}

func countCompleted(tasks []*models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}

// ═══════════════════════════════════════════════════════════════════════════════
// Time summary / completed tasks
// ═══════════════════════════════════════════════════════════════════════════════

// TimeSummary เวลาต่อ task ในช่วงที่กำหนด; task ที่ไม่มี entry ตรงช่วงได้ 0
func TimeSummary(tasks []*models.Task, r DateRange) []dto.TaskTimeSummary {
	rows := make([]dto.TaskTimeSummary, 0, len(tasks))
	for _, t := range tasks {
		var total time.Duration
		for i := range t.TimeEntries {
			e := &t.TimeEntries[i]
			if e.IsOpen() || !r.Contains(e.StartTime, e.EndTime) {
				continue
			}
			total += e.Duration()
		}
		rows = append(rows, dto.TaskTimeSummary{
			TaskID:         t.ID,
			TaskTitle:      t.Title,
			TotalTimeHours: RoundHours(total),
		})
	}
	return rows
}

// CompletedTasks เหมือน TimeSummary แต่เฉพาะ task ที่ Completed
func CompletedTasks(tasks []*models.Task, r DateRange) []dto.TaskTimeSummary {
	completed := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsCompleted() {
			completed = append(completed, t)
		}
	}
	return TimeSummary(completed, r)
}

// ═══════════════════════════════════════════════════════════════════════════════
// Status
// ═══════════════════════════════════════════════════════════════════════════════

// StatusCounts นับ task ตาม status เฉพาะ status ที่มีอยู่จริง
// เรียง Pending, In Progress, Completed แล้วตามด้วยค่าอื่นตามตัวอักษร
func StatusCounts(tasks []*models.Task) []dto.StatusCount {
	counts := make(map[string]int64)
	for _, t := range tasks {
		counts[t.Status]++
	}

	rows := make([]dto.StatusCount, 0, len(counts))
	for _, status := range models.TaskStatuses {
		if n, ok := counts[status]; ok {
			rows = append(rows, dto.StatusCount{Status: status, Count: n})
			delete(counts, status)
		}
	}

	others := make([]string, 0, len(counts))
	for status := range counts {
		others = append(others, status)
	}
	sort.Strings(others)
	for _, status := range others {
		rows = append(rows, dto.StatusCount{Status: status, Count: counts[status]})
	}
	return rows
}

// ProgressOf เปอร์เซ็นต์โดยประมาณจาก status
func ProgressOf(status string) int {
	switch status {
	case models.TaskStatusCompleted:
		return 100
	case models.TaskStatusInProgress:
		return 50
	default:
		return 0
	}
}

func Progress(tasks []*models.Task) []dto.TaskProgress {
	rows := make([]dto.TaskProgress, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, dto.TaskProgress{
			TaskID:   t.ID,
			Title:    t.Title,
			Status:   t.Status,
			Progress: ProgressOf(t.Status),
		})
	}
	return rows
}

// ═══════════════════════════════════════════════════════════════════════════════
// Weekly / monthly
// ═══════════════════════════════════════════════════════════════════════════════

const (
	weeksInWindow  = 4
	monthsInWindow = 12
)

// WeekStart วันจันทร์ 00:00 UTC ของสัปดาห์ (ISO week)
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
}

// MonthStart วันที่ 1 เวลา 00:00 UTC ของเดือน
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

type bucket struct {
	start     time.Time
	total     int
	completed int
	duration  time.Duration
}

// bucketize จัดกลุ่ม task ตาม key ของ created_at; คืนใหม่สุดก่อน
func bucketize(tasks []*models.Task, keyOf func(time.Time) time.Time, oldest time.Time) []*bucket {
	byKey := make(map[time.Time]*bucket)
	for _, t := range tasks {
		key := keyOf(t.CreatedAt)
		if key.Before(oldest) {
			continue
		}
		b, ok := byKey[key]
		if !ok {
			b = &bucket{start: key}
			byKey[key] = b
		}
		b.total++
		if t.IsCompleted() {
			b.completed++
		}
		b.duration += TaskDuration(t)
	}

	buckets := make([]*bucket, 0, len(byKey))
	for _, b := range byKey {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].start.After(buckets[j].start)
	})
	return buckets
}

// WeeklyStatistics สัปดาห์ปัจจุบันและย้อนหลัง 3 สัปดาห์; สัปดาห์ที่ไม่มี task ไม่แสดง
func WeeklyStatistics(tasks []*models.Task, now time.Time) []dto.WeeklyStatistic {
	oldest := WeekStart(now).AddDate(0, 0, -7*(weeksInWindow-1))
	buckets := bucketize(tasks, WeekStart, oldest)

	rows := make([]dto.WeeklyStatistic, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, dto.WeeklyStatistic{
			Week:           b.start,
			TotalTasks:     b.total,
			TasksCompleted: b.completed,
			TotalHours:     RoundHours(b.duration),
		})
	}
	return rows
}

// MonthlyStatistics เดือนปัจจุบันและย้อนหลัง 11 เดือน
func MonthlyStatistics(tasks []*models.Task, now time.Time) []dto.MonthlyStatistic {
	oldest := MonthStart(now).AddDate(0, -(monthsInWindow - 1), 0)
	buckets := bucketize(tasks, MonthStart, oldest)

	rows := make([]dto.MonthlyStatistic, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, dto.MonthlyStatistic{
			Month:          b.start,
			TotalTasks:     b.total,
			TasksCompleted: b.completed,
			TotalHours:     RoundHours(b.duration),
		})
	}
	return rows
}

// ═══════════════════════════════════════════════════════════════════════════════
// Calendar
// ═══════════════════════════════════════════════════════════════════════════════

// Calendar entries ทั้งหมดพร้อมชื่อ task เรียงตาม start
func Calendar(tasks []*models.Task, r DateRange) []dto.CalendarEntry {
	rows := make([]dto.CalendarEntry, 0)
	for _, t := range tasks {
		for i := range t.TimeEntries {
			e := &t.TimeEntries[i]
			if !r.Contains(e.StartTime, e.EndTime) {
				continue
			}
			rows = append(rows, dto.CalendarEntry{
				ID:     e.ID,
				TaskID: t.ID,
				Title:  t.Title,
				Start:  e.StartTime,
				End:    e.EndTime,
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Start.Before(rows[j].Start)
	})
	return rows
}

// ═══════════════════════════════════════════════════════════════════════════════
// Achievements / performance
// ═══════════════════════════════════════════════════════════════════════════════

type achievementRule struct {
	badge     dto.Achievement
	completed int
	hours     float64
}

var achievementRules = []achievementRule{
	{badge: dto.Achievement{ID: 1, Name: "Task Master", Description: "Completed 10 tasks"}, completed: 10},
	{badge: dto.Achievement{ID: 2, Name: "Task Guru", Description: "Completed 20 tasks"}, completed: 20},
	{badge: dto.Achievement{ID: 3, Name: "Time Tracker", Description: "Tracked 100 hours"}, hours: 100},
	{badge: dto.Achievement{ID: 4, Name: "Time Master", Description: "Tracked 200 hours"}, hours: 200},
}

// Achievements แต่ละเกณฑ์ประเมินแยกกัน ได้หลาย badge พร้อมกัน
func Achievements(tasks []*models.Task) []dto.Achievement {
	completed := countCompleted(tasks)
	hours := totalDuration(tasks).Hours()

	badges := make([]dto.Achievement, 0, len(achievementRules))
	for _, rule := range achievementRules {
		if rule.completed > 0 && completed >= rule.completed {
			badges = append(badges, rule.badge)
		}
		if rule.hours > 0 && hours >= rule.hours {
			badges = append(badges, rule.badge)
		}
	}
	return badges
}

// Performance ค่าเฉลี่ยชั่วโมงต่อ task ที่ Completed (นับเฉพาะ entry ของ task ที่ Completed)
func Performance(tasks []*models.Task) dto.PerformanceMetrics {
	completed := 0
	var completedDuration time.Duration
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
			completedDuration += TaskDuration(t)
		}
	}

	metrics := dto.PerformanceMetrics{
		TotalTasks:     len(tasks),
		CompletedTasks: completed,
	}
	if completed > 0 {
		metrics.AverageTimeHours = RoundHours(completedDuration / time.Duration(completed))
	}
	return metrics
}

// ═══════════════════════════════════════════════════════════════════════════════
// Deadlines
// ═══════════════════════════════════════════════════════════════════════════════

// UpcomingDeadlines task ที่ยังไม่ Completed และ due_date อยู่ใน [ต้นวันนี้ (UTC), now+days]
// due_date ที่ไม่มีเวลาจะเป็น 00:00 UTC จึงต้องนับ task ที่ครบกำหนดวันนี้ด้วย
func UpcomingDeadlines(tasks []*models.Task, now time.Time, days int) []dto.DeadlineTask {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, days)

	rows := make([]dto.DeadlineTask, 0)
	for _, t := range tasks {
		if t.IsCompleted() || t.DueDate == nil {
			continue
		}
		due := t.DueDate.UTC()
		if due.Before(today) || due.After(until) {
			continue
		}
		rows = append(rows, dto.DeadlineTask{
			ID:      t.ID,
			Title:   t.Title,
			DueDate: due,
			Status:  t.Status,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DueDate.Before(rows[j].DueDate)
	})
	return rows
}
