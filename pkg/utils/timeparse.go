package utils

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid ISO 8601 date")

const dateOnlyLayout = "2006-01-02"

var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	dateOnlyLayout,
}

// ParseISO8601 รับ RFC 3339 หรือ YYYY-MM-DD แล้วคืนเวลาเป็น UTC
func ParseISO8601(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// IsDateOnly true ถ้า value เป็นวันที่ล้วน (ไม่มีเวลา)
func IsDateOnly(value string) bool {
	_, err := time.Parse(dateOnlyLayout, strings.TrimSpace(value))
	return err == nil
}

// ParseRangeBound parse ขอบของช่วงวันที่; end date ที่เป็นวันล้วนครอบคลุมทั้งวัน
func ParseRangeBound(value string, isEnd bool) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseISO8601(value)
	if err != nil {
		return nil, err
	}
	if isEnd && IsDateOnly(value) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// ParseOptionalISO8601 nil/ว่าง คืน nil
func ParseOptionalISO8601(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := ParseISO8601(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
