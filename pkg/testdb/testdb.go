// Package testdb เปิด SQLite in-memory database ที่ migrate schema เดียวกับ production ไว้ให้ test
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"timeguard/infrastructure/postgres"
)

// New คืน database ใหม่ต่อ test; ปิดให้อัตโนมัติตอน test จบ
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: แยก database ต่อ connection จึงต้องใช้ connection เดียว
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}
