package ports

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound คืนจาก GetFileContent เมื่อไม่มีไฟล์
var ErrFileNotFound = errors.New("file not found")

// StoragePort คือ interface หลักสำหรับ object storage ของไฟล์ export
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3/MinIO)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "reports/<user>/weekly.json")
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage (ไม่มีไฟล์ถือว่าสำเร็จ)
	DeleteFile(ctx context.Context, path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetFileContent อ่านไฟล์จาก storage
	// return: io.ReadCloser, contentType, error
	GetFileContent(ctx context.Context, path string) (io.ReadCloser, string, error)

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
