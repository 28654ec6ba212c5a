package apperrors

import (
	"errors"
	"fmt"
)

// Kind จำแนกประเภท error ของ domain เพื่อ map เป็น HTTP status ที่ request boundary
type Kind string

const (
	KindValidation     Kind = "validation"
	KindInvariant      Kind = "invariant"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// AppError คือ error ที่ service คืนให้ handler
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is ให้ errors.Is(err, apperrors.ErrNotFound) เทียบด้วย Kind
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Sentinels สำหรับ errors.Is
var (
	ErrValidation     = &AppError{Kind: KindValidation}
	ErrInvariant      = &AppError{Kind: KindInvariant}
	ErrAuthentication = &AppError{Kind: KindAuthentication}
	ErrAuthorization  = &AppError{Kind: KindAuthorization}
	ErrNotFound       = &AppError{Kind: KindNotFound}
	ErrConflict       = &AppError{Kind: KindConflict}
	ErrInternal       = &AppError{Kind: KindInternal}
)

// ═══════════════════════════════════════════════════════════════════════════════
// Constructors
// ═══════════════════════════════════════════════════════════════════════════════

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Invariant(message string) *AppError {
	return &AppError{Kind: KindInvariant, Message: message}
}

func Authentication(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: message}
}

func Authorization(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// Internal ห่อ error จาก store/infrastructure; message นี้ไม่ถูกส่งถึง client
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf คืน Kind ของ err; error ที่ไม่ใช่ AppError ถือเป็น internal
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf คืน message ที่ปลอดภัยสำหรับส่งให้ client
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}
