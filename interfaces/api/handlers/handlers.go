package handlers

import (
	"timeguard/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService           services.UserService
	TaskService           services.TaskService
	TimeEntryService      services.TimeEntryService
	FriendshipService     services.FriendshipService
	ReportService         services.ReportService
	ReportSnapshotService services.ReportSnapshotService
	AppName               string
	StorageProvider       string // local หรือ s3 สำหรับ health
	HealthChecks          map[string]HealthCheck
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	TaskHandler       *TaskHandler
	TimeEntryHandler  *TimeEntryHandler
	FriendshipHandler *FriendshipHandler
	ReportHandler     *ReportHandler
	SnapshotHandler   *SnapshotHandler
	HealthHandler     *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:       NewAuthHandler(services.UserService),
		UserHandler:       NewUserHandler(services.UserService),
		TaskHandler:       NewTaskHandler(services.TaskService, services.TimeEntryService),
		TimeEntryHandler:  NewTimeEntryHandler(services.TimeEntryService),
		FriendshipHandler: NewFriendshipHandler(services.FriendshipService),
		ReportHandler:     NewReportHandler(services.ReportService),
		SnapshotHandler:   NewSnapshotHandler(services.ReportSnapshotService),
		HealthHandler:     NewHealthHandler(services.AppName, services.StorageProvider, services.HealthChecks),
	}
}
