package di

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"timeguard/application/serviceimpl"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/infrastructure/messaging"
	natspkg "timeguard/infrastructure/nats"
	"timeguard/infrastructure/postgres"
	redispkg "timeguard/infrastructure/redis"
	"timeguard/infrastructure/storage"
	"timeguard/interfaces/api/handlers"
	"timeguard/pkg/config"
	"timeguard/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB            *gorm.DB
	RedisClient   *redispkg.Client   // optional: lock + token revocation
	NATSClient    *natspkg.Client    // optional: domain event stream
	NATSPublisher *natspkg.Publisher // publish events to JetStream
	Storage       ports.StoragePort  // snapshot export (local / s3)

	// Ports
	Locker         ports.LockPort
	Revocations    ports.TokenRevocationPort
	EventPublisher ports.EventPublisherPort

	// Repositories
	UserRepository           repositories.UserRepository
	TaskRepository           repositories.TaskRepository
	TimeEntryRepository      repositories.TimeEntryRepository
	FriendshipRepository     repositories.FriendshipRepository
	ReportSnapshotRepository repositories.ReportSnapshotRepository

	// Services
	UserService           services.UserService
	TaskService           services.TaskService
	TimeEntryService      services.TimeEntryService
	FriendshipService     services.FriendshipService
	ReportService         services.ReportService
	ReportSnapshotService services.ReportSnapshotService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbLogLevel := c.Config.Database.LogLevel
	if c.Config.IsDevelopment() && dbLogLevel == "warn" {
		dbLogLevel = "info"
	}
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		LogLevel: dbLogLevel,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (locks and token revocation disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.Locker = redispkg.NewLocker(redisClient)
			c.Revocations = redispkg.NewTokenRevocation(redisClient)
		}
	} else {
		logger.Warn("REDIS_URL not set (locks and token revocation disabled)")
	}

	// NATS (optional) - ไม่มีก็ใช้ noop publisher
	c.initEvents()

	return c.initStorage()
}

func (c *Container) initEvents() {
	if c.Config.NATS.URL == "" {
		c.EventPublisher = messaging.NewNoopEventPublisher()
		logger.Info("NATS_URL not set, domain events disabled")
		return
	}

	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
	if err != nil {
		logger.Warn("NATS client initialization failed (domain events disabled)", "error", err)
		c.EventPublisher = messaging.NewNoopEventPublisher()
		return
	}

	c.NATSClient = natsClient
	c.NATSPublisher = natspkg.NewPublisher(natsClient)
	c.EventPublisher = messaging.NewNATSEventPublisher(c.NATSPublisher)
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.TimeEntryRepository = postgres.NewTimeEntryRepository(c.DB)
	c.FriendshipRepository = postgres.NewFriendshipRepository(c.DB)
	c.ReportSnapshotRepository = postgres.NewReportSnapshotRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	lockTTL := c.Config.Redis.LockTTL

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Revocations, c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository, c.EventPublisher)
	c.TimeEntryService = serviceimpl.NewTimeEntryService(c.TimeEntryRepository, c.TaskRepository, c.Locker, lockTTL, c.EventPublisher)
	c.FriendshipService = serviceimpl.NewFriendshipService(c.FriendshipRepository, c.UserRepository, c.Locker, lockTTL, c.EventPublisher)
	c.ReportService = serviceimpl.NewReportService(c.TaskRepository, c.FriendshipRepository, serviceimpl.ReportOptions{
		UpcomingDays:      c.Config.Reports.UpcomingDays,
		ActivityFeedLimit: c.Config.Reports.ActivityFeedLimit,
	})
	c.ReportSnapshotService = serviceimpl.NewReportSnapshotService(c.ReportSnapshotRepository, c.ReportService, c.Storage, c.EventPublisher)

	logger.Info("Services initialized")
	return nil
}

// HealthChecks ตรวจ dependency ที่เปิดใช้อยู่สำหรับ /health
func (c *Container) HealthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.RedisClient != nil {
		checks["redis"] = c.RedisClient.Ping
	}
	if c.NATSClient != nil {
		checks["nats"] = func(ctx context.Context) error {
			if !c.NATSClient.IsConnected() {
				return errors.New("disconnected")
			}
			_, err := c.NATSClient.GetStreamInfo(ctx)
			return err
		}
	}
	return checks
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:           c.UserService,
		TaskService:           c.TaskService,
		TimeEntryService:      c.TimeEntryService,
		FriendshipService:     c.FriendshipService,
		ReportService:         c.ReportService,
		ReportSnapshotService: c.ReportSnapshotService,
		AppName:               c.Config.App.Name,
		StorageProvider:       c.Storage.GetProviderName(),
		HealthChecks:          c.HealthChecks(),
	}
}
