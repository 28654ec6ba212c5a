package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NATS     NATSConfig // domain event stream (optional)
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	Reports  ReportsConfig
}

// RedisConfig สำหรับ lock ของ timer/friend request และ token revocation
type RedisConfig struct {
	URL      string // redis://localhost:6379 (ว่าง = ปิด)
	Password string
	DB       int
	LockTTL  time.Duration
}

type AppConfig struct {
	Name         string
	Port         string
	Env          string
	AllowOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	LogLevel string // silent, error, warn, info
}

// NATSConfig configuration สำหรับ NATS JetStream
type NATSConfig struct {
	URL string // nats://localhost:4222 (ว่าง = ปิด)
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

// StorageConfig ที่เก็บไฟล์ export ของ report snapshot
type StorageConfig struct {
	Type     string // local, s3
	BasePath string // สำหรับ local: ./exports
	BaseURL  string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/exports)

	// S3-Compatible Storage (MinIO / Cloudflare R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000 หรือ xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool   // false สำหรับ MinIO local, true สำหรับ R2
	Region    string // auto สำหรับ R2
	PublicURL string // URL สำหรับเข้าถึงไฟล์ public (optional)
}

type ReportsConfig struct {
	UpcomingDays      int // ค่า default ของ upcoming-deadlines
	ActivityFeedLimit int
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	lockTTL, err := time.ParseDuration(getEnv("REDIS_LOCK_TTL", "5s"))
	if err != nil {
		return nil, errors.New("REDIS_LOCK_TTL must be a duration such as 5s")
	}

	// 10h ตาม lifetime ของ token เดิม
	jwtExpiresIn, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "10h"))
	if err != nil {
		return nil, errors.New("JWT_EXPIRES_IN must be a duration such as 10h")
	}

	upcomingDays, _ := strconv.Atoi(getEnv("REPORTS_UPCOMING_DAYS", "7"))
	if upcomingDays < 1 {
		upcomingDays = 7
	}
	activityLimit, _ := strconv.Atoi(getEnv("REPORTS_ACTIVITY_LIMIT", "20"))
	if activityLimit < 1 {
		activityLimit = 20
	}

	config := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "TimeGuard API"),
			Port:         getEnv("APP_PORT", "8080"),
			Env:          getEnv("APP_ENV", "development"),
			AllowOrigins: parseList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "timeguard"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		NATS: NATSConfig{
			URL: os.Getenv("NATS_URL"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			LockTTL:  lockTTL,
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", defaultJWTSecret),
			ExpiresIn: jwtExpiresIn,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", "local"),
			BasePath: getEnv("STORAGE_BASE_PATH", "./exports"),
			BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/exports"),
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "timeguard-reports"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Reports: ReportsConfig{
			UpcomingDays:      upcomingDays,
			ActivityFeedLimit: activityLimit,
		},
	}

	if config.IsProduction() && config.JWT.Secret == defaultJWTSecret {
		return nil, errors.New("JWT_SECRET must be set in production")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseList แปลง comma-separated string เป็น slice
// เช่น "http://a.com, http://b.com" -> ["http://a.com", "http://b.com"]
func parseList(s string) []string {
	var items []string
	for _, p := range strings.Split(s, ",") {
		item := strings.TrimSpace(p)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
