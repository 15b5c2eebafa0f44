package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường theo key (đọc .env nếu có)
func Config(key string) string {
	// load .env file
	godotenv.Load(".env")
	return os.Getenv(key)
}

func configDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func configInt(key string, fallback int) int {
	if v := Config(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// App gom toàn bộ cấu hình runtime thành một struct, truyền vào các
// component lúc khởi tạo thay vì đọc env rải rác.
type App struct {
	// Google Sheets
	SheetsAPIKey  string
	SpreadsheetID string
	RangeName     string

	// Trạng thái mặc định khi ô status trên sheet bị bỏ trống.
	// Hai bản triển khai cũ dùng 'vc' và 'vd' khác nhau, nên bắt buộc
	// cấu hình theo deployment; mặc định theo bản đang chạy là 'vd'.
	DefaultRoomStatus string

	// Auth
	JWTSecret          string
	DepartmentCode     string
	DepartmentCodeHash string // bcrypt hash, ưu tiên hơn DepartmentCode nếu có

	// Báo cáo HK tính từ mốc giờ này mỗi ngày
	ReportStartHour   int
	ReportStartMinute int

	// Backup
	BackupDir       string
	BackupRetention int

	RedisAddr string
	LogLevel  string
}

func Load() App {
	return App{
		SheetsAPIKey:  Config("SHEETS_API_KEY"),
		SpreadsheetID: Config("SPREADSHEET_ID"),
		RangeName:     configDefault("RANGE_NAME", "A2:J63"),

		DefaultRoomStatus: configDefault("DEFAULT_ROOM_STATUS", "vd"),

		JWTSecret:          Config("JWT_SECRET"),
		DepartmentCode:     configDefault("DEPARTMENT_CODE", "123"),
		DepartmentCodeHash: Config("DEPARTMENT_CODE_HASH"),

		ReportStartHour:   configInt("HK_REPORT_START_HOUR", 8),
		ReportStartMinute: configInt("HK_REPORT_START_MINUTE", 15),

		BackupDir:       configDefault("BACKUP_DIR", "data/backups"),
		BackupRetention: configInt("BACKUP_RETENTION_COUNT", 5),

		RedisAddr: configDefault("REDIS_ADDR", "localhost:6379"),
		LogLevel:  configDefault("LOG_LEVEL", "info"),
	}
}
