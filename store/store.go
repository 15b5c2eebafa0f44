package store

import (
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
)

// RoomStore trừu tượng hóa bảng phòng; engine chuyển trạng thái và
// reconcile chỉ được phụ thuộc interface này, không đụng SQL.
type RoomStore interface {
	Get(roomNo string) (*model.Room, error)
	List() ([]model.Room, error)
	// ReplaceAll xóa toàn bộ bảng rồi ghi danh sách mới trong một transaction
	ReplaceAll(rooms []model.Room) error
	Update(room *model.Room) error
	Search(term string) ([]model.Room, error)
	ListByStatus(status string) ([]model.Room, error)
	StatusCounts() (map[string]int64, error)
	Count() (int64, error)
}

// LogStore append-only nhật ký hoạt động HK
type LogStore interface {
	Insert(log *model.HkLog) error
	Since(t time.Time) ([]model.HkLog, error)
	ByRoom(roomNo string, limit int) ([]model.HkLog, error)
	Clear() (int64, error)
}

// SyncStore lịch sử các lần đồng bộ từ Google Sheets
type SyncStore interface {
	Insert(event *model.SyncEvent) error
	Latest() (*model.SyncEvent, error)
}

// Package-level singletons, main gán implementation gorm lúc khởi động;
// test thay bằng bản in-memory.
var (
	Rooms RoomStore
	Logs  LogStore
	Syncs SyncStore
)
