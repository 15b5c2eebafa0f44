package model

import "time"

// HkLog một sự kiện trong nhật ký hoạt động HK (bảng hk_logs)
type HkLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
	UserName     string    `json:"userName"`
	Department   string    `json:"department"`
	RoomNo       string    `gorm:"index" json:"roomNo"`
	ActionType   string    `json:"actionType"`
	OldStatus    string    `json:"oldStatus"`
	NewStatus    string    `json:"newStatus"`
	ActionDetail string    `json:"actionDetail"`
}

// SyncEvent một lần đồng bộ dữ liệu từ Google Sheets (bảng sync_events)
type SyncEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SyncID       string    `gorm:"size:36" json:"syncId"`
	SyncTime     time.Time `gorm:"index" json:"syncTime"`
	SyncedBy     string    `json:"syncedBy"`
	TotalRooms   int       `json:"totalRooms"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"errorMessage"`
}

// ReportStatistics thống kê tổng hợp cho báo cáo ca
type ReportStatistics struct {
	TotalActions    int                       `json:"total_actions"`
	StaffStats      map[string]map[string]int `json:"staff_stats"`
	ActionTypes     map[string]int            `json:"action_types"`
	DepartmentStats map[string]int            `json:"department_stats"`
}
