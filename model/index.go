package model

// TokenClaim thông tin người dùng lưu trong JWT (không có bảng account,
// nhân viên đăng nhập bằng tên + mã bộ phận chung)
type TokenClaim struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

type LoginRequest struct {
	Name           string `json:"name" validate:"required"`
	Department     string `json:"department" validate:"required,oneof=HK FO"`
	DepartmentCode string `json:"departmentCode" validate:"required"`
}

// FileInfo thông tin lần đồng bộ gần nhất, hiển thị trên dashboard
type FileInfo struct {
	LastUpdated   *string `json:"last_updated"`
	LastUpdatedBy string  `json:"last_updated_by"`
	TotalRooms    int64   `json:"total_rooms"`
	LastSyncRooms int     `json:"last_sync_rooms"`
}
