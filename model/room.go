package model

import "time"

// Guest thông tin khách của một phòng (khách đang ở hoặc khách sắp đến)
type Guest struct {
	Name     string `json:"name"`
	CheckIn  string `json:"checkIn"`  // DD-MM-YY, rỗng nếu không có
	CheckOut string `json:"checkOut"` // DD-MM-YY, rỗng nếu không có
	Pax      int    `json:"pax"`
}

// IsEmpty báo guest không có dữ liệu (dùng phân biệt "clear" với "giữ nguyên")
func (g Guest) IsEmpty() bool {
	return g.Name == "" && g.CheckIn == "" && g.CheckOut == "" && g.Pax == 0
}

// Clear xoá toàn bộ thông tin khách
func (g *Guest) Clear() {
	g.Name = ""
	g.CheckIn = ""
	g.CheckOut = ""
	g.Pax = 0
}

type Room struct {
	RoomNo     string `gorm:"primaryKey" json:"roomNo"`
	RoomType   string `json:"roomType"`
	RoomStatus string `gorm:"not null;default:vd" json:"roomStatus"`
	Floor      int    `json:"floor"`

	// Khách đang ở: cột guest_*, pax là cột int riêng (không nhét vào notes
	// như schema cũ)
	CurrentGuest Guest `gorm:"embedded;embeddedPrefix:guest_" json:"currentGuest"`
	// Khách sắp đến, chỉ có nghĩa khi status mang /arr: cột new_guest_*
	NewGuest Guest `gorm:"embedded;embeddedPrefix:new_guest_" json:"newGuest"`

	LastUpdated time.Time `json:"lastUpdated"`
	UpdatedBy   string    `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RoomUpdateInput các trường được phép sửa; con trỏ nil nghĩa là bỏ qua,
// guest khác nil nhưng rỗng toàn bộ nghĩa là yêu cầu clear.
type RoomUpdateInput struct {
	RoomStatus   *string `json:"roomStatus"`
	RoomType     *string `json:"roomType"`
	CurrentGuest *Guest  `json:"currentGuest"`
	NewGuest     *Guest  `json:"newGuest"`
}

type UpdateRoomRequest struct {
	RoomNo      string          `json:"roomNo" validate:"required"`
	UpdatedData RoomUpdateInput `json:"updatedData"`
}

type QuickUpdateRequest struct {
	RoomNo    string `json:"roomNo" validate:"required"`
	NewStatus string `json:"newStatus" validate:"required"`
}
