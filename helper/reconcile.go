package helper

import (
	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// ReconcileResult những gì engine đã phải sửa lại trên record
type ReconcileResult struct {
	Promoted       bool
	ClearedCurrent bool
	ClearedNew     bool
}

// ReconcileGuests đưa record phòng về đúng bất biến sau khi đổi trạng thái
// hoặc sửa thông tin khách:
//   - phòng ip có khách mới → khách mới dọn vào, trở thành khách hiện tại
//   - phòng trống (vd/vc) không được còn khách hiện tại
//   - không có /arr thì không được còn khách mới
//
// Không bao giờ trả lỗi; dữ liệu caller gửi lên sai bất biến sẽ bị ghi đè
// và log warning.
func ReconcileGuests(room *model.Room) ReconcileResult {
	var result ReconcileResult
	base := BaseStatus(room.RoomStatus)

	if base == constants.STATUS_IP && !room.NewGuest.IsEmpty() {
		// khách mới nhận phòng trong lúc buồng đang làm
		copier.Copy(&room.CurrentGuest, &room.NewGuest)
		room.NewGuest.Clear()
		result.Promoted = true
	}

	if isVacant(base) && !room.CurrentGuest.IsEmpty() {
		logger.L.Warn("phòng trống vẫn còn thông tin khách, tự động xóa",
			zap.String("room_no", room.RoomNo),
			zap.String("room_status", room.RoomStatus),
			zap.String("guest_name", room.CurrentGuest.Name),
		)
		room.CurrentGuest.Clear()
		result.ClearedCurrent = true
	}

	if !HasArr(room.RoomStatus) && !room.NewGuest.IsEmpty() {
		logger.L.Warn("trạng thái không có /arr nhưng vẫn còn khách mới, tự động xóa",
			zap.String("room_no", room.RoomNo),
			zap.String("room_status", room.RoomStatus),
			zap.String("guest_name", room.NewGuest.Name),
		)
		room.NewGuest.Clear()
		result.ClearedNew = true
	}

	return result
}

// ApplyRoomUpdate áp dữ liệu client gửi lên vào record rồi chạy reconcile.
// Trường nil bị bỏ qua; guest khác nil nhưng rỗng toàn bộ là yêu cầu clear
// tường minh nên vẫn được ghi đè.
func ApplyRoomUpdate(room *model.Room, input model.RoomUpdateInput) ReconcileResult {
	if input.RoomStatus != nil {
		room.RoomStatus = ResolveStatus(room.RoomStatus, *input.RoomStatus)
	}
	if input.RoomType != nil {
		room.RoomType = *input.RoomType
	}
	if input.CurrentGuest != nil {
		room.CurrentGuest = *input.CurrentGuest
	}
	if input.NewGuest != nil {
		room.NewGuest = *input.NewGuest
	}
	return ReconcileGuests(room)
}
