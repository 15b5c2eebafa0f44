package helper

import (
	"strings"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"go.uber.org/zap"
)

// sheet có 10 cột cố định: room no, status, rồi 4 cột cho mỗi nhóm khách
const sheetColumns = 10

// RoomTypeClassifier suy loại phòng từ số phòng; chính sách thay đổi theo
// khách sạn nên để cắm được
type RoomTypeClassifier func(roomNo string) string

// ClassifyRoomType loại phòng theo chữ số đầu của số phòng
func ClassifyRoomType(roomNo string) string {
	switch {
	case strings.HasPrefix(roomNo, "1"):
		return "Standard"
	case strings.HasPrefix(roomNo, "2"):
		return "Superior"
	case strings.HasPrefix(roomNo, "3"):
		return "Deluxe"
	case strings.HasPrefix(roomNo, "4"):
		return "Suite"
	default:
		return "Standard"
	}
}

// FloorOf tầng = chữ số đầu của số phòng
func FloorOf(roomNo string) int {
	if roomNo != "" && roomNo[0] >= '0' && roomNo[0] <= '9' {
		return int(roomNo[0] - '0')
	}
	return 1
}

// ProcessRoomData chuyển dữ liệu thô từ sheet thành danh sách phòng chuẩn.
// Dòng đầu là header nên bị bỏ; dòng thiếu cột được đệm ô rỗng; dòng
// không có số phòng bị bỏ qua trong im lặng. Một dòng lỗi không làm hỏng
// cả batch.
func ProcessRoomData(values [][]string, defaultStatus string, classify RoomTypeClassifier) []model.Room {
	if len(values) < 2 {
		return nil
	}
	if classify == nil {
		classify = ClassifyRoomType
	}

	now := time.Now()
	rooms := make([]model.Room, 0, len(values)-1)

	for rowIndex, row := range values[1:] {
		for len(row) < sheetColumns {
			row = append(row, "")
		}

		roomNo := strings.TrimSpace(row[0])
		if roomNo == "" {
			continue
		}

		room := model.Room{
			RoomNo:     roomNo,
			RoomType:   classify(roomNo),
			RoomStatus: CleanRoomStatus(row[1], defaultStatus),
			Floor:      FloorOf(roomNo),
			CurrentGuest: model.Guest{
				Name:     CleanGuestName(row[2]),
				CheckIn:  ParseDate(row[3]),
				CheckOut: ParseDate(row[4]),
				Pax:      ParsePax(row[5]),
			},
			NewGuest: model.Guest{
				Name:     CleanGuestName(row[6]),
				CheckIn:  ParseDate(row[7]),
				CheckOut: ParseDate(row[8]),
				Pax:      ParsePax(row[9]),
			},
			LastUpdated: now,
		}

		// record mới cũng phải thỏa bất biến như record đã có
		if r := ReconcileGuests(&room); r.ClearedCurrent || r.ClearedNew || r.Promoted {
			logger.L.Debug("đã chuẩn hóa dữ liệu khách của dòng sheet",
				zap.Int("row", rowIndex+2),
				zap.String("room_no", roomNo),
			)
		}

		rooms = append(rooms, room)
	}

	return rooms
}
