package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"go.uber.org/zap"
)

// Loại thao tác trong báo cáo ca
const (
	ActionCleanVacant   = "dọn phòng trống"
	ActionCleanOccupied = "dọn phòng ở"
)

type transitionPair struct{ from, to string }

// importantTransitions chỉ các chuyển đổi này mới được ghi vào báo cáo ca.
// Các chuyển hợp lệ khác (vd dnd->oc) không có vết audit.
var importantTransitions = map[transitionPair]string{
	{"vd", "vc"}:         ActionCleanVacant,
	{"vd/arr", "vc/arr"}: ActionCleanVacant,
	{"od", "oc"}:         ActionCleanOccupied,
	{"od", "dnd"}:        ActionCleanOccupied,
	{"od", "nn"}:         ActionCleanOccupied,
}

// LogRoomStatusChange ghi nhật ký một lần đổi trạng thái phòng. Chuyển đổi
// không thuộc nhóm quan trọng bị bỏ qua, không phải lỗi.
func LogRoomStatusChange(roomNo, oldStatus, newStatus, userName, department string) {
	actionType, ok := importantTransitions[transitionPair{oldStatus, newStatus}]
	if !ok {
		return
	}

	entry := model.HkLog{
		Timestamp:    time.Now(),
		UserName:     userName,
		Department:   department,
		RoomNo:       roomNo,
		ActionType:   actionType,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		ActionDetail: fmt.Sprintf("%s → %s", strings.ToUpper(oldStatus), strings.ToUpper(newStatus)),
	}

	if err := store.Logs.Insert(&entry); err != nil {
		logger.L.Error("lỗi ghi log HK",
			zap.String("room_no", roomNo),
			zap.Error(err),
		)
		return
	}
	logger.L.Info("đã ghi log HK",
		zap.String("room_no", roomNo),
		zap.String("action_type", actionType),
		zap.String("user", userName),
	)
}

// ReportStart mốc bắt đầu báo cáo ca: 8h15 hôm nay, hoặc 8h15 hôm qua nếu
// bây giờ vẫn trước mốc đó
func ReportStart(now time.Time, hour, minute int) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

// GetTodayReport lấy hoạt động HK từ mốc ca đến hiện tại
func GetTodayReport(hour, minute int) ([]model.HkLog, error) {
	return store.Logs.Since(ReportStart(time.Now(), hour, minute))
}

// GetReportStatistics tổng hợp thống kê theo nhân viên, loại thao tác và
// bộ phận từ dữ liệu báo cáo
func GetReportStatistics(reportData []model.HkLog) model.ReportStatistics {
	stats := model.ReportStatistics{
		TotalActions: len(reportData),
		StaffStats:   map[string]map[string]int{},
		ActionTypes: map[string]int{
			ActionCleanVacant:   0,
			ActionCleanOccupied: 0,
		},
		DepartmentStats: map[string]int{
			constants.DEPT_HK: 0,
			constants.DEPT_FO: 0,
		},
	}

	for _, log := range reportData {
		staff := stats.StaffStats[log.UserName]
		if staff == nil {
			staff = map[string]int{"total": 0}
			stats.StaffStats[log.UserName] = staff
		}
		staff["total"]++
		staff[log.ActionType]++

		stats.ActionTypes[log.ActionType]++
		stats.DepartmentStats[log.Department]++
	}

	return stats
}
