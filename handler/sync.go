package handler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/middleware"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// syncMu đồng bộ là delete-then-insert cả bảng nên tuyệt đối không chạy song song
var syncMu sync.Mutex

func recordSyncEvent(syncID, actor string, total int, success bool, errMsg string) {
	event := model.SyncEvent{
		SyncID:       syncID,
		SyncTime:     time.Now(),
		SyncedBy:     actor,
		TotalRooms:   total,
		Success:      success,
		ErrorMessage: errMsg,
	}
	if err := store.Syncs.Insert(&event); err != nil {
		logger.L.Error("lỗi ghi sync event", zap.Error(err))
	}
}

// RefreshData đồng bộ lại toàn bộ bảng phòng từ Google Sheets (chỉ FO).
// Fetch thất bại thì bảng hiện có được giữ nguyên và sự kiện sync fail
// vẫn được ghi lại.
func RefreshData(c *fiber.Ctx) error {
	if !syncMu.TryLock() {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SYNC_ALREADY_RUNNING,
			errors.New("sync in progress"))
	}
	defer syncMu.Unlock()

	claim := middleware.UserFromContext(c)
	actor := fmt.Sprintf("%s (%s)", claim.Name, claim.Department)
	syncID := uuid.NewString()

	// backup trước khi refresh vì sẽ thay đổi nhiều dữ liệu
	go helper.CreateBackup(cfg.BackupDir, cfg.BackupRetention)

	payload, err := sheetsClient.FetchValues(c.UserContext())
	if err != nil {
		recordSyncEvent(syncID, actor, 0, false, err.Error())
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.REFRESH_FAILED, err)
	}

	rooms := helper.ProcessRoomData(payload.Values, cfg.DefaultRoomStatus, nil)
	if len(rooms) == 0 {
		recordSyncEvent(syncID, actor, 0, false, "không có dữ liệu phòng sau khi xử lý")
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.REFRESH_FAILED,
			errors.New("sheet không có dòng hợp lệ"))
	}

	if err := store.Rooms.ReplaceAll(rooms); err != nil {
		recordSyncEvent(syncID, actor, 0, false, err.Error())
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REFRESH_FAILED, err)
	}

	recordSyncEvent(syncID, actor, len(rooms), true, "")
	go PublishRoomsUpdate()

	logger.L.Info("data refreshed from Google Sheets",
		zap.String("sync_id", syncID),
		zap.String("by", actor),
		zap.Int("total_rooms", len(rooms)),
	)

	return utils.SuccessMessage(c, fiber.StatusOK, constants.REFRESH_SUCCESS, fiber.Map{
		"sync_id":     syncID,
		"total_rooms": len(rooms),
	})
}
