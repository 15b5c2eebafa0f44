package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/middleware"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func GetRooms(c *fiber.Ctx) error {
	rooms, err := store.Rooms.List()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.GET_ROOMS_FAILED, err)
	}

	fileInfo, _ := getFileInfo()
	return c.JSON(fiber.Map{
		"success":   true,
		"data":      rooms,
		"total":     len(rooms),
		"file_info": fileInfo,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func GetRoomDetail(c *fiber.Ctx) error {
	roomNo := c.Params("roomNo")

	room, err := store.Rooms.Get(roomNo)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound,
				fmt.Sprintf(constants.ROOM_NOT_FOUND, roomNo), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func SearchRooms(c *fiber.Ctx) error {
	term := c.Query("q")
	rooms, err := store.Rooms.Search(term)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": rooms, "total": len(rooms)})
}

func GetRoomsByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	rooms, err := store.Rooms.ListByStatus(status)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": rooms, "total": len(rooms)})
}

// GetStatistics đếm số phòng theo từng trạng thái
func GetStatistics(c *fiber.Ctx) error {
	counts, err := store.Rooms.StatusCounts()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, counts)
}

// GetFloors nhóm phòng theo tầng cho view dashboard
func GetFloors(c *fiber.Ctx) error {
	rooms, err := store.Rooms.List()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.GET_ROOMS_FAILED, err)
	}

	floors := map[string][]model.Room{}
	for _, room := range rooms {
		key := fmt.Sprintf("%d", room.Floor)
		floors[key] = append(floors[key], room)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, floors)
}

// applyUpdate lõi dùng chung của hai đường cập nhật: kiểm tra phân quyền
// chuyển trạng thái, reconcile khách, ghi DB, audit, publish websocket và
// backup nền
func applyUpdate(c *fiber.Ctx, roomNo string, input model.RoomUpdateInput) error {
	claim := middleware.UserFromContext(c)

	room, err := store.Rooms.Get(roomNo)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound,
				fmt.Sprintf(constants.ROOM_NOT_FOUND, roomNo), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	oldStatus := room.RoomStatus

	if input.RoomStatus != nil {
		if err := helper.CheckTransition(oldStatus, *input.RoomStatus, claim.Department); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error(), err)
		}
	}

	helper.ApplyRoomUpdate(room, input)
	room.LastUpdated = time.Now()
	room.UpdatedBy = fmt.Sprintf("%s (%s)", claim.Name, claim.Department)

	if err := store.Rooms.Update(room); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_ROOM_FAILED, err)
	}

	if oldStatus != room.RoomStatus {
		helper.LogRoomStatusChange(roomNo, oldStatus, room.RoomStatus, claim.Name, claim.Department)
	}

	// backup và push realtime chạy nền, không chặn response
	go helper.CreateBackup(cfg.BackupDir, cfg.BackupRetention)
	go PublishRoomsUpdate()

	logger.L.Info("room updated",
		zap.String("room_no", roomNo),
		zap.String("old_status", oldStatus),
		zap.String("new_status", room.RoomStatus),
		zap.String("by", room.UpdatedBy),
	)
	return nil
}

// UpdateRoom cập nhật một phòng theo payload {roomNo, updatedData}
func UpdateRoom(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateRoomRequest)

	if err := applyUpdate(c, input.RoomNo, input.UpdatedData); err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusOK,
		fmt.Sprintf(constants.UPDATE_ROOM_SUCCESS, input.RoomNo), nil)
}

// HkQuickUpdate đường tắt chỉ đổi trạng thái cho HK; bảng chuyển trạng thái
// được áp cho mọi bộ phận trên đường này
func HkQuickUpdate(c *fiber.Ctx) error {
	input := c.Locals("quickInput").(model.QuickUpdateRequest)

	room, err := store.Rooms.Get(input.RoomNo)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound,
				fmt.Sprintf(constants.ROOM_NOT_FOUND, input.RoomNo), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	oldStatus := room.RoomStatus

	if err := helper.CheckTransition(oldStatus, input.NewStatus, constants.DEPT_HK); err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error(), err)
	}

	if err := applyUpdate(c, input.RoomNo, model.RoomUpdateInput{RoomStatus: &input.NewStatus}); err != nil {
		return err
	}

	updated, _ := store.Rooms.Get(input.RoomNo)
	newStatus := input.NewStatus
	if updated != nil {
		newStatus = updated.RoomStatus
	}
	return utils.SuccessMessage(c, fiber.StatusOK,
		fmt.Sprintf(constants.QUICK_UPDATE_SUCCESS, input.RoomNo, oldStatus, newStatus), nil)
}

func getFileInfo() (model.FileInfo, error) {
	total, err := store.Rooms.Count()
	if err != nil {
		return model.FileInfo{}, err
	}

	info := model.FileInfo{TotalRooms: total}
	last, err := store.Syncs.Latest()
	if err != nil {
		return info, err
	}
	if last != nil {
		ts := last.SyncTime.Format(time.RFC3339)
		info.LastUpdated = &ts
		info.LastUpdatedBy = last.SyncedBy
		info.LastSyncRooms = last.TotalRooms
	}
	return info, nil
}

// GetFileInfo thông tin lần đồng bộ gần nhất
func GetFileInfo(c *fiber.Ctx) error {
	info, err := getFileInfo()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, info)
}

// GetTasksheet dữ liệu cho bản in tasksheet của FO
func GetTasksheet(c *fiber.Ctx) error {
	rooms, err := store.Rooms.List()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.GET_ROOMS_FAILED, err)
	}

	fileInfo, _ := getFileInfo()
	return c.JSON(fiber.Map{
		"success":      true,
		"rooms":        rooms,
		"file_info":    fileInfo,
		"current_time": time.Now().Format(time.RFC3339),
	})
}
