package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetHkReport báo cáo hoạt động HK từ mốc ca (mặc định 8h15) đến hiện tại
func GetHkReport(c *fiber.Ctx) error {
	reportData, err := helper.GetTodayReport(cfg.ReportStartHour, cfg.ReportStartMinute)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	statistics := helper.GetReportStatistics(reportData)

	return c.JSON(fiber.Map{
		"success":       true,
		"data":          reportData,
		"statistics":    statistics,
		"report_period": fmt.Sprintf("Từ %dh%02d đến hiện tại", cfg.ReportStartHour, cfg.ReportStartMinute),
		"total_records": len(reportData),
	})
}

// ExportHkReport bản in báo cáo ca dạng text cho FO
func ExportHkReport(c *fiber.Ctx) error {
	reportData, err := helper.GetTodayReport(cfg.ReportStartHour, cfg.ReportStartMinute)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	statistics := helper.GetReportStatistics(reportData)

	var b strings.Builder
	b.WriteString("BÁO CÁO HOẠT ĐỘNG HOUSEKEEPING\n")
	fmt.Fprintf(&b, "Từ %dh%02d đến %s\n\n",
		cfg.ReportStartHour, cfg.ReportStartMinute, time.Now().Format("15:04 02/01/2006"))
	fmt.Fprintf(&b, "Tổng số thao tác: %d\n\n", statistics.TotalActions)

	for _, log := range reportData {
		fmt.Fprintf(&b, "%s  phòng %-6s %-16s %s (%s)\n",
			log.Timestamp.Format("15:04"), log.RoomNo, log.ActionType, log.UserName, log.Department)
	}

	b.WriteString("\nTheo nhân viên:\n")
	for name, staff := range statistics.StaffStats {
		fmt.Fprintf(&b, "  %s: %d thao tác\n", name, staff["total"])
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(b.String())
}

// GetRoomHistory lịch sử hoạt động của một phòng
func GetRoomHistory(c *fiber.Ctx) error {
	roomNo := c.Params("roomNo")
	logs, err := store.Logs.ByRoom(roomNo, 50)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, logs)
}

// ClearHkReport xóa toàn bộ lịch sử báo cáo HK (chỉ FO)
func ClearHkReport(c *fiber.Ctx) error {
	deleted, err := store.Logs.Clear()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CLEAR_REPORT_FAILED, err)
	}

	logger.L.Info("đã xóa lịch sử báo cáo HK", zap.Int64("deleted", deleted))
	return utils.SuccessMessage(c, fiber.StatusOK, constants.REPORT_CLEARED, fiber.Map{
		"deleted": deleted,
	})
}
