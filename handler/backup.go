package handler

import (
	"errors"
	"fmt"
	"os"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/gofiber/fiber/v2"
)

// ManualBackup FO chủ động tạo một bản sao lưu
func ManualBackup(c *fiber.Ctx) error {
	if err := helper.CreateBackup(cfg.BackupDir, cfg.BackupRetention); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BACKUP_CREATE_FAILED, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, constants.BACKUP_CREATED, nil)
}

// ListBackups liệt kê các bản sao lưu hiện có
func ListBackups(c *fiber.Ctx) error {
	backups, err := helper.ListBackups(cfg.BackupDir)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    backups,
		"total":   len(backups),
	})
}

// RestoreBackup khôi phục bảng phòng từ một file backup (chỉ FO)
func RestoreBackup(c *fiber.Ctx) error {
	var input struct {
		Filename string `json:"filename"`
	}
	if err := c.BodyParser(&input); err != nil || input.Filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BACKUP_FILE_MISSING,
			errors.New("filename required"))
	}

	total, err := helper.RestoreBackup(cfg.BackupDir, input.Filename, cfg.BackupRetention)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BACKUP_FILE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.BACKUP_RESTORE_FAILED, err)
	}

	go PublishRoomsUpdate()
	return utils.SuccessMessage(c, fiber.StatusOK,
		fmt.Sprintf(constants.BACKUP_RESTORED, input.Filename), fiber.Map{
			"total_rooms": total,
		})
}
