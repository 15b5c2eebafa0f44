package validate

import (
	"errors"
	"fmt"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Login parse + validate body đăng nhập, lưu vào Locals("loginInput")
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginRequest

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			msg := constants.MISSING_LOGIN_INPUT
			if input.Department != "" && input.Department != constants.DEPT_HK && input.Department != constants.DEPT_FO {
				msg = constants.INVALID_DEPARTMENT
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, err)
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}

// UpdateRoom parse + validate body cập nhật phòng
func UpdateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateRoomRequest

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_UPDATE_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_UPDATE_INPUT, err)
		}
		// updatedData rỗng toàn bộ thì không có gì để làm
		d := input.UpdatedData
		if d.RoomStatus == nil && d.RoomType == nil && d.CurrentGuest == nil && d.NewGuest == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_UPDATE_INPUT,
				errors.New("updatedData không có trường nào"))
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}

// QuickUpdate parse + validate body cập nhật nhanh trạng thái
func QuickUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.QuickUpdateRequest

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_QUICK_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_QUICK_INPUT, err)
		}

		c.Locals("quickInput", input)
		return c.Next()
	}
}

// RoomNoParam kiểm tra param số phòng không rỗng
func RoomNoParam(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params(key) == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf(constants.ROOM_NOT_FOUND, ""), errors.New("params invalid"))
		}
		return c.Next()
	}
}
