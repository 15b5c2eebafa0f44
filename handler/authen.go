package handler

import (
	"errors"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/middleware"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// checkDepartmentCode ưu tiên so bcrypt hash nếu deployment có cấu hình,
// không thì so trực tiếp mã plaintext
func checkDepartmentCode(code string) bool {
	if cfg.DepartmentCodeHash != "" {
		return helper.CheckDepartmentCodeHash(code, cfg.DepartmentCodeHash)
	}
	return code == cfg.DepartmentCode
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginRequest)

	if !checkDepartmentCode(input.DepartmentCode) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_DEPT_CODE, errors.New("wrong department code"))
	}

	tokenClaim := model.TokenClaim{
		Name:       input.Name,
		Department: input.Department,
	}

	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, token, refreshToken)

	logger.L.Info("user logged in",
		zap.String("name", input.Name),
		zap.String("department", input.Department),
	)

	return c.JSON(fiber.Map{
		"success": true,
		"message": constants.LOGIN_SUCCESS,
		"user": fiber.Map{
			"name":       tokenClaim.Name,
			"department": tokenClaim.Department,
			"login_time": time.Now().Format("15:04 02/01/2006"),
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	tokenClaim := helper.ClaimFromToken(token)

	newAccess, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefresh, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, newAccess, newRefresh)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"user": tokenClaim})
}

func Logout(c *fiber.Ctx) error {
	claim := middleware.UserFromContext(c)
	logger.L.Info("user logged out", zap.String("name", claim.Name))

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})

	return utils.SuccessMessage(c, fiber.StatusOK, constants.LOGOUT_SUCCESS, nil)
}

// UserInfo trả thông tin nhân viên đang đăng nhập cho dashboard
func UserInfo(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, middleware.UserFromContext(c))
}
