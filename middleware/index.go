package middleware

import (
	"errors"
	"strings"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/utils"
	"github.com/gofiber/fiber/v2"
)

// Protected yêu cầu JWT hợp lệ trong cookie access_token hoặc header
// Authorization: Bearer, lưu claim vào Locals("user")
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", helper.ClaimFromToken(jwtToken))
		return c.Next()
	}
}

// UserFromContext lấy claim đã lưu bởi Protected
func UserFromContext(c *fiber.Ctx) model.TokenClaim {
	if claim, ok := c.Locals("user").(model.TokenClaim); ok {
		return claim
	}
	return model.TokenClaim{}
}

// RequireFO chỉ Front Office được qua
func RequireFO() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := UserFromContext(c)
		if claim.Department != constants.DEPT_FO {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FO_ONLY, errors.New("fo required"))
		}
		return c.Next()
	}
}

// RequireHK HK và FO đều được qua
func RequireHK() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := UserFromContext(c)
		if claim.Department != constants.DEPT_HK && claim.Department != constants.DEPT_FO {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.HK_FO_ONLY, errors.New("hk or fo required"))
		}
		return c.Next()
	}
}
