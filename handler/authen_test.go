package handler

import (
	"testing"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/config"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/middleware"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T, appCfg config.App) *fiber.App {
	t.Helper()
	helper.JwtSecret = []byte("test-secret")

	Init(appCfg)

	app := fiber.New()
	app.Post("/api/auth/login", validate.Login(), Login)
	app.Get("/api/user-info", middleware.Protected(), UserInfo)
	return app
}

func TestLoginSuccess(t *testing.T) {
	app := newAuthApp(t, config.App{DepartmentCode: "123"})

	code, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"name":           "Lan",
		"department":     constants.DEPT_HK,
		"departmentCode": "123",
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "Lan", user["name"])
	assert.Equal(t, constants.DEPT_HK, user["department"])
}

func TestLoginWrongCode(t *testing.T) {
	app := newAuthApp(t, config.App{DepartmentCode: "123"})

	code, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"name":           "Lan",
		"department":     constants.DEPT_HK,
		"departmentCode": "999",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, false, body["success"])
}

func TestLoginPrefersBcryptHash(t *testing.T) {
	hash, err := helper.HashDepartmentCode("bi-mat")
	require.NoError(t, err)

	app := newAuthApp(t, config.App{DepartmentCode: "123", DepartmentCodeHash: hash})

	// hash được cấu hình thì mã plaintext cũ không còn tác dụng
	code, _ := postJSON(t, app, "/api/auth/login", fiber.Map{
		"name":           "Lan",
		"department":     constants.DEPT_FO,
		"departmentCode": "123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = postJSON(t, app, "/api/auth/login", fiber.Map{
		"name":           "Lan",
		"department":     constants.DEPT_FO,
		"departmentCode": "bi-mat",
	})
	assert.Equal(t, fiber.StatusOK, code)
}

func TestLoginRejectsUnknownDepartment(t *testing.T) {
	app := newAuthApp(t, config.App{DepartmentCode: "123"})

	code, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"name":           "Lan",
		"department":     "SALES",
		"departmentCode": "123",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, constants.INVALID_DEPARTMENT, body["message"])
}

func TestLoginMissingDepartment(t *testing.T) {
	app := newAuthApp(t, config.App{DepartmentCode: "123"})

	code, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"name":           "Lan",
		"departmentCode": "123",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, constants.MISSING_LOGIN_INPUT, body["message"])
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	app := newAuthApp(t, config.App{DepartmentCode: "123"})

	code, body := getJSON(t, app, "/api/user-info")
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, false, body["success"])
}
