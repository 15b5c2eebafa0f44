package handler

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHkLogs(t *testing.T, logStore interface {
	Insert(log *model.HkLog) error
}) {
	t.Helper()
	now := time.Now()
	require.NoError(t, logStore.Insert(&model.HkLog{
		Timestamp: now, UserName: "Lan", Department: constants.DEPT_HK,
		RoomNo: "101", ActionType: helper.ActionCleanVacant,
		OldStatus: "vd", NewStatus: "vc", ActionDetail: "VD → VC",
	}))
	require.NoError(t, logStore.Insert(&model.HkLog{
		Timestamp: now, UserName: "Hoa", Department: constants.DEPT_HK,
		RoomNo: "203", ActionType: helper.ActionCleanOccupied,
		OldStatus: "od", NewStatus: "oc", ActionDetail: "OD → OC",
	}))
}

func TestGetHkReport(t *testing.T) {
	app, _, logStore := newTestApp(t, constants.DEPT_HK)
	app.Get("/api/report/hk", GetHkReport)
	seedHkLogs(t, logStore)

	code, body := getJSON(t, app, "/api/report/hk")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_records"])

	stats := body["statistics"].(map[string]any)
	assert.Equal(t, float64(2), stats["total_actions"])
}

func TestExportHkReport(t *testing.T) {
	app, _, logStore := newTestApp(t, constants.DEPT_FO)
	app.Get("/api/report/hk/export", ExportHkReport)
	seedHkLogs(t, logStore)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/report/hk/export", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	report := string(raw)
	assert.Contains(t, report, "BÁO CÁO HOẠT ĐỘNG HOUSEKEEPING")
	assert.Contains(t, report, "Tổng số thao tác: 2")
	assert.Contains(t, report, "101")
	assert.Contains(t, report, "Lan (HK)")
	assert.Contains(t, report, "Hoa: 1 thao tác")
}

func TestClearHkReport(t *testing.T) {
	app, _, logStore := newTestApp(t, constants.DEPT_FO)
	app.Post("/api/report/hk/clear", ClearHkReport)
	seedHkLogs(t, logStore)

	code, body := postJSON(t, app, "/api/report/hk/clear", fiber.Map{})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(2), body["deleted"])

	entries, err := logStore.Since(time.Time{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
