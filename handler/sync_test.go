package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncApp(t *testing.T, sheetURL string, rooms ...model.Room) (*fiber.App, *store.MemoryRoomStore, *store.MemorySyncStore) {
	app, roomStore, _ := newTestApp(t, constants.DEPT_FO, rooms...)
	syncStore := store.NewMemorySyncStore()
	store.Syncs = syncStore

	sheetsClient = helper.NewSheetsClient("test-key", "sheet-id", "A2:J63").SetBaseURL(sheetURL)
	app.Post("/api/refresh", RefreshData)

	return app, roomStore, syncStore
}

func TestRefreshDataReplacesTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(helper.SheetValues{
			Range: "A2:J63",
			Values: [][]string{
				{"Room", "Status"},
				{"101", "VD"},
				{"203", "OC", "Nguyễn Văn A", "1/5/2024", "3/5/2024", "2"},
			},
		})
	}))
	defer srv.Close()

	app, roomStore, syncStore := newSyncApp(t, srv.URL,
		model.Room{RoomNo: "999", RoomStatus: "oc"},
	)

	code, body := postJSON(t, app, "/api/refresh", fiber.Map{})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_rooms"])

	// bảng được thay toàn bộ, phòng cũ không còn
	_, err := roomStore.Get("999")
	assert.ErrorIs(t, err, store.ErrRoomNotFound)

	room, err := roomStore.Get("203")
	require.NoError(t, err)
	assert.Equal(t, "oc", room.RoomStatus)
	assert.Equal(t, "Nguyễn Văn A", room.CurrentGuest.Name)

	event, err := syncStore.Latest()
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.True(t, event.Success)
	assert.Equal(t, 2, event.TotalRooms)
	assert.Equal(t, "Lan (FO)", event.SyncedBy)
}

func TestRefreshDataFetchFailureKeepsTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":500}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	app, roomStore, syncStore := newSyncApp(t, srv.URL,
		model.Room{RoomNo: "101", RoomStatus: "vd"},
	)

	code, body := postJSON(t, app, "/api/refresh", fiber.Map{})
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.Equal(t, false, body["success"])

	// bảng hiện có phải còn nguyên
	room, err := roomStore.Get("101")
	require.NoError(t, err)
	assert.Equal(t, "vd", room.RoomStatus)

	// sự kiện sync fail vẫn được ghi
	latest, err := syncStore.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest) // Latest chỉ trả event thành công
}

func TestRefreshDataHeaderOnlySheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(helper.SheetValues{
			Range:  "A2:J63",
			Values: [][]string{{"Room", "Status"}},
		})
	}))
	defer srv.Close()

	app, roomStore, _ := newSyncApp(t, srv.URL,
		model.Room{RoomNo: "101", RoomStatus: "vd"},
	)

	code, _ := postJSON(t, app, "/api/refresh", fiber.Map{})
	assert.Equal(t, fiber.StatusServiceUnavailable, code)

	room, err := roomStore.Get("101")
	require.NoError(t, err)
	assert.Equal(t, "vd", room.RoomStatus)
}
