package store

import (
	"testing"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoomStoreReplaceAll(t *testing.T) {
	s := NewMemoryRoomStore()
	require.NoError(t, s.ReplaceAll([]model.Room{
		{RoomNo: "201", RoomStatus: "oc"},
		{RoomNo: "101", RoomStatus: "vd"},
	}))

	rooms, err := s.List()
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNo) // sắp theo số phòng

	require.NoError(t, s.ReplaceAll([]model.Room{{RoomNo: "301", RoomStatus: "vc"}}))
	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryRoomStoreUpdateMissing(t *testing.T) {
	s := NewMemoryRoomStore()
	err := s.Update(&model.Room{RoomNo: "101"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestMemoryRoomStoreSearch(t *testing.T) {
	s := NewMemoryRoomStore()
	require.NoError(t, s.ReplaceAll([]model.Room{
		{RoomNo: "101", RoomStatus: "oc", CurrentGuest: model.Guest{Name: "Nguyễn Văn A"}},
		{RoomNo: "102", RoomStatus: "vd"},
		{RoomNo: "201", RoomStatus: "vc/arr"},
	}))

	byGuest, err := s.Search("văn")
	require.NoError(t, err)
	require.Len(t, byGuest, 1)
	assert.Equal(t, "101", byGuest[0].RoomNo)

	byStatus, err := s.Search("arr")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "201", byStatus[0].RoomNo)
}

func TestMemorySyncStoreLatestSkipsFailures(t *testing.T) {
	s := NewMemorySyncStore()
	require.NoError(t, s.Insert(&model.SyncEvent{SyncID: "a", SyncTime: time.Now(), Success: true, TotalRooms: 10}))
	require.NoError(t, s.Insert(&model.SyncEvent{SyncID: "b", SyncTime: time.Now(), Success: false}))

	latest, err := s.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "a", latest.SyncID)
}
