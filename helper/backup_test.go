package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRooms(t *testing.T, rooms ...model.Room) *store.MemoryRoomStore {
	t.Helper()
	s := store.NewMemoryRoomStore()
	require.NoError(t, s.ReplaceAll(rooms))
	store.Rooms = s
	return s
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	seedRooms(t,
		model.Room{RoomNo: "101", RoomStatus: "vd"},
		model.Room{RoomNo: "102", RoomStatus: "oc"},
	)

	require.NoError(t, CreateBackup(dir, 5))

	backups, err := ListBackups(dir)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Contains(t, backups[0].Filename, "hotel_backup_")
}

func TestBackupRetention(t *testing.T) {
	dir := t.TempDir()
	seedRooms(t, model.Room{RoomNo: "101", RoomStatus: "vd"})

	// tên cũ hơn mọi tên sinh theo timestamp hiện tại
	for _, stale := range []string{
		"hotel_backup_20200101_080000.json",
		"hotel_backup_20200102_080000.json",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, stale), []byte("{}"), 0o644))
	}

	require.NoError(t, CreateBackup(dir, 2))

	backups, err := ListBackups(dir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.NotEqual(t, "hotel_backup_20200101_080000.json", backups[0].Filename)
	assert.NotEqual(t, "hotel_backup_20200101_080000.json", backups[1].Filename)
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	rooms := seedRooms(t,
		model.Room{RoomNo: "101", RoomStatus: "oc", CurrentGuest: model.Guest{Name: "Tran", Pax: 2}},
	)

	require.NoError(t, CreateBackup(dir, 5))
	backups, err := ListBackups(dir)
	require.NoError(t, err)
	require.NotEmpty(t, backups)
	filename := backups[0].Filename

	// dữ liệu hiện tại bị hỏng, khôi phục từ backup
	require.NoError(t, rooms.ReplaceAll(nil))

	n, err := RestoreBackup(dir, filename, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	restored, err := rooms.Get("101")
	require.NoError(t, err)
	assert.Equal(t, "oc", restored.RoomStatus)
	assert.Equal(t, "Tran", restored.CurrentGuest.Name)
}

func TestRestoreBackupRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	seedRooms(t)

	_, err := RestoreBackup(dir, "../../etc/passwd", 5)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListBackupsMissingDir(t *testing.T) {
	backups, err := ListBackups(filepath.Join(t.TempDir(), "chua-ton-tai"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}
