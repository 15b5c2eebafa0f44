package helper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"go.uber.org/zap"
)

const backupPrefix = "hotel_backup_"

// BackupInfo mô tả một file backup cho API liệt kê
type BackupInfo struct {
	Filename string  `json:"filename"`
	SizeMB   float64 `json:"size"`
	Created  string  `json:"created"`
}

// backupSnapshot nội dung một file backup: toàn bộ bảng phòng tại một thời điểm
type backupSnapshot struct {
	CreatedAt time.Time    `json:"createdAt"`
	Rooms     []model.Room `json:"rooms"`
}

// CreateBackup chụp snapshot bảng phòng ra file JSON và dọn các bản cũ,
// chỉ giữ lại retention bản gần nhất. Best-effort: lỗi chỉ log, không
// ảnh hưởng request gọi nó.
func CreateBackup(dir string, retention int) error {
	rooms, err := store.Rooms.List()
	if err != nil {
		logger.L.Error("lỗi tạo backup: không đọc được bảng phòng", zap.Error(err))
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.L.Error("lỗi tạo thư mục backup", zap.Error(err))
		return err
	}

	snapshot := backupSnapshot{CreatedAt: time.Now(), Rooms: rooms}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s%s.json", backupPrefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.L.Error("lỗi ghi file backup", zap.String("file", path), zap.Error(err))
		return err
	}

	cleanupOldBackups(dir, retention)

	logger.L.Info("đã tạo backup", zap.String("file", filename), zap.Int("rooms", len(rooms)))
	return nil
}

func cleanupOldBackups(dir string, retention int) {
	files, err := listBackupFiles(dir)
	if err != nil || len(files) <= retention {
		return
	}
	// files đã sắp mới nhất trước; phần dư phía sau bị xóa
	for _, old := range files[retention:] {
		if err := os.Remove(filepath.Join(dir, old)); err != nil {
			logger.L.Warn("lỗi khi dọn backup cũ", zap.String("file", old), zap.Error(err))
			continue
		}
		logger.L.Info("đã xóa backup cũ", zap.String("file", old))
	}
}

func listBackupFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), backupPrefix) && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	// tên file chứa timestamp nên sort theo tên là sort theo thời gian
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// ListBackups liệt kê các bản backup hiện có, mới nhất trước
func ListBackups(dir string) ([]BackupInfo, error) {
	names, err := listBackupFiles(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, err
	}

	backups := make([]BackupInfo, 0, len(names))
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Filename: name,
			SizeMB:   float64(info.Size()) / 1024 / 1024,
			Created:  info.ModTime().Format("15:04 02/01/2006"),
		})
	}
	return backups, nil
}

// RestoreBackup nạp lại bảng phòng từ một file backup. Trạng thái hiện tại
// được backup trước khi ghi đè.
func RestoreBackup(dir, filename string, retention int) (int, error) {
	// chặn path traversal kiểu "../../etc"
	if filepath.Base(filename) != filename {
		return 0, os.ErrNotExist
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return 0, err
	}

	var snapshot backupSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return 0, err
	}

	CreateBackup(dir, retention)

	if err := store.Rooms.ReplaceAll(snapshot.Rooms); err != nil {
		return 0, err
	}

	logger.L.Info("đã khôi phục từ backup",
		zap.String("file", filename),
		zap.Int("rooms", len(snapshot.Rooms)),
	)
	return len(snapshot.Rooms), nil
}
