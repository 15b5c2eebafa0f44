package store

import (
	"errors"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"gorm.io/gorm"
)

// ErrRoomNotFound phòng không tồn tại trong bảng
var ErrRoomNotFound = errors.New("room not found")

type GormRoomStore struct {
	db *gorm.DB
}

func NewGormRoomStore(db *gorm.DB) *GormRoomStore {
	return &GormRoomStore{db: db}
}

func (s *GormRoomStore) Get(roomNo string) (*model.Room, error) {
	var room model.Room
	if err := s.db.First(&room, "room_no = ?", roomNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *GormRoomStore) List() ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.Order("room_no").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormRoomStore) ReplaceAll(rooms []model.Room) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Room{}).Error; err != nil {
			return err
		}
		if len(rooms) == 0 {
			return nil
		}
		return tx.Create(&rooms).Error
	})
}

func (s *GormRoomStore) Update(room *model.Room) error {
	// Select("*") để các cột bị clear (guest rỗng, pax = 0) cũng được ghi
	result := s.db.Model(&model.Room{}).
		Where("room_no = ?", room.RoomNo).
		Select("*").Omit("created_at").
		Updates(room)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *GormRoomStore) Search(term string) ([]model.Room, error) {
	var rooms []model.Room
	pattern := "%" + term + "%"
	err := s.db.
		Where("room_no ILIKE ? OR guest_name ILIKE ? OR room_status ILIKE ?", pattern, pattern, pattern).
		Order("room_no").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormRoomStore) ListByStatus(status string) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.Where("room_status = ?", status).Order("room_no").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormRoomStore) StatusCounts() (map[string]int64, error) {
	type row struct {
		RoomStatus string
		Count      int64
	}
	var rows []row
	err := s.db.Model(&model.Room{}).
		Select("room_status, COUNT(*) as count").
		Group("room_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.RoomStatus] = r.Count
	}
	return counts, nil
}

func (s *GormRoomStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&model.Room{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type GormLogStore struct {
	db *gorm.DB
}

func NewGormLogStore(db *gorm.DB) *GormLogStore {
	return &GormLogStore{db: db}
}

func (s *GormLogStore) Insert(log *model.HkLog) error {
	return s.db.Create(log).Error
}

func (s *GormLogStore) Since(t time.Time) ([]model.HkLog, error) {
	var logs []model.HkLog
	if err := s.db.Where("timestamp >= ?", t).Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormLogStore) ByRoom(roomNo string, limit int) ([]model.HkLog, error) {
	var logs []model.HkLog
	if err := s.db.Where("room_no = ?", roomNo).Order("timestamp DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormLogStore) Clear() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&model.HkLog{})
	return result.RowsAffected, result.Error
}

type GormSyncStore struct {
	db *gorm.DB
}

func NewGormSyncStore(db *gorm.DB) *GormSyncStore {
	return &GormSyncStore{db: db}
}

func (s *GormSyncStore) Insert(event *model.SyncEvent) error {
	return s.db.Create(event).Error
}

func (s *GormSyncStore) Latest() (*model.SyncEvent, error) {
	var event model.SyncEvent
	err := s.db.Where("success = ?", true).Order("sync_time DESC").First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}
